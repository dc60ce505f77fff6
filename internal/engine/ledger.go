package engine

import "skoll/internal/common"

// ledger is the insertion-ordered collection of live orders. Insertion
// order encodes time priority: at the same price, earlier orders match
// first. The ledger owns every order instance; all access happens under
// the market lock.
type ledger []*common.Order

// find returns the index of the live order with the given id, or -1.
// Identity is byte-exact.
func (l ledger) find(id string) int {
	for i, o := range l {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// removeAt splices out the order at index i, preserving the relative
// order of the remainder.
func (l *ledger) removeAt(i int) {
	copy((*l)[i:], (*l)[i+1:])
	(*l)[len(*l)-1] = nil
	*l = (*l)[:len(*l)-1]
}

// removeAll drops every order present in the removal set, preserving
// the relative order of the survivors.
func (l *ledger) removeAll(removed map[*common.Order]struct{}) {
	if len(removed) == 0 {
		return
	}
	kept := (*l)[:0]
	for _, o := range *l {
		if _, ok := removed[o]; !ok {
			kept = append(kept, o)
		}
	}
	// Clear the tail so removed orders can be collected.
	for i := len(kept); i < len(*l); i++ {
		(*l)[i] = nil
	}
	*l = kept
}
