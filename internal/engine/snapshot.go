package engine

import (
	"github.com/tidwall/btree"

	"skoll/internal/common"
)

// Level is one aggregated price level: the total resting quantity
// across every live order at that price on one side of the book.
type Level struct {
	Price    int64
	Quantity int64
}

// Snapshot is an aggregated view of resting interest, one sequence per
// side, descending by price.
type Snapshot struct {
	Sells []Level
	Buys  []Level
}

type levels = btree.BTreeG[*Level]

// buildSnapshot aggregates the ledger into per-price levels. Called
// under the market lock.
func buildSnapshot(orders ledger) Snapshot {
	sells := newLevels()
	buys := newLevels()
	for _, o := range orders {
		switch o.Side {
		case common.Sell:
			accumulate(sells, o)
		case common.Buy:
			accumulate(buys, o)
		}
	}
	return Snapshot{
		Sells: flatten(sells),
		Buys:  flatten(buys),
	}
}

// Sorted greatest first on both sides; the book is dumped top down.
func newLevels() *levels {
	return btree.NewBTreeG(func(a, b *Level) bool {
		return a.Price > b.Price
	})
}

func accumulate(side *levels, o *common.Order) {
	// The comparator only accounts for price, so a dummy level works
	// for the lookup.
	if level, ok := side.GetMut(&Level{Price: o.Price}); ok {
		level.Quantity += o.Quantity
		return
	}
	side.Set(&Level{Price: o.Price, Quantity: o.Quantity})
}

func flatten(side *levels) []Level {
	flat := make([]Level, 0, side.Len())
	for _, level := range side.Items() {
		if level.Quantity > 0 {
			flat = append(flat, *level)
		}
	}
	return flat
}
