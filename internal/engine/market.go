package engine

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"skoll/internal/common"
)

// Market is the concurrent matching core: an insertion-ordered ledger
// of live orders guarded by a single lock, plus a background worker
// that runs one matching pass per mutation.
//
// Two condition variables layer on the one lock and encode two distinct
// readiness conditions. work is signaled whenever the ledger content
// changes or shutdown is requested, so the worker never polls. idle is
// broadcast when a matching pass finishes, so Snapshot never observes a
// half-applied pass. They must not be conflated: a snapshot reader woken
// by a mutation signal could otherwise race the in-flight pass.
type Market struct {
	mu   sync.Mutex
	work *sync.Cond
	idle *sync.Cond

	orders   ledger
	dirty    bool // mutation since the last pass began
	matching bool // a pass is in flight
	stopped  bool // one-way shutdown flag

	reporter common.TradeReporter

	t tomb.Tomb
}

// New starts a market with its matching worker running. Install a
// reporter with SetReporter before submitting orders, and Close the
// market to stop the worker.
func New() *Market {
	m := &Market{}
	m.work = sync.NewCond(&m.mu)
	m.idle = sync.NewCond(&m.mu)
	m.t.Go(m.matchLoop)
	return m
}

// SetReporter installs the sink that consumes trade records. The
// reporter is called from the worker goroutine, outside the lock.
func (m *Market) SetReporter(reporter common.TradeReporter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reporter = reporter
}

// Submit places a new order at the back of the ledger, giving it the
// lowest time priority among orders at its price, and wakes the worker.
// An id that already denotes a live order never creates a second entry;
// the call is a silent no-op.
func (m *Market) Submit(side common.Side, tif common.TimeInForce, price, quantity int64, id string) {
	m.mu.Lock()
	if m.orders.find(id) >= 0 {
		m.mu.Unlock()
		log.Debug().Str("id", id).Msg("duplicate order id ignored")
		return
	}
	m.orders = append(m.orders, &common.Order{
		ID:          id,
		Side:        side,
		TimeInForce: tif,
		Price:       price,
		Quantity:    quantity,
		Timestamp:   time.Now(),
	})
	m.dirty = true
	m.mu.Unlock()
	m.work.Signal()
}

// Cancel removes the live order with the given id; a miss is a no-op.
// The worker is woken either way, mutations are treated uniformly.
func (m *Market) Cancel(id string) {
	m.mu.Lock()
	if i := m.orders.find(id); i >= 0 {
		m.orders.removeAt(i)
	}
	m.dirty = true
	m.mu.Unlock()
	m.work.Signal()
}

// Modify logically replaces a live GFD order: the old entry is removed
// and a fresh one with the same id and time in force, but the new side,
// price and quantity, is appended at the back. The replacement forfeits
// the original's time priority and is matched as a brand-new order.
// Unknown ids and IOC orders are silent no-ops.
func (m *Market) Modify(id string, side common.Side, price, quantity int64) {
	m.mu.Lock()
	if i := m.orders.find(id); i >= 0 {
		old := m.orders[i]
		if old.CanBeModified() {
			m.orders.removeAt(i)
			m.orders = append(m.orders, &common.Order{
				ID:          id,
				Side:        side,
				TimeInForce: old.TimeInForce,
				Price:       price,
				Quantity:    quantity,
				Timestamp:   time.Now(),
			})
		}
	}
	m.dirty = true
	m.mu.Unlock()
	m.work.Signal()
}

// Snapshot aggregates resting interest per price level, descending by
// price on each side. It blocks until the worker is quiescent, so the
// view reflects every mutation made before the call and never a
// half-applied pass.
func (m *Market) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	for m.matching || (m.dirty && !m.stopped) {
		m.idle.Wait()
	}
	return buildSnapshot(m.orders)
}

// Close records the shutdown request, wakes everyone and waits for the
// worker to exit. An in-flight pass runs to completion first.
func (m *Market) Close() error {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
	m.work.Broadcast()
	m.idle.Broadcast()
	return m.t.Wait()
}

// matchLoop is the matching worker. Idle until a mutation lands, it
// copies the ledger under the lock, runs one pass over the copy outside
// it, then re-takes the lock to apply removals. Shutdown is terminal.
func (m *Market) matchLoop() error {
	log.Debug().Msg("matching worker started")
	for {
		m.mu.Lock()
		// Re-check on every wake to guard against spurious wakeups.
		for !m.stopped && !m.dirty {
			m.work.Wait()
		}
		if m.stopped {
			m.mu.Unlock()
			log.Debug().Msg("matching worker stopped")
			return nil
		}
		m.dirty = false
		m.matching = true
		snapshot := make([]*common.Order, len(m.orders))
		copy(snapshot, m.orders)
		reporter := m.reporter
		m.mu.Unlock()

		removed := matchOrders(snapshot, reporter)

		m.mu.Lock()
		m.orders.removeAll(removed)
		m.matching = false
		m.idle.Broadcast()
		m.mu.Unlock()
	}
}
