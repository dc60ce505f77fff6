package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"skoll/internal/common"
)

// matchOrders runs one matching pass over a point-in-time copy of the
// ledger and returns the set of orders to remove. The copy shares order
// pointers with the ledger, so quantity updates land directly on the
// live entries; removals are applied by the caller under the lock.
func matchOrders(orders []*common.Order, reporter common.TradeReporter) map[*common.Order]struct{} {
	buys, sells := partition(orders)

	// Stable sorts keep insertion order within equal prices, which is
	// what realizes price-time priority: highest bid first, lowest ask
	// first, earlier arrival breaking ties.
	sort.SliceStable(buys, func(i, j int) bool { return buys[i].Price > buys[j].Price })
	sort.SliceStable(sells, func(i, j int) bool { return sells[i].Price < sells[j].Price })

	removed := make(map[*common.Order]struct{})
	for _, buy := range buys {
		if _, ok := removed[buy]; ok {
			continue
		}
		for _, sell := range sells {
			if _, ok := removed[sell]; ok {
				continue
			}
			if buy.Price < sell.Price {
				continue
			}

			// The aggressive side pays the resting sell's price.
			qty := min(buy.Quantity, sell.Quantity)
			report(reporter, common.Trade{
				UUID:      uuid.NewString(),
				BuyID:     buy.ID,
				SellID:    sell.ID,
				Price:     sell.Price,
				Quantity:  qty,
				Timestamp: time.Now(),
			})

			buy.Quantity -= qty
			sell.Quantity -= qty

			if buy.Quantity == 0 || buy.TimeInForce == common.IOC {
				removed[buy] = struct{}{}
			}
			if sell.Quantity == 0 || sell.TimeInForce == common.IOC {
				removed[sell] = struct{}{}
			}

			// One fill opportunity per resting order per pass: once
			// either side of the pair is done, move to the next buy.
			// The remainder waits for the next wakeup.
			if _, buyDone := removed[buy]; buyDone {
				break
			}
			if _, sellDone := removed[sell]; sellDone {
				break
			}
		}
	}

	// An IOC order gets exactly one matching attempt. Whatever it did
	// not fill this pass is discarded, never rested.
	for _, o := range orders {
		if o.TimeInForce == common.IOC {
			removed[o] = struct{}{}
		}
	}

	return removed
}

func partition(orders []*common.Order) (buys, sells []*common.Order) {
	for _, o := range orders {
		switch o.Side {
		case common.Buy:
			buys = append(buys, o)
		case common.Sell:
			sells = append(sells, o)
		}
	}
	return buys, sells
}

func report(reporter common.TradeReporter, trade common.Trade) {
	if reporter == nil {
		log.Warn().
			Str("buy", trade.BuyID).
			Str("sell", trade.SellID).
			Int64("price", trade.Price).
			Int64("quantity", trade.Quantity).
			Msg("trade dropped, no reporter configured")
		return
	}
	reporter.ReportTrade(trade)
}
