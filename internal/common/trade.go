package common

import (
	"time"
)

// Trade accounts for the two orders that matched. Both sides trade the
// same quantity at the same price, which is always the resting sell
// order's price.
type Trade struct {
	UUID      string
	BuyID     string
	SellID    string
	Price     int64
	Quantity  int64
	Timestamp time.Time
}

// TradeReporter consumes trade records as the matching worker produces
// them. Implementations are invoked from the worker goroutine, outside
// the book lock, once per match.
type TradeReporter interface {
	ReportTrade(trade Trade)
}
