package command

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"

	"skoll/internal/common"
)

// Reporter renders trade records on the console, one line per match,
// naming both orders. The matching worker calls it concurrently with
// the dispatcher's own output, so writes are serialized.
type Reporter struct {
	mu  sync.Mutex
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) ReportTrade(trade common.Trade) {
	log.Debug().
		Str("uuid", trade.UUID).
		Str("buy", trade.BuyID).
		Str("sell", trade.SellID).
		Int64("price", trade.Price).
		Int64("quantity", trade.Quantity).
		Msg("trade")

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "TRADE %s %d %d %s %d %d\n",
		trade.BuyID, trade.Price, trade.Quantity,
		trade.SellID, trade.Price, trade.Quantity,
	)
}
