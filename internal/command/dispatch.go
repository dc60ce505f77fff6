// Package command is the text-protocol collaborator around the
// matching core: it parses order commands, applies them to the market
// and renders trades and book dumps on the console. Malformed input is
// rejected here and never reaches the book.
package command

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"skoll/internal/engine"
)

// Dispatcher applies parsed commands to a market.
type Dispatcher struct {
	market *engine.Market
	out    io.Writer
}

func NewDispatcher(market *engine.Market, out io.Writer) *Dispatcher {
	return &Dispatcher{
		market: market,
		out:    out,
	}
}

// Run consumes commands line by line until EXIT or EOF.
func (d *Dispatcher) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !d.Dispatch(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// Dispatch applies a single command line and reports whether the
// session should continue. Grammar:
//
//	BUY|SELL IOC|GFD <price> <quantity> <id>
//	CANCEL <id>
//	MODIFY <id> BUY|SELL <price> <quantity>
//	PRINT
//	EXIT
//
// Lines that do not parse are logged and dropped without touching the
// book.
func (d *Dispatcher) Dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "EXIT":
		return false
	case "BUY", "SELL":
		d.submit(fields)
	case "CANCEL":
		d.cancel(fields)
	case "MODIFY":
		d.modify(fields)
	case "PRINT":
		d.print()
	default:
		log.Warn().Str("command", fields[0]).Msg("unknown command")
	}
	return true
}

func (d *Dispatcher) submit(fields []string) {
	if len(fields) != 5 {
		log.Warn().Strs("fields", fields).Msg("malformed order command")
		return
	}
	side, err := parseSide(fields[0])
	if err != nil {
		log.Warn().Err(err).Str("token", fields[0]).Msg("rejecting order")
		return
	}
	tif, err := parseTimeInForce(fields[1])
	if err != nil {
		log.Warn().Err(err).Str("token", fields[1]).Msg("rejecting order")
		return
	}
	price, err := parsePositive(fields[2])
	if err != nil {
		log.Warn().Err(err).Str("token", fields[2]).Msg("rejecting order")
		return
	}
	quantity, err := parsePositive(fields[3])
	if err != nil {
		log.Warn().Err(err).Str("token", fields[3]).Msg("rejecting order")
		return
	}
	d.market.Submit(side, tif, price, quantity, fields[4])
}

func (d *Dispatcher) cancel(fields []string) {
	if len(fields) != 2 {
		log.Warn().Strs("fields", fields).Msg("malformed cancel command")
		return
	}
	d.market.Cancel(fields[1])
}

func (d *Dispatcher) modify(fields []string) {
	if len(fields) != 5 {
		log.Warn().Strs("fields", fields).Msg("malformed modify command")
		return
	}
	side, err := parseSide(fields[2])
	if err != nil {
		log.Warn().Err(err).Str("token", fields[2]).Msg("rejecting modify")
		return
	}
	price, err := parsePositive(fields[3])
	if err != nil {
		log.Warn().Err(err).Str("token", fields[3]).Msg("rejecting modify")
		return
	}
	quantity, err := parsePositive(fields[4])
	if err != nil {
		log.Warn().Err(err).Str("token", fields[4]).Msg("rejecting modify")
		return
	}
	d.market.Modify(fields[1], side, price, quantity)
}

// print dumps both sides of the aggregated book, sells first, each
// level on its own line, descending by price.
func (d *Dispatcher) print() {
	snapshot := d.market.Snapshot()

	fmt.Fprintln(d.out, "SELL:")
	for _, level := range snapshot.Sells {
		fmt.Fprintf(d.out, "%d %d\n", level.Price, level.Quantity)
	}
	fmt.Fprintln(d.out, "BUY:")
	for _, level := range snapshot.Buys {
		fmt.Fprintf(d.out, "%d %d\n", level.Price, level.Quantity)
	}
}
