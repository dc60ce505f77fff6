package command

import (
	"errors"
	"strconv"
	"strings"

	"skoll/internal/common"
)

var (
	ErrUnknownSide        = errors.New("unknown side token")
	ErrUnknownTimeInForce = errors.New("unknown time-in-force token")
	ErrNotPositive        = errors.New("value must be a positive integer")
)

// parseSide accepts the side tokens case-insensitively, mirroring the
// tolerance of the command grammar.
func parseSide(s string) (common.Side, error) {
	switch strings.ToUpper(s) {
	case "BUY":
		return common.Buy, nil
	case "SELL":
		return common.Sell, nil
	}
	return 0, ErrUnknownSide
}

func parseTimeInForce(s string) (common.TimeInForce, error) {
	switch strings.ToUpper(s) {
	case "IOC":
		return common.IOC, nil
	case "GFD":
		return common.GFD, nil
	}
	return 0, ErrUnknownTimeInForce
}

// parsePositive parses a strictly positive integer. Prices and
// quantities are validated here so the book never sees them malformed.
func parsePositive(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, ErrNotPositive
	}
	return v, nil
}
