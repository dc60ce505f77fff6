package common

type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	}
	return "UNKNOWN"
}

type TimeInForce int

const (
	// IOC (immediate-or-cancel) orders are given exactly one matching
	// attempt. Whatever remains unfilled afterwards is discarded; an
	// IOC order never rests in the book.
	IOC TimeInForce = iota
	// GFD (good-for-day) orders rest in the book until matched,
	// cancelled or modified.
	GFD
)

func (tif TimeInForce) String() string {
	switch tif {
	case IOC:
		return "IOC"
	case GFD:
		return "GFD"
	}
	return "UNKNOWN"
}
