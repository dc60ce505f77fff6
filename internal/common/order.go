package common

import (
	"fmt"
	"time"
)

type Order struct {
	ID          string      // Caller supplied identity, byte-exact
	Side        Side        // Order side
	TimeInForce TimeInForce // Immutable after creation
	Price       int64       // Limit price in ticks
	Quantity    int64       // Remaining quantity
	Timestamp   time.Time   // Time of arrival of order into the book
}

// CanBeModified reports whether a modify is allowed to touch this order.
// IOC orders are immutable once submitted.
func (o *Order) CanBeModified() bool {
	return o.TimeInForce != IOC
}

func (o *Order) String() string {
	return fmt.Sprintf("%s %s %s %d@%d",
		o.ID,
		o.Side,
		o.TimeInForce,
		o.Quantity,
		o.Price,
	)
}
