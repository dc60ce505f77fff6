package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skoll/internal/common"
)

// sinkFunc adapts a function to the TradeReporter interface.
type sinkFunc func(common.Trade)

func (f sinkFunc) ReportTrade(trade common.Trade) { f(trade) }

func collectTrades() (*[]common.Trade, common.TradeReporter) {
	trades := &[]common.Trade{}
	return trades, sinkFunc(func(trade common.Trade) {
		*trades = append(*trades, trade)
	})
}

func order(id string, side common.Side, tif common.TimeInForce, price, quantity int64) *common.Order {
	return &common.Order{
		ID:          id,
		Side:        side,
		TimeInForce: tif,
		Price:       price,
		Quantity:    quantity,
	}
}

func TestMatchOrders_TradesAtRestingSellPrice(t *testing.T) {
	buy := order("B1", common.Buy, common.GFD, 100, 10)
	sell := order("S1", common.Sell, common.GFD, 90, 4)
	trades, sink := collectTrades()

	removed := matchOrders([]*common.Order{buy, sell}, sink)

	require.Len(t, *trades, 1)
	assert.Equal(t, int64(90), (*trades)[0].Price)
	assert.Equal(t, int64(4), (*trades)[0].Quantity)

	// Conservation: the traded quantity came off both sides.
	assert.Equal(t, int64(6), buy.Quantity)
	assert.Equal(t, int64(0), sell.Quantity)

	assert.NotContains(t, removed, buy)
	assert.Contains(t, removed, sell)
}

func TestMatchOrders_OneFillOpportunityPerPass(t *testing.T) {
	// After consuming S1 the buy still has quantity left, but the
	// inner scan stops: S2 is not considered until the next pass.
	buy := order("B1", common.Buy, common.GFD, 100, 10)
	s1 := order("S1", common.Sell, common.GFD, 90, 4)
	s2 := order("S2", common.Sell, common.GFD, 95, 10)
	trades, sink := collectTrades()

	removed := matchOrders([]*common.Order{buy, s1, s2}, sink)

	require.Len(t, *trades, 1)
	assert.Equal(t, "S1", (*trades)[0].SellID)
	assert.Equal(t, int64(6), buy.Quantity)
	assert.Equal(t, int64(10), s2.Quantity)
	assert.Contains(t, removed, s1)
	assert.NotContains(t, removed, s2)
	assert.NotContains(t, removed, buy)
}

func TestMatchOrders_UnmatchedIOCRemoved(t *testing.T) {
	buy := order("B1", common.Buy, common.IOC, 100, 10)
	sell := order("S1", common.Sell, common.GFD, 150, 5)
	trades, sink := collectTrades()

	removed := matchOrders([]*common.Order{buy, sell}, sink)

	assert.Empty(t, *trades)
	assert.Contains(t, removed, buy)
	assert.NotContains(t, removed, sell)
}

func TestMatchOrders_IOCPartialFillDiscarded(t *testing.T) {
	buy := order("B1", common.Buy, common.IOC, 100, 10)
	sell := order("S1", common.Sell, common.GFD, 100, 4)
	trades, sink := collectTrades()

	removed := matchOrders([]*common.Order{buy, sell}, sink)

	// One fill, then the IOC remainder of 6 is discarded with it.
	require.Len(t, *trades, 1)
	assert.Equal(t, int64(4), (*trades)[0].Quantity)
	assert.Contains(t, removed, buy)
	assert.Contains(t, removed, sell)
}

func TestMatchOrders_PriceTimePairing(t *testing.T) {
	// Same price on both sides: pairs form in insertion order.
	b1 := order("B1", common.Buy, common.GFD, 100, 5)
	b2 := order("B2", common.Buy, common.GFD, 100, 5)
	s1 := order("S1", common.Sell, common.GFD, 100, 5)
	s2 := order("S2", common.Sell, common.GFD, 100, 5)
	trades, sink := collectTrades()

	removed := matchOrders([]*common.Order{b1, b2, s1, s2}, sink)

	require.Len(t, *trades, 2)
	assert.Equal(t, "B1", (*trades)[0].BuyID)
	assert.Equal(t, "S1", (*trades)[0].SellID)
	assert.Equal(t, "B2", (*trades)[1].BuyID)
	assert.Equal(t, "S2", (*trades)[1].SellID)
	assert.Len(t, removed, 4)
}

func TestMatchOrders_HigherBidMatchesFirst(t *testing.T) {
	low := order("B-low", common.Buy, common.GFD, 95, 5)
	high := order("B-high", common.Buy, common.GFD, 100, 5)
	sell := order("S1", common.Sell, common.GFD, 90, 5)
	trades, sink := collectTrades()

	removed := matchOrders([]*common.Order{low, high, sell}, sink)

	require.Len(t, *trades, 1)
	assert.Equal(t, "B-high", (*trades)[0].BuyID)
	assert.Contains(t, removed, high)
	assert.Contains(t, removed, sell)
	assert.NotContains(t, removed, low)
}

func TestMatchOrders_NoReporterDoesNotPanic(t *testing.T) {
	buy := order("B1", common.Buy, common.GFD, 100, 5)
	sell := order("S1", common.Sell, common.GFD, 100, 5)

	assert.NotPanics(t, func() {
		matchOrders([]*common.Order{buy, sell}, nil)
	})
}
