package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skoll/internal/common"
)

func TestParseSide(t *testing.T) {
	side, err := parseSide("BUY")
	assert.NoError(t, err)
	assert.Equal(t, common.Buy, side)

	side, err = parseSide("sell")
	assert.NoError(t, err)
	assert.Equal(t, common.Sell, side)

	_, err = parseSide("HOLD")
	assert.ErrorIs(t, err, ErrUnknownSide)
}

func TestParseTimeInForce(t *testing.T) {
	tif, err := parseTimeInForce("IOC")
	assert.NoError(t, err)
	assert.Equal(t, common.IOC, tif)

	tif, err = parseTimeInForce("gfd")
	assert.NoError(t, err)
	assert.Equal(t, common.GFD, tif)

	_, err = parseTimeInForce("FOK")
	assert.ErrorIs(t, err, ErrUnknownTimeInForce)
}

func TestParsePositive(t *testing.T) {
	v, err := parsePositive("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = parsePositive("0")
	assert.ErrorIs(t, err, ErrNotPositive)

	_, err = parsePositive("-3")
	assert.ErrorIs(t, err, ErrNotPositive)

	_, err = parsePositive("ten")
	assert.Error(t, err)

	_, err = parsePositive("10.5")
	assert.Error(t, err)
}
