package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/scalper/market"
)

func createTestCandles() market.Series {
	return market.Series{
		{Open: 9, High: 10, Low: 8, Close: 9},
		{Open: 9, High: 11, Low: 9, Close: 10},
		{Open: 10, High: 12, Low: 10, Close: 11},
		{Open: 11, High: 11, Low: 9, Close: 10},
		{Open: 10, High: 12, Low: 10, Close: 11},
		{Open: 11, High: 13, Low: 11, Close: 12},
	}
}

func TestATRSeriesShape(t *testing.T) {
	candles := createTestCandles()

	out, err := ATRSeries(candles, 3)
	require.NoError(t, err)
	require.Len(t, out, len(candles))

	// First period-1 entries are undefined.
	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	for i := 2; i < len(out); i++ {
		assert.False(t, math.IsNaN(out[i]), "index %d", i)
		assert.GreaterOrEqual(t, out[i], 0.0)
	}
}

func TestATRSeriesValues(t *testing.T) {
	// TR per bar: first bar uses its own close as previous close.
	// bar0: max(2, 1, 1) = 2; bar1: max(2, 2, 0) = 2; bar2: max(2, 2, 0) = 2
	candles := createTestCandles()[:3]

	out, err := ATRSeries(candles, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, out[2], 1e-9)
}

func TestATRLatest(t *testing.T) {
	candles := createTestCandles()

	atr, err := ATR(candles, 3)
	require.NoError(t, err)
	assert.Greater(t, atr, 0.0)
}

func TestATRInsufficientHistory(t *testing.T) {
	candles := createTestCandles()[:2]

	_, err := ATR(candles, 3)
	assert.ErrorIs(t, err, ErrInsufficientHistory)
}

func TestATRBadPeriod(t *testing.T) {
	_, err := ATRSeries(createTestCandles(), 0)
	assert.Error(t, err)
}
