package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/scalper/indicators"
	"github.com/rustyeddy/scalper/market"
)

// daily builds a 3-candle D1 series, oldest first.
func daily(c3, c2, c1, open1, prevHigh, prevLow float64) market.Series {
	return market.Series{
		{Open: c3, High: c3 + 0.001, Low: c3 - 0.001, Close: c3},
		{Open: c2, High: prevHigh, Low: prevLow, Close: c2},
		{Open: open1, High: c1 + 0.001, Low: c1 - 0.001, Close: c1},
	}
}

func TestClassifyMomentumLong(t *testing.T) {
	// Closes newest-first 1.1000, 1.0990, 1.0980 -> momentum 0.0020 > 0.
	// Positional long does not fire (price below yesterday's high).
	d1 := daily(1.0980, 1.0990, 1.1000, 1.0995, 1.1050, 1.0950)

	bias, err := Classify(d1, 1.1010)
	require.NoError(t, err)
	assert.Equal(t, Long, bias)
}

func TestClassifyLongPrecedence(t *testing.T) {
	// Positional long fires (price above today's open and yesterday's high)
	// while momentum is negative, so the Short branch could also fire.
	// Long is evaluated first and wins.
	d1 := daily(1.3000, 1.2000, 1.0000, 0.9000, 0.9500, 0.8500)

	bias, err := Classify(d1, 1.0000)
	require.NoError(t, err)
	assert.Equal(t, Long, bias)
}

func TestClassifyShort(t *testing.T) {
	// Momentum negative, positional long impossible.
	d1 := daily(1.1020, 1.1010, 1.1000, 1.1005, 1.1050, 1.0950)

	bias, err := Classify(d1, 1.0990)
	require.NoError(t, err)
	assert.Equal(t, Short, bias)
}

func TestClassifyNeutral(t *testing.T) {
	// Flat closes, price inside yesterday's range, below today's open.
	d1 := daily(1.1000, 1.1000, 1.1000, 1.1003, 1.1050, 1.0950)

	bias, err := Classify(d1, 1.1002)
	require.NoError(t, err)
	assert.Equal(t, Neutral, bias)
}

func TestClassifyInsufficientHistory(t *testing.T) {
	d1 := daily(1.1, 1.1, 1.1, 1.1, 1.2, 1.0)[:2]

	_, err := Classify(d1, 1.1)
	assert.ErrorIs(t, err, indicators.ErrInsufficientHistory)
}

func TestBiasString(t *testing.T) {
	assert.Equal(t, "long", Long.String())
	assert.Equal(t, "short", Short.String())
	assert.Equal(t, "neutral", Neutral.String())
}
