// Package signal implements the market-signal decision pipeline: directional
// bias, zone selection, wick-rejection confirmation, feature extraction and
// ML-gated candidate production. Everything except the gate call is a pure
// function of read-only candle series.
package signal

import (
	"fmt"

	"github.com/rustyeddy/scalper/indicators"
	"github.com/rustyeddy/scalper/market"
)

// Bias is the directional stance derived from daily price structure.
type Bias int8

const (
	Short   Bias = -1
	Neutral Bias = 0
	Long    Bias = +1
)

func (b Bias) String() string {
	switch b {
	case Long:
		return "long"
	case Short:
		return "short"
	}
	return "neutral"
}

// Classify derives the daily bias from the D1 series and the current price.
// Requires at least 3 daily candles.
//
// Long fires when price is above today's open and yesterday's high, or when
// two-day momentum is positive; Short symmetrically against yesterday's low
// with negative momentum. The Long branch is evaluated first and wins when
// both could fire.
func Classify(d1 market.Series, price float64) (Bias, error) {
	if len(d1) < 3 {
		return Neutral, fmt.Errorf("%w: daily bias needs 3 candles, got %d",
			indicators.ErrInsufficientHistory, len(d1))
	}

	n := len(d1)
	todayOpen := d1[n-1].Open
	prevHigh := d1[n-2].High
	prevLow := d1[n-2].Low

	c1, c2, c3 := d1[n-1].Close, d1[n-2].Close, d1[n-3].Close
	momentum := (c1 - c2) + (c2 - c3)

	if (price > todayOpen && price > prevHigh) || momentum > 0 {
		return Long, nil
	}
	if (price < todayOpen && price < prevLow) || momentum < 0 {
		return Short, nil
	}
	return Neutral, nil
}
