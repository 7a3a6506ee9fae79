// Package indicators provides the technical primitives behind the signal
// pipeline: rolling volatility and swing-point extraction. Everything here
// is a pure function of a read-only candle slice.
package indicators

import (
	"errors"
	"fmt"
	"math"

	"github.com/rustyeddy/scalper/market"
)

// ErrInsufficientHistory is returned when a series is shorter than an
// indicator requires. Callers skip the current evaluation rather than
// substitute defaults.
var ErrInsufficientHistory = errors.New("insufficient history")

// ATRSeries returns the trailing rolling mean of the true range over period
// bars, aligned with the input: output[i] belongs to candles[i]. The first
// period−1 entries are undefined and returned as NaN.
//
// True range per bar is max(high−low, |high−prevClose|, |low−prevClose|);
// the first bar has no look-back, so its previous close is its own close.
func ATRSeries(candles market.Series, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("period must be positive, got %d", period)
	}

	n := len(candles)
	out := make([]float64, n)

	tr := make([]float64, n)
	for i := 0; i < n; i++ {
		prevClose := candles[i].Close
		if i > 0 {
			prevClose = candles[i-1].Close
		}
		tr[i] = trueRange(candles[i], prevClose)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += tr[i]
		if i >= period {
			sum -= tr[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}

// ATR returns the latest defined ATR value, or ErrInsufficientHistory when
// the series has fewer than period bars.
func ATR(candles market.Series, period int) (float64, error) {
	if period <= 0 {
		return 0, fmt.Errorf("period must be positive, got %d", period)
	}
	if len(candles) < period {
		return 0, fmt.Errorf("%w: atr(%d) needs %d candles, got %d",
			ErrInsufficientHistory, period, period, len(candles))
	}
	series, err := ATRSeries(candles, period)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}

func trueRange(c market.Candle, prevClose float64) float64 {
	hl := c.High - c.Low
	hc := math.Abs(c.High - prevClose)
	lc := math.Abs(c.Low - prevClose)
	return math.Max(hl, math.Max(hc, lc))
}
