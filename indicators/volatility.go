package indicators

import (
	"math"

	"github.com/rustyeddy/scalper/market"
)

// RealizedVolatility is the standard deviation of one-bar returns over the
// trailing lookback bars. Returns 0 when there are fewer than two returns to
// measure.
func RealizedVolatility(candles market.Series, lookback int) float64 {
	rs := candles.Tail(lookback)
	if len(rs) < 3 {
		return 0
	}

	returns := make([]float64, 0, len(rs)-1)
	for i := 1; i < len(rs); i++ {
		prev := rs[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, (rs[i].Close-prev)/prev)
	}
	if len(returns) < 2 {
		return 0
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var ss float64
	for _, r := range returns {
		d := r - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(returns)-1))
}
