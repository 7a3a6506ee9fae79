package indicators

import (
	"sort"

	"github.com/rustyeddy/scalper/market"
)

// SwingLevels extracts local swing highs and lows from the last lookback
// bars. An interior bar (the first two and last two are excluded) is a swing
// high when its high strictly exceeds both immediate neighbours' highs, and
// symmetrically for swing lows. The result is the deduplicated union of both
// kinds, sorted ascending; the high/low distinction is discarded.
func SwingLevels(candles market.Series, lookback int) []float64 {
	rs := candles.Tail(lookback)

	seen := make(map[float64]struct{})
	for i := 2; i < len(rs)-2; i++ {
		h := rs[i].High
		if h > rs[i-1].High && h > rs[i+1].High {
			seen[h] = struct{}{}
		}
		l := rs[i].Low
		if l < rs[i-1].Low && l < rs[i+1].Low {
			seen[l] = struct{}{}
		}
	}

	levels := make([]float64, 0, len(seen))
	for lv := range seen {
		levels = append(levels, lv)
	}
	sort.Float64s(levels)
	return levels
}
