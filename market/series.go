package market

import (
	"fmt"
	"sort"
	"time"
)

// Series is a chronological sequence of candles for one timeframe.
// Order is semantically significant; all consumers treat it as read-only.
type Series []Candle

// NewSeries validates candles and returns them as a Series. Malformed
// candles (high/low invariant violations) are excluded; the count of
// exclusions is returned so callers can report ingest hygiene. Timestamps
// must be strictly increasing across the surviving candles, otherwise the
// whole input is rejected with ErrNonMonotonic.
func NewSeries(candles []Candle) (Series, int, error) {
	out := make(Series, 0, len(candles))
	dropped := 0
	for _, c := range candles {
		if err := c.Validate(); err != nil {
			dropped++
			continue
		}
		out = append(out, c)
	}
	for i := 1; i < len(out); i++ {
		if !out[i].Time.After(out[i-1].Time) {
			return nil, dropped, fmt.Errorf("%w: %s then %s",
				ErrNonMonotonic,
				out[i-1].Time.Format(time.RFC3339),
				out[i].Time.Format(time.RFC3339))
		}
	}
	return out, dropped, nil
}

// Last returns the most recent candle. The series must be non-empty.
func (s Series) Last() Candle {
	return s[len(s)-1]
}

// Tail returns the last n candles (or the whole series if shorter).
func (s Series) Tail(n int) Series {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// UpTo returns the prefix of the series whose timestamps are at or before t.
// Uses binary search; the series is chronological by construction.
func (s Series) UpTo(t time.Time) Series {
	n := sort.Search(len(s), func(i int) bool {
		return s[i].Time.After(t)
	})
	return s[:n]
}

// Closes returns the close prices in chronological order.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Close
	}
	return out
}
