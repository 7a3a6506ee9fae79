package market

import (
	"math"
	"math/rand"
	"time"
)

// GenerateM1 produces a synthetic random-walk M1 series of n bars ending at
// end. Intended for tests and for bootstrapping a labeled dataset when no
// real data is available; the walk has a slow sinusoidal drift so swing
// structure actually forms.
func GenerateM1(rng *rand.Rand, base float64, n int, end time.Time) Series {
	start := end.Add(-time.Duration(n) * time.Minute)

	s := make(Series, 0, n)
	price := base
	for i := 0; i < n; i++ {
		price += rng.NormFloat64()*0.00005 + math.Sin(float64(i)/240.0*2*math.Pi)*0.000004

		open := price
		high := open + math.Abs(rng.NormFloat64()*0.00010)
		low := open - math.Abs(rng.NormFloat64()*0.00010)
		close := open + rng.NormFloat64()*0.00008
		if close > high {
			high = close
		}
		if close < low {
			low = close
		}

		s = append(s, Candle{
			Time:   start.Add(time.Duration(i) * time.Minute),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: float64(50 + rng.Intn(150)),
		})
	}
	return s
}

// Aggregate rolls an M1 series up into the given timeframe: open of the
// first bar, max high, min low, close of the last bar, summed volume.
// Buckets are aligned to the timeframe boundary in UTC.
func Aggregate(m1 Series, tf Timeframe) Series {
	if len(m1) == 0 {
		return nil
	}

	sec := int64(tf)
	out := make(Series, 0, len(m1)/int(tf/M1)+1)

	var cur Candle
	var curBucket int64 = -1
	for _, c := range m1 {
		bucket := c.Time.Unix() / sec
		if bucket != curBucket {
			if curBucket != -1 {
				out = append(out, cur)
			}
			curBucket = bucket
			cur = Candle{
				Time:   time.Unix(bucket*sec, 0).UTC(),
				Open:   c.Open,
				High:   c.High,
				Low:    c.Low,
				Close:  c.Close,
				Volume: c.Volume,
			}
			continue
		}
		if c.High > cur.High {
			cur.High = c.High
		}
		if c.Low < cur.Low {
			cur.Low = c.Low
		}
		cur.Close = c.Close
		cur.Volume += c.Volume
	}
	out = append(out, cur)
	return out
}
