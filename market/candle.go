package market

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedCandle marks a candle whose high/low bounds do not contain its
// body. Such records are excluded, never repaired.
var ErrMalformedCandle = errors.New("malformed candle")

// ErrNonMonotonic marks a series whose timestamps are not strictly
// increasing. This is a hard precondition violation: the whole series is
// rejected.
var ErrNonMonotonic = errors.New("non-monotonic timestamps")

// Timeframe is the candle duration in seconds.
type Timeframe int32

const (
	M1  Timeframe = 60
	M15 Timeframe = 900
	D1  Timeframe = 86400
)

func (tf Timeframe) String() string {
	switch tf {
	case M1:
		return "M1"
	case M15:
		return "M15"
	case D1:
		return "D1"
	}
	return fmt.Sprintf("S%d", int32(tf))
}

// Candle represents OHLCV (Open, High, Low, Close, Volume) candlestick data
// for a single bar.
type Candle struct {
	Time time.Time

	Open  float64
	High  float64
	Low   float64
	Close float64

	Volume float64
}

// Validate checks the high/low invariant: High must be at or above the body,
// Low at or below it.
func (c Candle) Validate() error {
	if c.High < c.Open || c.High < c.Close {
		return fmt.Errorf("%w: high %.6f below body at %s", ErrMalformedCandle, c.High, c.Time.Format(time.RFC3339))
	}
	if c.Low > c.Open || c.Low > c.Close {
		return fmt.Errorf("%w: low %.6f above body at %s", ErrMalformedCandle, c.Low, c.Time.Format(time.RFC3339))
	}
	return nil
}

// Bullish reports whether the candle closed above its open.
func (c Candle) Bullish() bool { return c.Close > c.Open }

// Bearish reports whether the candle closed below its open.
func (c Candle) Bearish() bool { return c.Close < c.Open }

// LowerWick returns the distance from the bottom of the body to the low.
func (c Candle) LowerWick() float64 {
	bot := c.Open
	if c.Close < bot {
		bot = c.Close
	}
	return bot - c.Low
}

// UpperWick returns the distance from the high to the top of the body.
func (c Candle) UpperWick() float64 {
	top := c.Open
	if c.Close > top {
		top = c.Close
	}
	return c.High - top
}
