// Package label replays the base (non-ML) signal logic over historical data
// and simulates forward price paths to produce supervised training records.
package label

import (
	"math"
	"math/rand"
	"sync"
)

// NoiseSource supplies the stochastic stand-ins the labeler has no market
// microstructure model for: execution slippage, quoted spread and tick
// density. It is a seam, not ground truth; swap it for a real model without
// touching the labeler.
type NoiseSource interface {
	// Slippage returns signed execution slippage in points.
	Slippage() float64
	// Spread returns the quoted spread in points.
	Spread() float64
	// TickDensity returns ticks observed over the trailing 30 seconds.
	TickDensity() float64
}

// GaussianNoise is the default placeholder distribution set: slippage is
// gaussian with mean 0 and standard deviation 1.5 points, spread uniform in
// [0.5, 2.0) points, tick density uniform in [10, 50). Safe for concurrent
// use.
type GaussianNoise struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGaussianNoise(seed int64) *GaussianNoise {
	return &GaussianNoise{rng: rand.New(rand.NewSource(seed))}
}

func (g *GaussianNoise) Slippage() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.NormFloat64() * 1.5
}

func (g *GaussianNoise) Spread() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return 0.5 + g.rng.Float64()*1.5
}

func (g *GaussianNoise) TickDensity() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return 10 + g.rng.Float64()*40
}

// FixedNoise returns constant values; used in tests where determinism
// matters more than realism.
type FixedNoise struct {
	SlippagePts float64
	SpreadPts   float64
	Ticks       float64
}

func (f FixedNoise) Slippage() float64    { return f.SlippagePts }
func (f FixedNoise) Spread() float64      { return f.SpreadPts }
func (f FixedNoise) TickDensity() float64 { return f.Ticks }

var _ NoiseSource = (*GaussianNoise)(nil)
var _ NoiseSource = FixedNoise{}

func abs(x float64) float64 { return math.Abs(x) }
