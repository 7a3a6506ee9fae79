package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrGateUnavailable marks an oracle that cannot produce a prediction. The
// pipeline fails closed on it: no candidate, never an optimistic default.
var ErrGateUnavailable = errors.New("ml gate unavailable")

// Prediction is the oracle output: estimated probability of a favorable
// outcome and estimated execution slippage in points.
type Prediction struct {
	PWin         float64
	PredSlippage float64
}

// Gate is the probability/slippage oracle consulted before a candidate is
// accepted. The pipeline never inspects its internals. The two realizations
// (coefficient-file model and random fallback) are selected at construction
// time, not by existence checks at call sites.
type Gate interface {
	Predict(fv FeatureVector) (Prediction, error)
}

// FallbackGate produces random but plausible predictions for environments
// without a trained model. It satisfies the same contract as the trained
// gate; thresholds in the pipeline still apply.
type FallbackGate struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewFallbackGate(seed int64) *FallbackGate {
	return &FallbackGate{rng: rand.New(rand.NewSource(seed))}
}

func (g *FallbackGate) Predict(fv FeatureVector) (Prediction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Prediction{
		PWin:         0.45 + g.rng.Float64()*0.30,
		PredSlippage: 1 + g.rng.Float64()*7,
	}, nil
}

// CoefficientGate scores features with a linear model fitted externally: a
// logistic regression for win probability and a linear regression for
// slippage. Coefficients are keyed by feature column name so a file fitted
// against a different schema is rejected at load time.
type CoefficientGate struct {
	winBias  float64
	winW     []float64
	slipBias float64
	slipW    []float64
}

type coefficientFile struct {
	WinBias     float64            `yaml:"win_bias"`
	WinWeights  map[string]float64 `yaml:"win_weights"`
	SlipBias    float64            `yaml:"slippage_bias"`
	SlipWeights map[string]float64 `yaml:"slippage_weights"`
}

// LoadCoefficientGate reads model coefficients from a YAML file. Every
// feature column must have a weight in both models.
func LoadCoefficientGate(path string) (*CoefficientGate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model coefficients: %w", err)
	}

	var cf coefficientFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse model coefficients: %w", err)
	}

	g := &CoefficientGate{
		winBias:  cf.WinBias,
		slipBias: cf.SlipBias,
	}
	for _, col := range Columns() {
		w, ok := cf.WinWeights[col]
		if !ok {
			return nil, fmt.Errorf("model coefficients missing win weight for %q", col)
		}
		g.winW = append(g.winW, w)

		w, ok = cf.SlipWeights[col]
		if !ok {
			return nil, fmt.Errorf("model coefficients missing slippage weight for %q", col)
		}
		g.slipW = append(g.slipW, w)
	}
	return g, nil
}

func (g *CoefficientGate) Predict(fv FeatureVector) (Prediction, error) {
	vals := fv.Values()
	if len(vals) != len(g.winW) {
		return Prediction{}, fmt.Errorf("%w: feature count %d does not match model %d",
			ErrGateUnavailable, len(vals), len(g.winW))
	}

	winScore := g.winBias
	slip := g.slipBias
	for i, v := range vals {
		winScore += g.winW[i] * v
		slip += g.slipW[i] * v
	}
	if slip < 0 {
		slip = 0
	}
	return Prediction{
		PWin:         1.0 / (1.0 + math.Exp(-winScore)),
		PredSlippage: slip,
	}, nil
}
