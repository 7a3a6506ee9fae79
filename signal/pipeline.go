package signal

import (
	"fmt"
	"math"

	"github.com/rustyeddy/scalper/indicators"
	"github.com/rustyeddy/scalper/market"
	"github.com/rustyeddy/scalper/pkg/id"
	"github.com/rustyeddy/scalper/zones"
)

// Side is the order direction of an accepted candidate.
type Side int8

const (
	Buy  Side = +1
	Sell Side = -1
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// Params is the recognized-options bundle consumed by the pipeline. No other
// runtime parameters exist in the core.
type Params struct {
	SRLookback         int     `json:"sr_lookback" yaml:"sr_lookback"`
	SRClusterPips      float64 `json:"sr_cluster_pips" yaml:"sr_cluster_pips"`
	ZoneBufferPoints   float64 `json:"zone_buffer_points" yaml:"zone_buffer_points"`
	RequireRejection   bool    `json:"require_rejection" yaml:"require_rejection"`
	RejectionCandles   int     `json:"rejection_candles" yaml:"rejection_candles"`
	RejectionWickPts   float64 `json:"rejection_wick_pts" yaml:"rejection_wick_pts"`
	ATRPeriod          int     `json:"atr_period" yaml:"atr_period"`
	TPMult             float64 `json:"tp_mult" yaml:"tp_mult"`
	SLMult             float64 `json:"sl_mult" yaml:"sl_mult"`
	PThreshold         float64 `json:"p_threshold" yaml:"p_threshold"`
	MaxPredSlippagePts float64 `json:"max_pred_slippage_pts" yaml:"max_pred_slippage_pts"`
	UseDailyBiasOnly   bool    `json:"use_daily_bias_only" yaml:"use_daily_bias_only"`
	SpreadPts          float64 `json:"spread_pts" yaml:"spread_pts"`
}

// DefaultParams mirrors the live-engine defaults.
func DefaultParams() Params {
	return Params{
		SRLookback:         120,
		SRClusterPips:      20,
		ZoneBufferPoints:   5,
		RequireRejection:   true,
		RejectionCandles:   3,
		RejectionWickPts:   6,
		ATRPeriod:          14,
		TPMult:             1.8,
		SLMult:             0.9,
		PThreshold:         0.6,
		MaxPredSlippagePts: 5,
		UseDailyBiasOnly:   true,
		SpreadPts:          1.0,
	}
}

// Candidate is an accepted, risk-sized trade proposal. Created only by the
// pipeline, immutable once produced, consumed by the order collaborator and
// discarded.
type Candidate struct {
	ID           string
	Side         Side
	EntryPrice   float64
	StopLoss     float64
	TakeProfit   float64
	Zone         zones.Zone
	Features     FeatureVector
	PWin         float64
	PredSlippage float64
}

// BaseSignal is the non-ML portion of a pipeline decision: the selected zone
// and direction after zone building, selection, touch and rejection checks.
type BaseSignal struct {
	Side Side
	Zone zones.Zone
	Bias Bias
}

// Pipeline turns multi-timeframe candle series into a candidate-or-reject
// decision, gated by the oracle. It holds no mutable state and performs no
// side effects beyond the single gate call per evaluation.
type Pipeline struct {
	Point  float64
	Params Params
	Gate   Gate
}

func NewPipeline(point float64, params Params, gate Gate) *Pipeline {
	return &Pipeline{Point: point, Params: params, Gate: gate}
}

// Base runs steps 1-4 of the decision (zones, zone selection, touch test,
// rejection) without consulting the oracle. A nil result is the ordinary
// no-signal outcome, not an error.
func (p *Pipeline) Base(m1, m15 market.Series, bias Bias, price float64) *BaseSignal {
	levels := indicators.SwingLevels(m15, p.Params.SRLookback)
	bands := zones.Cluster(levels, p.Params.SRClusterPips*p.Point)
	if len(bands) == 0 {
		return nil
	}

	target, side, ok := selectZone(bands, bias, price, p.Params.UseDailyBiasOnly)
	if !ok {
		return nil
	}

	if !target.Touches(price, p.Params.ZoneBufferPoints*p.Point) {
		return nil
	}

	if p.Params.RequireRejection {
		recent := m1.Tail(p.Params.RejectionCandles)
		if !DetectRejection(recent, target, p.Params.RejectionWickPts, p.Point) {
			return nil
		}
	}

	return &BaseSignal{Side: side, Zone: target, Bias: bias}
}

// Evaluate runs the full decision: daily bias, base signal, feature
// extraction and the oracle gate. It returns (nil, nil) for the ordinary
// no-candidate outcome, and an error only for insufficient history or an
// unavailable oracle; both mean "skip this evaluation".
func (p *Pipeline) Evaluate(m1, m15, d1 market.Series) (*Candidate, error) {
	if len(m1) == 0 {
		return nil, fmt.Errorf("%w: empty M1 series", indicators.ErrInsufficientHistory)
	}
	price := m1.Last().Close

	bias, err := Classify(d1, price)
	if err != nil {
		return nil, err
	}

	base := p.Base(m1, m15, bias, price)
	if base == nil {
		return nil, nil
	}

	atrM1, err := indicators.ATR(m1, p.Params.ATRPeriod)
	if err != nil {
		return nil, err
	}

	fv := p.Features(m1, m15, base, price, atrM1)

	pred, err := p.Gate.Predict(fv)
	if err != nil {
		// Fail closed: an unavailable oracle never becomes an accept.
		return nil, fmt.Errorf("%w: %v", ErrGateUnavailable, err)
	}
	if pred.PWin < p.Params.PThreshold || pred.PredSlippage > p.Params.MaxPredSlippagePts {
		return nil, nil
	}

	sl := price - float64(base.Side)*p.Params.SLMult*atrM1
	tp := price + float64(base.Side)*p.Params.TPMult*atrM1

	return &Candidate{
		ID:           id.New(),
		Side:         base.Side,
		EntryPrice:   price,
		StopLoss:     sl,
		TakeProfit:   tp,
		Zone:         base.Zone,
		Features:     fv,
		PWin:         pred.PWin,
		PredSlippage: pred.PredSlippage,
	}, nil
}

// Features extracts the fixed-order feature vector for a base signal. All
// inputs are look-back only: nothing past the last M1 bar is read. The
// tick-density and wick-geometry columns are filled by callers that have a
// source for them and stay zero otherwise.
func (p *Pipeline) Features(m1, m15 market.Series, base *BaseSignal, price, atrM1 float64) FeatureVector {
	now := m1.Last().Time

	fv := FeatureVector{
		DailyBias:     float64(base.Bias),
		PriceAtSignal: price,
		ATRM1:         atrM1,
		DistZonePts:   math.Abs(price-base.Zone.Mid()) / p.Point,
		ZoneWidthPts:  base.Zone.Width() / p.Point,
		PlannedRR:     p.Params.TPMult / p.Params.SLMult,
		SpreadPts:     p.Params.SpreadPts,
		Volatility60:  indicators.RealizedVolatility(m1, 60),
		HourOfDay:     float64(now.Hour()),
		Weekday:       float64(now.Weekday()),
		SLPips:        p.Params.SLMult * atrM1 / p.Point,
		TPPips:        p.Params.TPMult * atrM1 / p.Point,
	}

	if n := len(m1); n >= 2 {
		fv.Momentum1M = m1[n-1].Close - m1[n-2].Close
	}
	if n := len(m1); n >= 6 {
		fv.Momentum5M = m1[n-1].Close - m1[n-6].Close
	}

	if atrM15, err := indicators.ATR(m15, p.Params.ATRPeriod); err == nil && !math.IsNaN(atrM15) {
		fv.ATRM15 = atrM15
	}
	return fv
}

// selectZone picks the target band for the given bias: the nearest band by
// midpoint below price for Long, above for Short. Neutral picks the nearest
// band on either side unless strict daily-bias mode rejects outright. The
// returned side follows the bias, or the zone's side of price for Neutral.
func selectZone(bands []zones.Zone, bias Bias, price float64, strict bool) (zones.Zone, Side, bool) {
	switch bias {
	case Long:
		best, ok := nearest(bands, price, func(mid float64) bool { return mid < price })
		return best, Buy, ok
	case Short:
		best, ok := nearest(bands, price, func(mid float64) bool { return mid > price })
		return best, Sell, ok
	default:
		if strict {
			return zones.Zone{}, 0, false
		}
		best, ok := nearest(bands, price, func(float64) bool { return true })
		if !ok {
			return zones.Zone{}, 0, false
		}
		side := Sell
		if best.Mid() < price {
			side = Buy
		}
		return best, side, true
	}
}

func nearest(bands []zones.Zone, price float64, eligible func(mid float64) bool) (zones.Zone, bool) {
	var best zones.Zone
	bestDist := math.Inf(1)
	found := false
	for _, z := range bands {
		mid := z.Mid()
		if !eligible(mid) {
			continue
		}
		if d := math.Abs(price - mid); d < bestDist {
			best, bestDist, found = z, d, true
		}
	}
	return best, found
}
