package label

import (
	"context"
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/scalper/indicators"
	"github.com/rustyeddy/scalper/market"
	"github.com/rustyeddy/scalper/signal"
)

// TrainingRecord pairs a feature vector with a simulated outcome. Records
// are immutable once created and accumulate into the output dataset in
// arbitrary order.
type TrainingRecord struct {
	Features signal.FeatureVector

	Win         bool
	TimeToHit   int // seconds
	SlippagePts float64
}

// Labeler drives the base signal logic and the outcome simulator across an
// M1 history to emit a labeled dataset.
//
// The core invariant: features at index i read only bars at or before i,
// while the outcome deliberately reads forward of i. That asymmetry is the
// point of the exercise, not a bug.
type Labeler struct {
	Point   float64
	Params  signal.Params
	MaxBars int
	Workers int
	Noise   NoiseSource
	Log     zerolog.Logger
}

// minStartIndex keeps the scan from starting before swing/ATR history can
// possibly be complete.
const minStartIndex = 100

// Run scans m1 from max(sr_lookback, atr_period, 100) up to len-MaxBars and
// returns one record per index where the base signal fires. Indices are
// independent, so they are fanned out across Workers goroutines; records are
// collected in completion order. Cancelling the context stops the issue of
// new indices; records already produced are returned.
func (l *Labeler) Run(ctx context.Context, m1, m15, d1 market.Series) ([]TrainingRecord, error) {
	start := l.Params.SRLookback
	if l.Params.ATRPeriod > start {
		start = l.Params.ATRPeriod
	}
	if start < minStartIndex {
		start = minStartIndex
	}
	end := len(m1) - l.MaxBars
	if end <= start {
		return nil, nil
	}

	workers := l.Workers
	if workers < 1 {
		workers = 1
	}

	indices := make(chan int)
	results := make(chan TrainingRecord)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				if rec, ok := l.labelIndex(m1, m15, d1, i); ok {
					results <- rec
				}
			}
		}()
	}

	go func() {
		defer close(indices)
		for i := start; i < end; i++ {
			select {
			case <-ctx.Done():
				return
			case indices <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var records []TrainingRecord
	for rec := range results {
		records = append(records, rec)
		if len(records)%100 == 0 {
			l.Log.Info().Int("records", len(records)).Msg("labeling progress")
		}
	}

	l.Log.Info().
		Int("records", len(records)).
		Int("scanned", end-start).
		Msg("labeling complete")
	return records, ctx.Err()
}

// labelIndex evaluates one historical index. Insufficient history at any
// stage skips the index; no defaults are substituted.
func (l *Labeler) labelIndex(m1, m15, d1 market.Series, i int) (TrainingRecord, bool) {
	hist := m1[:i+1]
	now := m1[i].Time

	// Timestamp join: the M15/D1 slices end at the latest bar whose
	// timestamp is at or before the current M1 bar's. An index-ratio
	// approximation would drift on any gap in the M1 series.
	m15Hist := m15.UpTo(now)
	d1Hist := d1.UpTo(now)

	if len(m15Hist) < l.Params.SRLookback || len(d1Hist) < 3 {
		return TrainingRecord{}, false
	}

	price := hist.Last().Close
	bias, err := signal.Classify(d1Hist, price)
	if err != nil {
		return TrainingRecord{}, false
	}

	pipe := signal.Pipeline{Point: l.Point, Params: l.Params}
	base := pipe.Base(hist, m15Hist, bias, price)
	if base == nil {
		return TrainingRecord{}, false
	}

	atrM1, err := indicators.ATR(hist, l.Params.ATRPeriod)
	if err != nil || math.IsNaN(atrM1) || atrM1 <= 0 {
		return TrainingRecord{}, false
	}

	fv := pipe.Features(hist, m15Hist, base, price, atrM1)
	fv.SpreadPts = l.Noise.Spread()
	fv.TickDensity30s = l.Noise.TickDensity()

	outcome := SimulateOutcome(m1, i, base.Side, atrM1,
		l.Params.SLMult, l.Params.TPMult, l.Point, l.MaxBars, l.Noise)

	return TrainingRecord{
		Features:    fv,
		Win:         outcome.Win,
		TimeToHit:   outcome.TimeToHit,
		SlippagePts: outcome.SlippagePts,
	}, true
}
