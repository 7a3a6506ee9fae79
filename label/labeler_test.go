package label

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/scalper/market"
	"github.com/rustyeddy/scalper/signal"
)

func labelerParams() signal.Params {
	p := signal.DefaultParams()
	p.SRLookback = 5
	p.ATRPeriod = 3
	p.RequireRejection = false
	p.TPMult = 1
	p.SLMult = 1
	return p
}

// labelerFixture builds series where the base signal fires at every scanned
// index: a constant M15 zone below the M1 price and a Long daily bias, with
// TP/SL never reached so every outcome is a timeout.
func labelerFixture(m1Len int) (m1, m15, d1 market.Series) {
	m1Start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	m1 = make(market.Series, m1Len)
	for i := range m1 {
		m1[i] = market.Candle{
			Time: m1Start.Add(time.Duration(i) * time.Minute),
			Open: 1.1002, High: 1.1004, Low: 1.1000, Close: 1.1002,
		}
	}

	// All M15 bars predate the M1 scan so the timestamp join always sees
	// the full structure: swing high 1.1004, swing low 1.0996 -> one zone.
	m15Start := m1Start.Add(-15 * 60 * time.Minute)
	m15 = make(market.Series, 60)
	for i := range m15 {
		m15[i] = market.Candle{
			Time: m15Start.Add(time.Duration(i) * 15 * time.Minute),
			Open: 1.1000, High: 1.1001, Low: 1.0999, Close: 1.1000,
		}
	}
	m15[57].High = 1.1004
	m15[57].Low = 1.0996

	// Ascending daily closes: positive momentum, Long bias.
	d1Start := m1Start.AddDate(0, 0, -5)
	closes := []float64{1.0970, 1.0980, 1.0990, 1.1000}
	d1 = make(market.Series, len(closes))
	for i, c := range closes {
		d1[i] = market.Candle{
			Time: d1Start.AddDate(0, 0, i),
			Open: c - 0.0005, High: c + 0.0010, Low: c - 0.0015, Close: c,
		}
	}
	return m1, m15, d1
}

func testLabeler(params signal.Params) *Labeler {
	return &Labeler{
		Point:   0.0001,
		Params:  params,
		MaxBars: 10,
		Workers: 4,
		Noise:   FixedNoise{SlippagePts: 0.5, SpreadPts: 1.0, Ticks: 25},
		Log:     zerolog.Nop(),
	}
}

func TestLabelerEmitsRecordPerQualifyingIndex(t *testing.T) {
	m1, m15, d1 := labelerFixture(210)
	l := testLabeler(labelerParams())

	records, err := l.Run(context.Background(), m1, m15, d1)
	require.NoError(t, err)

	// Scan covers max(sr_lookback, atr_period, 100) .. len-max_bars.
	assert.Len(t, records, 100)

	for _, rec := range records {
		// TP is never reached on a flat path: timeout loss at max_bars.
		assert.False(t, rec.Win)
		assert.Equal(t, l.MaxBars*60, rec.TimeToHit)
		assert.InDelta(t, 0.5, rec.SlippagePts, 1e-9)

		fv := rec.Features
		assert.Equal(t, 1.0, fv.DailyBias)
		assert.InDelta(t, 1.1002, fv.PriceAtSignal, 1e-9)
		assert.InDelta(t, 1.0, fv.PlannedRR, 1e-9)
		assert.InDelta(t, 1.0, fv.SpreadPts, 1e-9)
		assert.InDelta(t, 25.0, fv.TickDensity30s, 1e-9)
		assert.Greater(t, fv.ATRM1, 0.0)
		assert.Greater(t, fv.SLPips, 0.0)
	}
}

func TestLabelerSkipsWithoutHistory(t *testing.T) {
	m1, m15, d1 := labelerFixture(210)

	// Push all M15 bars after the scanned range: the timestamp join then
	// yields an empty slice at every index, so nothing qualifies.
	for i := range m15 {
		m15[i].Time = m1[len(m1)-1].Time.Add(time.Duration(i+1) * 15 * time.Minute)
	}

	l := testLabeler(labelerParams())
	records, err := l.Run(context.Background(), m1, m15, d1)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLabelerShortSeries(t *testing.T) {
	m1, m15, d1 := labelerFixture(50)
	l := testLabeler(labelerParams())

	records, err := l.Run(context.Background(), m1, m15, d1)
	require.NoError(t, err)
	assert.Nil(t, records)
}

func TestLabelerNoLookaheadInFeatures(t *testing.T) {
	m1, m15, d1 := labelerFixture(210)

	// Corrupt the forward window only: a price spike after the last
	// scanned index must not change any emitted feature vector.
	base, err := testLabeler(labelerParams()).Run(context.Background(), m1, m15, d1)
	require.NoError(t, err)

	spiked := make(market.Series, len(m1))
	copy(spiked, m1)
	spiked[len(spiked)-1].High = 2.0
	spiked[len(spiked)-1].Close = 2.0

	again, err := testLabeler(labelerParams()).Run(context.Background(), spiked, m15, d1)
	require.NoError(t, err)
	require.Len(t, again, len(base))

	priceSeen := map[float64]int{}
	for _, rec := range base {
		priceSeen[rec.Features.PriceAtSignal]++
	}
	for _, rec := range again {
		assert.Contains(t, priceSeen, rec.Features.PriceAtSignal)
	}
}
