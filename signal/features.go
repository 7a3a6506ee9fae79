package signal

// FeatureVector is the fixed-schema feature record shared between the
// pipeline, the labeler, the dataset writers and the oracle. The field order
// pinned by Columns/Values is the oracle's input contract; never reorder.
type FeatureVector struct {
	DailyBias        float64
	PriceAtSignal    float64
	ATRM1            float64
	ATRM15           float64
	DistZonePts      float64
	ZoneWidthPts     float64
	PlannedRR        float64
	SpreadPts        float64
	Volatility60     float64
	HourOfDay        float64
	Weekday          float64
	Momentum1M       float64
	Momentum5M       float64
	SLPips           float64
	TPPips           float64
	TickDensity30s   float64
	RejectionWickPts float64
	RejectionBodyPct float64
}

// Columns returns the pinned feature column names, in oracle input order.
func Columns() []string {
	return []string{
		"daily_bias",
		"price_at_signal",
		"atr_m1",
		"atr_m15",
		"dist_zone_pts",
		"zone_width_pts",
		"planned_rr",
		"spread_pts",
		"volatility_60",
		"hour_of_day",
		"weekday",
		"momentum_1m",
		"momentum_5m",
		"sl_pips",
		"tp_pips",
		"tick_density_30s",
		"rejection_wick_pts",
		"rejection_body_pct",
	}
}

// Values returns the feature values in the same order as Columns.
func (fv FeatureVector) Values() []float64 {
	return []float64{
		fv.DailyBias,
		fv.PriceAtSignal,
		fv.ATRM1,
		fv.ATRM15,
		fv.DistZonePts,
		fv.ZoneWidthPts,
		fv.PlannedRR,
		fv.SpreadPts,
		fv.Volatility60,
		fv.HourOfDay,
		fv.Weekday,
		fv.Momentum1M,
		fv.Momentum5M,
		fv.SLPips,
		fv.TPPips,
		fv.TickDensity30s,
		fv.RejectionWickPts,
		fv.RejectionBodyPct,
	}
}
