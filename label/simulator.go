package label

import (
	"github.com/rustyeddy/scalper/market"
	"github.com/rustyeddy/scalper/signal"
)

// Outcome is the simulated result of entering at a historical bar and
// walking forward until TP, SL or timeout.
type Outcome struct {
	Win         bool
	TimeToHit   int // seconds
	SlippagePts float64

	EntryActual float64
	SLPrice     float64
	TPPrice     float64
}

// SimulateOutcome walks forward from entryIdx over bars entryIdx+1 ..
// entryIdx+maxBars. For a buy the take-profit test (high >= tp) precedes the
// stop-loss test within each bar, so a bar touching both resolves to a win;
// the sell branch mirrors that ordering. If neither level is hit within
// maxBars the outcome is a timeout loss with TimeToHit = maxBars bars.
//
// SL/TP derive from the entry close +/- slMult/tpMult * atr. Slippage is a
// draw from the noise source, applied in the direction of the trade; it is a
// placeholder perturbation, not a market-impact model.
func SimulateOutcome(m1 market.Series, entryIdx int, side signal.Side, atr float64,
	slMult, tpMult, point float64, maxBars int, noise NoiseSource) Outcome {

	entry := m1[entryIdx].Close
	dir := float64(side)

	sl := entry - dir*slMult*atr
	tp := entry + dir*tpMult*atr

	slip := noise.Slippage()
	out := Outcome{
		Win:         false,
		TimeToHit:   maxBars * int(market.M1),
		SlippagePts: abs(slip),
		EntryActual: entry + slip*point*dir,
		SLPrice:     sl,
		TPPrice:     tp,
	}

	for i := 1; i <= maxBars && entryIdx+i < len(m1); i++ {
		bar := m1[entryIdx+i]
		if side == signal.Buy {
			if bar.High >= tp {
				out.Win = true
				out.TimeToHit = i * int(market.M1)
				return out
			}
			if bar.Low <= sl {
				out.TimeToHit = i * int(market.M1)
				return out
			}
			continue
		}
		if bar.Low <= tp {
			out.Win = true
			out.TimeToHit = i * int(market.M1)
			return out
		}
		if bar.High >= sl {
			out.TimeToHit = i * int(market.M1)
			return out
		}
	}
	return out
}
