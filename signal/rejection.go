package signal

import (
	"github.com/rustyeddy/scalper/market"
	"github.com/rustyeddy/scalper/zones"
)

// DetectRejection scans the recent M1 candles oldest to newest for a wick
// rejection against the zone. A bullish rejection is a candle whose lower
// wick is at least minWickPts points, whose low reached the zone's high
// (plus two points of tolerance) and which closed above its open; bearish is
// the mirror against the zone's low. The scan stops at the first qualifying
// candle, not the strongest one.
func DetectRejection(recent market.Series, zone zones.Zone, minWickPts, point float64) bool {
	for _, c := range recent {
		if c.LowerWick()/point >= minWickPts && c.Low <= zone.High+2*point && c.Bullish() {
			return true
		}
		if c.UpperWick()/point >= minWickPts && c.High >= zone.Low-2*point && c.Bearish() {
			return true
		}
	}
	return false
}
