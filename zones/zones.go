// Package zones merges clustered swing levels into support/resistance price
// bands.
package zones

// Zone is a (low, high) price band derived from clustered swing levels.
// Invariant: Low <= High. A slice of zones produced by Cluster is sorted
// ascending and pairwise non-overlapping.
type Zone struct {
	Low  float64
	High float64
}

// Mid returns the midpoint of the band.
func (z Zone) Mid() float64 { return (z.Low + z.High) / 2.0 }

// Width returns the band height in price units.
func (z Zone) Width() float64 { return z.High - z.Low }

// Touches reports whether price lies within the band extended by buffer on
// both sides.
func (z Zone) Touches(price, buffer float64) bool {
	return price >= z.Low-buffer && price <= z.High+buffer
}

// Cluster merges ascending-sorted levels into bands. A running band is
// seeded with the first level; each subsequent level joins the band when it
// is within clusterDistance of the band's current high, otherwise the band
// is closed and a new one started.
//
// Extension is tested against the current high only, not the nearest point
// already in the band, so a chain of levels each within threshold of the
// previous one forms a single band wider than the threshold. This is the
// contract; do not replace it with nearest-point clustering.
func Cluster(levels []float64, clusterDistance float64) []Zone {
	if len(levels) == 0 {
		return nil
	}

	zones := make([]Zone, 0, len(levels))
	cur := Zone{Low: levels[0], High: levels[0]}
	for _, lv := range levels[1:] {
		if lv-cur.High <= clusterDistance {
			if lv > cur.High {
				cur.High = lv
			}
			if lv < cur.Low {
				cur.Low = lv
			}
			continue
		}
		zones = append(zones, cur)
		cur = Zone{Low: lv, High: lv}
	}
	return append(zones, cur)
}
