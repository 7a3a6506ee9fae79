package zones

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterChainsAgainstCurrentHigh(t *testing.T) {
	// Each step is within the threshold of the previous level, so the chain
	// forms one band even though 2.0 is further than 0.6 from the band low.
	levels := []float64{1.0, 1.5, 2.0, 5.0}

	bands := Cluster(levels, 0.6)
	require.Len(t, bands, 2)
	assert.Equal(t, Zone{Low: 1.0, High: 2.0}, bands[0])
	assert.Equal(t, Zone{Low: 5.0, High: 5.0}, bands[1])
}

func TestClusterProperties(t *testing.T) {
	levels := []float64{1.0950, 1.0962, 1.0981, 1.1005, 1.1010, 1.1042}

	bands := Cluster(levels, 0.0010)
	require.NotEmpty(t, bands)

	for i, z := range bands {
		assert.LessOrEqual(t, z.Low, z.High)
		if i > 0 {
			// Sorted and pairwise non-overlapping.
			assert.Greater(t, z.Low, bands[i-1].High)
		}
	}

	// Every input level lies within exactly one band.
	for _, lv := range levels {
		n := 0
		for _, z := range bands {
			if lv >= z.Low && lv <= z.High {
				n++
			}
		}
		assert.Equal(t, 1, n, "level %v", lv)
	}
}

func TestClusterSingleLevel(t *testing.T) {
	bands := Cluster([]float64{1.25}, 0)
	require.Len(t, bands, 1)
	assert.Equal(t, Zone{Low: 1.25, High: 1.25}, bands[0])
}

func TestClusterEmpty(t *testing.T) {
	assert.Nil(t, Cluster(nil, 0.5))
}

func TestZoneGeometry(t *testing.T) {
	z := Zone{Low: 1.0990, High: 1.1000}

	assert.InDelta(t, 1.0995, z.Mid(), 1e-9)
	assert.InDelta(t, 0.0010, z.Width(), 1e-9)

	assert.True(t, z.Touches(1.1004, 0.0005))
	assert.True(t, z.Touches(1.0986, 0.0005))
	assert.False(t, z.Touches(1.1006, 0.0005))
}
