package signal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackGateRanges(t *testing.T) {
	g := NewFallbackGate(42)

	for i := 0; i < 100; i++ {
		pred, err := g.Predict(FeatureVector{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pred.PWin, 0.45)
		assert.Less(t, pred.PWin, 0.75)
		assert.GreaterOrEqual(t, pred.PredSlippage, 1.0)
		assert.Less(t, pred.PredSlippage, 8.0)
	}
}

func writeCoefficients(t *testing.T, winBias float64, omit string) string {
	t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "win_bias: %g\n", winBias)
	b.WriteString("win_weights:\n")
	for _, col := range Columns() {
		if col == omit {
			continue
		}
		fmt.Fprintf(&b, "  %s: 0.0\n", col)
	}
	b.WriteString("slippage_bias: 2.0\nslippage_weights:\n")
	for _, col := range Columns() {
		fmt.Fprintf(&b, "  %s: 0.0\n", col)
	}

	path := filepath.Join(t.TempDir(), "coeffs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestCoefficientGatePredict(t *testing.T) {
	g, err := LoadCoefficientGate(writeCoefficients(t, 0, ""))
	require.NoError(t, err)

	pred, err := g.Predict(FeatureVector{ATRM1: 0.0004, DistZonePts: 12})
	require.NoError(t, err)
	// Zero weights and zero bias: sigmoid(0) = 0.5, slippage = bias.
	assert.InDelta(t, 0.5, pred.PWin, 1e-9)
	assert.InDelta(t, 2.0, pred.PredSlippage, 1e-9)
}

func TestCoefficientGateBounds(t *testing.T) {
	g, err := LoadCoefficientGate(writeCoefficients(t, 50, ""))
	require.NoError(t, err)

	pred, err := g.Predict(FeatureVector{})
	require.NoError(t, err)
	assert.LessOrEqual(t, pred.PWin, 1.0)
	assert.GreaterOrEqual(t, pred.PredSlippage, 0.0)
}

func TestCoefficientGateRejectsMissingColumn(t *testing.T) {
	_, err := LoadCoefficientGate(writeCoefficients(t, 0, "atr_m1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "atr_m1")
}

func TestCoefficientGateMissingFile(t *testing.T) {
	_, err := LoadCoefficientGate(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
