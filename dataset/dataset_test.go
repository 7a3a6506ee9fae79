package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/scalper/label"
	"github.com/rustyeddy/scalper/signal"
)

func sampleRecord(win bool) label.TrainingRecord {
	return label.TrainingRecord{
		Features: signal.FeatureVector{
			DailyBias:     1,
			PriceAtSignal: 1.1002,
			ATRM1:         0.0004,
			PlannedRR:     2,
			HourOfDay:     14,
		},
		Win:         win,
		TimeToHit:   180,
		SlippagePts: 1.5,
	}
}

func TestColumnsLayout(t *testing.T) {
	cols := Columns()
	require.Len(t, cols, len(signal.Columns())+3)

	assert.Equal(t, "daily_bias", cols[0])
	assert.Equal(t, "win", cols[len(cols)-3])
	assert.Equal(t, "time_to_hit", cols[len(cols)-2])
	assert.Equal(t, "slippage_pts", cols[len(cols)-1])
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labeled.csv")

	w, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, w.Record(sampleRecord(true)))
	require.NoError(t, w.Record(sampleRecord(false)))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Columns(), rows[0])
	for _, r := range rows[1:] {
		assert.Len(t, r, len(Columns()))
	}
	// win, time_to_hit, slippage_pts trail each row.
	n := len(Columns())
	assert.Equal(t, "1", rows[1][n-3])
	assert.Equal(t, "0", rows[2][n-3])
	assert.Equal(t, "180", rows[1][n-2])
	assert.Equal(t, "1.5", rows[1][n-1])
}

func TestSQLiteWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labeled.db")

	w, err := NewSQLite(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Record(sampleRecord(true)))
	require.NoError(t, w.Record(sampleRecord(false)))
	require.NoError(t, w.Record(sampleRecord(false)))

	n, err := w.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var wins int
	require.NoError(t, w.db.QueryRow(
		"SELECT COUNT(*) FROM training_records WHERE win = 1").Scan(&wins))
	assert.Equal(t, 1, wins)
}
