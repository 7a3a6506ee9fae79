// Package dataset persists labeled training records. Column order is the
// pinned feature order from the signal package followed by the label
// columns; both writers emit exactly that layout.
package dataset

import (
	"strconv"

	"github.com/rustyeddy/scalper/label"
	"github.com/rustyeddy/scalper/signal"
)

// Writer accumulates training records into a dataset.
type Writer interface {
	Record(label.TrainingRecord) error
	Close() error
}

// Columns returns the full dataset header: feature columns, then
// win (0/1), time_to_hit (seconds) and slippage_pts.
func Columns() []string {
	return append(signal.Columns(), "win", "time_to_hit", "slippage_pts")
}

func row(r label.TrainingRecord) []string {
	vals := r.Features.Values()
	out := make([]string, 0, len(vals)+3)
	for _, v := range vals {
		out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
	}
	win := "0"
	if r.Win {
		win = "1"
	}
	out = append(out, win,
		strconv.Itoa(r.TimeToHit),
		strconv.FormatFloat(r.SlippagePts, 'f', -1, 64))
	return out
}
