package dataset

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/scalper/signal"
)

// schema builds the training_records table from the pinned feature columns,
// so the SQLite layout can never drift from the CSV layout.
func schema() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS training_records (\n")
	b.WriteString("\tid TEXT PRIMARY KEY,\n")
	for _, col := range signal.Columns() {
		fmt.Fprintf(&b, "\t%s REAL NOT NULL,\n", col)
	}
	b.WriteString("\twin INTEGER NOT NULL,\n")
	b.WriteString("\ttime_to_hit INTEGER NOT NULL,\n")
	b.WriteString("\tslippage_pts REAL NOT NULL\n")
	b.WriteString(");\n")
	b.WriteString("CREATE INDEX IF NOT EXISTS idx_training_win ON training_records(win);\n")
	return b.String()
}

func insertStmt() string {
	cols := append([]string{"id"}, Columns()...)
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO training_records (%s) VALUES (%s)",
		strings.Join(cols, ", "), marks)
}
