package dataset

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/scalper/label"
	"github.com/rustyeddy/scalper/pkg/id"
)

type SQLiteWriter struct {
	db     *sql.DB
	insert *sql.Stmt
}

func NewSQLite(path string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema()); err != nil {
		db.Close()
		return nil, err
	}

	stmt, err := db.Prepare(insertStmt())
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteWriter{db: db, insert: stmt}, nil
}

func (s *SQLiteWriter) Record(r label.TrainingRecord) error {
	vals := r.Features.Values()
	args := make([]any, 0, len(vals)+4)
	args = append(args, id.New())
	for _, v := range vals {
		args = append(args, v)
	}
	win := 0
	if r.Win {
		win = 1
	}
	args = append(args, win, r.TimeToHit, r.SlippagePts)

	_, err := s.insert.Exec(args...)
	return err
}

// Count returns the number of stored records.
func (s *SQLiteWriter) Count() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM training_records").Scan(&n)
	return n, err
}

func (s *SQLiteWriter) Close() error {
	s.insert.Close()
	return s.db.Close()
}
