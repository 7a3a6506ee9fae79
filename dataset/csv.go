package dataset

import (
	"encoding/csv"
	"os"

	"github.com/rustyeddy/scalper/label"
)

type CSVWriter struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(Columns()); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVWriter{w: w, f: f}, nil
}

func (c *CSVWriter) Record(r label.TrainingRecord) error {
	if err := c.w.Write(row(r)); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}

func (c *CSVWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return err
	}
	return c.f.Close()
}
