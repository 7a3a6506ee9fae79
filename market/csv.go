package market

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"20060102 150405",
}

// IngestStats reports lines excluded while loading a candle file.
type IngestStats struct {
	BadLines  int // unparseable rows
	Malformed int // candles violating the high/low invariant
}

// LoadCSV reads a candle file with columns
// timestamp,open,high,low,close,volume. Unparseable rows and malformed
// candles are excluded and counted; non-monotonic timestamps reject the
// whole file.
func LoadCSV(path string) (Series, IngestStats, error) {
	var stats IngestStats

	f, err := os.Open(path)
	if err != nil {
		return nil, stats, fmt.Errorf("open candle file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, stats, fmt.Errorf("read candle file %s: %w", path, err)
	}

	candles := make([]Candle, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == "timestamp" {
			continue
		}
		if len(row) < 6 {
			stats.BadLines++
			continue
		}
		ts, err := parseTimestamp(row[0])
		if err != nil {
			stats.BadLines++
			continue
		}
		var vals [5]float64
		ok := true
		for j := 0; j < 5; j++ {
			if vals[j], err = strconv.ParseFloat(row[j+1], 64); err != nil {
				ok = false
				break
			}
		}
		if !ok {
			stats.BadLines++
			continue
		}
		candles = append(candles, Candle{
			Time:   ts,
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}

	s, malformed, err := NewSeries(candles)
	stats.Malformed = malformed
	if err != nil {
		return nil, stats, fmt.Errorf("candle file %s: %w", path, err)
	}
	if len(s) == 0 {
		return nil, stats, fmt.Errorf("no valid candles in %s", path)
	}
	return s, stats, nil
}

// SaveCSV writes the series in the same schema LoadCSV reads.
func SaveCSV(path string, s Series) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create candle file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"timestamp", "open", "high", "low", "close", "volume"}); err != nil {
		return err
	}
	for _, c := range s {
		err := w.Write([]string{
			c.Time.UTC().Format(time.RFC3339),
			fp(c.Open), fp(c.High), fp(c.Low), fp(c.Close),
			strconv.FormatFloat(c.Volume, 'f', 0, 64),
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func parseTimestamp(field string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, field); err == nil {
			return ts, nil
		}
	}
	if unix, err := strconv.ParseInt(field, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", field)
}

func fp(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
