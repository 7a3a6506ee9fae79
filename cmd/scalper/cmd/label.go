package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/scalper/dataset"
	"github.com/rustyeddy/scalper/label"
)

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Replay history and emit a labeled training dataset",
	Long: `Label walks the configured M1 history, replays the base signal
logic at each index with look-back data only, simulates the forward outcome
of each qualifying signal, and writes one training record per signal to the
configured CSV or SQLite output.`,
	RunE: runLabel,
}

func init() {
	rootCmd.AddCommand(labelCmd)
}

func runLabel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger()

	m1, m15, d1, err := loadSeries(cfg.Data.M1, cfg.Data.M15, cfg.Data.D1, log)
	if err != nil {
		return err
	}

	seed := cfg.Labeler.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	l := &label.Labeler{
		Point:   cfg.Point(),
		Params:  cfg.Signal,
		MaxBars: cfg.Labeler.MaxBars,
		Workers: cfg.Labeler.Workers,
		Noise:   label.NewGaussianNoise(seed),
		Log:     log.With().Str("component", "labeler").Logger(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	records, err := l.Run(ctx, m1, m15, d1)
	if err != nil && len(records) == 0 {
		return err
	}
	if len(records) == 0 {
		log.Warn().Msg("no valid trades found for labeling")
		return nil
	}

	var w dataset.Writer
	switch cfg.Labeler.Output {
	case "sqlite":
		w, err = dataset.NewSQLite(cfg.Labeler.Path)
	default:
		w, err = dataset.NewCSV(cfg.Labeler.Path)
	}
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer w.Close()

	for _, rec := range records {
		if err := w.Record(rec); err != nil {
			return fmt.Errorf("write dataset: %w", err)
		}
	}

	log.Info().
		Int("records", len(records)).
		Str("path", cfg.Labeler.Path).
		Msg("dataset written")
	return nil
}
