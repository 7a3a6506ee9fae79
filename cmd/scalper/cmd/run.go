package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/scalper/broker"
	"github.com/rustyeddy/scalper/engine"
	"github.com/rustyeddy/scalper/market"
	sig "github.com/rustyeddy/scalper/signal"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the live decision loop over loaded candle data",
	Long: `Run loads the configured M1/M15/D1 candle files and evaluates the
signal pipeline on a fixed cadence, placing paper orders for accepted
candidates. Stop with Ctrl-C.`,
	RunE: runEngine,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runEngine(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger()

	m1, m15, d1, err := loadSeries(cfg.Data.M1, cfg.Data.M15, cfg.Data.D1, log)
	if err != nil {
		return err
	}

	gate, err := engine.BuildGate(cfg.Gate)
	if err != nil {
		return err
	}
	if cfg.Gate.Type == "fallback" {
		log.Warn().Msg("no trained model configured, using fallback gate")
	}

	interval, err := cfg.Engine.ParseInterval()
	if err != nil {
		return err
	}

	e := &engine.Engine{
		Pipeline: sig.NewPipeline(cfg.Point(), cfg.Signal, gate),
		Broker:   broker.NewPaper(m1.Last().Close, cfg.Point(), 1, log.With().Str("component", "broker").Logger()),
		Symbol:   cfg.Instrument,
		Volume:   cfg.Order.Volume,
		Interval: interval,
		Log:      log.With().Str("component", "engine").Logger(),
		M1:       m1,
		M15:      m15,
		D1:       d1,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := e.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func loadSeries(m1Path, m15Path, d1Path string, log zerolog.Logger) (m1, m15, d1 market.Series, err error) {
	load := func(path, tf string) (market.Series, error) {
		s, stats, err := market.LoadCSV(path)
		if err != nil {
			return nil, fmt.Errorf("load %s candles: %w", tf, err)
		}
		if stats.BadLines > 0 || stats.Malformed > 0 {
			log.Warn().
				Str("file", path).
				Int("bad_lines", stats.BadLines).
				Int("malformed", stats.Malformed).
				Msg("ingest warnings")
		}
		return s, nil
	}

	if m1, err = load(m1Path, "M1"); err != nil {
		return
	}
	if m15, err = load(m15Path, "M15"); err != nil {
		return
	}
	d1, err = load(d1Path, "D1")
	return
}
