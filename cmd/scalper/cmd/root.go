package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/scalper/config"
)

var rootCmd = &cobra.Command{
	Use:   "scalper",
	Short: "ML-gated support/resistance scalping research platform",
	Long: `Scalper is a market-signal research platform written in Go.

It provides tools for:
  - Evaluating the zone/rejection signal pipeline on candle data
  - Labeling historical data into ML training datasets
  - Generating synthetic sample data for experiments
  - Paper order placement for dry runs`,
}

var (
	cfgPath string
	verbose bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// loadConfig returns the file config when --config is set, defaults otherwise.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgPath)
}

// newLogger builds the process logger handed into every component.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
