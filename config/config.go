package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/scalper/market"
	"github.com/rustyeddy/scalper/signal"
)

// Config is the complete runtime configuration: the recognized signal
// options plus the boundary settings (data paths, gate selection, labeler
// output, order volume).
type Config struct {
	Instrument string        `json:"instrument" yaml:"instrument"`
	Data       DataConfig    `json:"data" yaml:"data"`
	Signal     signal.Params `json:"signal" yaml:"signal"`
	Gate       GateConfig    `json:"gate" yaml:"gate"`
	Labeler    LabelerConfig `json:"labeler" yaml:"labeler"`
	Order      OrderConfig   `json:"order" yaml:"order"`
	Engine     EngineConfig  `json:"engine" yaml:"engine"`
}

// DataConfig points at the per-timeframe candle CSV files.
type DataConfig struct {
	M1  string `json:"m1" yaml:"m1"`
	M15 string `json:"m15" yaml:"m15"`
	D1  string `json:"d1" yaml:"d1"`
}

// GateConfig selects the oracle realization at construction time.
type GateConfig struct {
	Type      string `json:"type" yaml:"type"` // "model" or "fallback"
	ModelPath string `json:"model_path,omitempty" yaml:"model_path,omitempty"`
	Seed      int64  `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// LabelerConfig controls the historical labeling scan.
type LabelerConfig struct {
	MaxBars int    `json:"max_bars" yaml:"max_bars"`
	Workers int    `json:"workers" yaml:"workers"`
	Output  string `json:"output" yaml:"output"` // "csv" or "sqlite"
	Path    string `json:"path" yaml:"path"`
	Seed    int64  `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// OrderConfig holds order-placement parameters.
type OrderConfig struct {
	Volume float64 `json:"volume" yaml:"volume"`
}

// EngineConfig holds live-loop parameters.
type EngineConfig struct {
	Interval string `json:"interval" yaml:"interval"` // e.g. "2s"
}

// ParseInterval converts the engine interval to a duration.
func (e EngineConfig) ParseInterval() (time.Duration, error) {
	if e.Interval == "" {
		return 2 * time.Second, nil
	}
	return time.ParseDuration(e.Interval)
}

// LoadFromFile loads configuration from a file (YAML with JSON fallback).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Instrument == "" {
		return fmt.Errorf("instrument is required")
	}
	if _, ok := market.Instruments[c.Instrument]; !ok {
		return fmt.Errorf("unknown instrument: %s", c.Instrument)
	}
	s := c.Signal
	if s.SRLookback <= 0 {
		return fmt.Errorf("signal.sr_lookback must be positive")
	}
	if s.SRClusterPips < 0 {
		return fmt.Errorf("signal.sr_cluster_pips must not be negative")
	}
	if s.ATRPeriod <= 0 {
		return fmt.Errorf("signal.atr_period must be positive")
	}
	if s.TPMult <= 0 || s.SLMult <= 0 {
		return fmt.Errorf("signal tp_mult and sl_mult must be positive")
	}
	if s.PThreshold < 0 || s.PThreshold > 1 {
		return fmt.Errorf("signal.p_threshold must be within [0,1]")
	}
	if s.RequireRejection && s.RejectionCandles <= 0 {
		return fmt.Errorf("signal.rejection_candles must be positive when rejection is required")
	}
	switch c.Gate.Type {
	case "model":
		if c.Gate.ModelPath == "" {
			return fmt.Errorf("gate.model_path required for model gate")
		}
	case "fallback":
	default:
		return fmt.Errorf("gate.type must be 'model' or 'fallback'")
	}
	switch c.Labeler.Output {
	case "csv", "sqlite":
		if c.Labeler.Path == "" {
			return fmt.Errorf("labeler.path is required")
		}
	default:
		return fmt.Errorf("labeler.output must be 'csv' or 'sqlite'")
	}
	if c.Labeler.MaxBars <= 0 {
		return fmt.Errorf("labeler.max_bars must be positive")
	}
	if c.Order.Volume <= 0 {
		return fmt.Errorf("order.volume must be positive")
	}
	if _, err := c.Engine.ParseInterval(); err != nil {
		return fmt.Errorf("engine.interval: %w", err)
	}
	return nil
}

// Point returns the instrument's smallest price increment.
func (c *Config) Point() float64 {
	return market.Instruments[c.Instrument].Point
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Instrument: "EUR_USD",
		Data: DataConfig{
			M1:  "data/EURUSD_M1.csv",
			M15: "data/EURUSD_M15.csv",
			D1:  "data/EURUSD_D1.csv",
		},
		Signal: signal.DefaultParams(),
		Gate: GateConfig{
			Type: "fallback",
		},
		Labeler: LabelerConfig{
			MaxBars: 100,
			Workers: 4,
			Output:  "csv",
			Path:    "data/labeled_trades.csv",
		},
		Order: OrderConfig{
			Volume: 0.01,
		},
		Engine: EngineConfig{
			Interval: "2s",
		},
	}
}
