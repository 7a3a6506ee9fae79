// Package engine runs the live decision loop: evaluate the pipeline on a
// cadence, hand accepted candidates to the order collaborator, count the
// rest. The core stays synchronous; this is the only place with a clock.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/scalper/broker"
	"github.com/rustyeddy/scalper/config"
	"github.com/rustyeddy/scalper/indicators"
	"github.com/rustyeddy/scalper/market"
	"github.com/rustyeddy/scalper/signal"
)

// Engine evaluates the pipeline against the loaded series and places orders
// for accepted candidates.
type Engine struct {
	Pipeline *signal.Pipeline
	Broker   broker.Broker
	Symbol   string
	Volume   float64
	Interval time.Duration
	Log      zerolog.Logger

	M1  market.Series
	M15 market.Series
	D1  market.Series

	accepted int
	rejected int
}

// BuildGate selects the oracle realization from configuration. The choice
// happens once, here; call sites never branch on gate availability.
func BuildGate(cfg config.GateConfig) (signal.Gate, error) {
	switch cfg.Type {
	case "model":
		gate, err := signal.LoadCoefficientGate(cfg.ModelPath)
		if err != nil {
			return nil, fmt.Errorf("load model gate: %w", err)
		}
		return gate, nil
	case "fallback":
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return signal.NewFallbackGate(seed), nil
	}
	return nil, fmt.Errorf("unknown gate type %q", cfg.Type)
}

// Run evaluates on the configured interval until the context is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	e.Log.Info().
		Str("symbol", e.Symbol).
		Dur("interval", e.Interval).
		Msg("engine started")

	ticker := time.NewTicker(e.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.Log.Info().
				Int("accepted", e.accepted).
				Int("rejected", e.rejected).
				Msg("engine stopped")
			return ctx.Err()
		case <-ticker.C:
			e.Step(ctx)
		}
	}
}

// Step runs one evaluation. Component failures are local: an insufficient
// history or an unavailable gate skips the evaluation, nothing more.
func (e *Engine) Step(ctx context.Context) {
	cand, err := e.Pipeline.Evaluate(e.M1, e.M15, e.D1)
	if err != nil {
		switch {
		case errors.Is(err, indicators.ErrInsufficientHistory):
			e.Log.Debug().Err(err).Msg("skipping evaluation")
		case errors.Is(err, signal.ErrGateUnavailable):
			e.rejected++
			e.Log.Warn().Err(err).Msg("gate unavailable, failing closed")
		default:
			e.Log.Error().Err(err).Msg("evaluation failed")
		}
		return
	}

	if cand == nil {
		e.rejected++
		if e.rejected%10 == 0 {
			e.Log.Info().
				Int("accepted", e.accepted).
				Int("rejected", e.rejected).
				Msg("no valid trade signal")
		}
		return
	}

	e.accepted++
	e.Log.Info().
		Str("candidate", cand.ID).
		Str("side", cand.Side.String()).
		Float64("entry", cand.EntryPrice).
		Float64("p_win", cand.PWin).
		Float64("pred_slippage", cand.PredSlippage).
		Msg("trade candidate accepted")

	res, err := e.Broker.PlaceOrder(ctx, broker.FromCandidate(cand, e.Symbol, e.Volume))
	if err != nil {
		e.Log.Error().Err(err).Msg("order placement failed")
		return
	}
	e.Log.Info().
		Str("order_id", res.OrderID).
		Str("status", res.Status).
		Float64("fill", res.FillPrice).
		Msg("order placed")
}

// Counters reports accepted/rejected evaluation totals.
func (e *Engine) Counters() (accepted, rejected int) {
	return e.accepted, e.rejected
}
