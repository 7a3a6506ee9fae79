package broker

import (
	"context"
	"math/rand"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/scalper/pkg/id"
)

// Paper simulates order execution: it fills every order at a jittered price
// around the reference and never talks to a venue. Replace with a real
// broker adapter for live use.
type Paper struct {
	RefPrice float64
	Point    float64
	Log      zerolog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewPaper(refPrice, point float64, seed int64, log zerolog.Logger) *Paper {
	return &Paper{
		RefPrice: refPrice,
		Point:    point,
		Log:      log,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (p *Paper) PlaceOrder(ctx context.Context, req OrderRequest) (OrderResult, error) {
	if err := ctx.Err(); err != nil {
		return OrderResult{}, err
	}

	p.mu.Lock()
	jitter := (p.rng.Float64() - 0.5) * 10 * p.Point
	p.mu.Unlock()

	res := OrderResult{
		Status:    "filled",
		OrderID:   id.New(),
		FillPrice: p.RefPrice + jitter,
	}

	p.Log.Info().
		Str("order_id", res.OrderID).
		Str("side", req.Side.String()).
		Str("symbol", req.Symbol).
		Float64("volume", req.Volume).
		Float64("sl", req.StopLoss).
		Float64("tp", req.TakeProfit).
		Float64("fill", res.FillPrice).
		Msg("paper order filled")

	return res, nil
}
