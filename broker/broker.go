// Package broker is the order-submission boundary. The core hands a
// candidate's side and derived levels to a Broker and treats the result
// opaquely; real venue connectivity lives behind this interface, out of the
// core's sight.
package broker

import (
	"context"

	"github.com/rustyeddy/scalper/signal"
)

type Broker interface {
	PlaceOrder(ctx context.Context, req OrderRequest) (OrderResult, error)
}

type OrderRequest struct {
	Side       signal.Side
	Volume     float64
	Symbol     string
	StopLoss   float64
	TakeProfit float64
	Comment    string
}

type OrderResult struct {
	Status    string
	OrderID   string
	FillPrice float64
}

// FromCandidate builds the order request for an accepted candidate.
func FromCandidate(c *signal.Candidate, symbol string, volume float64) OrderRequest {
	return OrderRequest{
		Side:       c.Side,
		Volume:     volume,
		Symbol:     symbol,
		StopLoss:   c.StopLoss,
		TakeProfit: c.TakeProfit,
		Comment:    c.ID,
	}
}
