package order

import (
	"github.com/google/uuid"

	"github.com/vishal-ladwa-19/binance-trading-bot/internal/domain"
)

// Exchange wire constants for Binance USDT-M futures.
const (
	exchangeTypeMarket    = "MARKET"
	exchangeTypeLimit     = "LIMIT"
	exchangeTypeStopLimit = "STOP" // Binance's stop-limit variant
	timeInForceGTC        = "GTC"
)

// Build maps a validated request onto the exchange payload. Pure mapping,
// no failure modes: the validator has already enforced every invariant.
// MARKET payloads carry no price, stop price or time-in-force at all.
func Build(req domain.OrderRequest) domain.OrderPayload {
	p := domain.OrderPayload{
		Symbol:        req.Symbol,
		Side:          string(req.Side),
		Quantity:      req.Quantity,
		ClientOrderID: uuid.NewString(),
	}

	switch req.Type {
	case domain.OrderTypeLimit:
		p.Type = exchangeTypeLimit
		p.Price = req.Price
		p.TimeInForce = timeInForceGTC
	case domain.OrderTypeStopLimit:
		p.Type = exchangeTypeStopLimit
		p.Price = req.Price
		p.StopPrice = req.StopPrice
		p.TimeInForce = timeInForceGTC
	default:
		p.Type = exchangeTypeMarket
	}

	return p
}
