package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// OrderResult is the normalized exchange response for a placed, listed or
// canceled order. Immutable once created.
type OrderResult struct {
	OrderID       int64
	ClientOrderID string
	Symbol        string
	Side          string
	Type          string // exchange type string ("MARKET", "LIMIT", "STOP")
	Status        string // "NEW", "PARTIALLY_FILLED", "FILLED", "CANCELED", ...
	OrigQty       decimal.Decimal
	ExecutedQty   decimal.Decimal
	AvgPrice      decimal.Decimal
	Price         decimal.Decimal
	StopPrice     decimal.Decimal
	UpdateTimeMs  int64           // exchange timestamp, Unix milliseconds
	Raw           json.RawMessage // untouched response body
}

// IsOpen reports whether the order is still active on the exchange.
func (r *OrderResult) IsOpen() bool {
	return r.Status == "NEW" || r.Status == "PARTIALLY_FILLED"
}

// AssetBalance is a single futures wallet asset balance.
type AssetBalance struct {
	Asset      string
	Balance    decimal.Decimal
	Available  decimal.Decimal
	CrossUnPnl decimal.Decimal
}

// MarkPrice is one update from the mark-price stream.
type MarkPrice struct {
	Symbol      string
	Price       decimal.Decimal
	EventTimeMs int64
}
