package domain

import "github.com/shopspring/decimal"

// Side is the order direction.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Valid reports whether the side is one of the two exchange-accepted values.
func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// OrderType is the user-facing order type.
type OrderType string

const (
	OrderTypeMarket    OrderType = "MARKET"
	OrderTypeLimit     OrderType = "LIMIT"
	OrderTypeStopLimit OrderType = "STOP_LIMIT"
)

// Valid reports whether the order type is supported.
func (t OrderType) Valid() bool {
	return t == OrderTypeMarket || t == OrderTypeLimit || t == OrderTypeStopLimit
}

// RequiresPrice reports whether the type needs a limit price.
func (t OrderType) RequiresPrice() bool {
	return t == OrderTypeLimit || t == OrderTypeStopLimit
}

// RequiresStopPrice reports whether the type needs a trigger price.
func (t OrderType) RequiresStopPrice() bool {
	return t == OrderTypeStopLimit
}

// OrderRequest is validated user intent. It is only ever constructed by the
// validator; downstream stages may assume its invariants hold:
// Quantity > 0, Price set iff the type requires it, StopPrice set iff the
// type requires it.
type OrderRequest struct {
	Symbol    string
	Side      Side
	Type      OrderType
	Quantity  decimal.Decimal
	Price     decimal.Decimal // zero unless Type.RequiresPrice()
	StopPrice decimal.Decimal // zero unless Type.RequiresStopPrice()
}

// OrderPayload is the exchange wire shape for a single order placement.
// Type carries the exchange's own type string: the stop-limit variant on
// Binance USDT-M futures is "STOP", not "STOP_LIMIT".
type OrderPayload struct {
	Symbol        string
	Side          string
	Type          string // "MARKET", "LIMIT", "STOP"
	Quantity      decimal.Decimal
	Price         decimal.Decimal // zero for MARKET
	StopPrice     decimal.Decimal // zero unless stop-limit
	TimeInForce   string          // "GTC" for priced types, empty for MARKET
	ClientOrderID string
}
