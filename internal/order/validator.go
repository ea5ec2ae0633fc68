package order

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vishal-ladwa-19/binance-trading-bot/internal/domain"
)

// RawOrder carries the untouched prompt strings collected by the CLI.
type RawOrder struct {
	Symbol    string
	Side      string
	Type      string
	Quantity  string
	Price     string
	StopPrice string
}

// Trading pairs are base+quote concatenations like "BTCUSDT". Uppercase
// alphanumeric only; 5 chars covers the shortest real pairs.
var symbolPattern = regexp.MustCompile(`^[A-Z0-9]{5,20}$`)

// Validate checks a raw order field by field and produces a well-formed
// OrderRequest. It is pure: no network, no I/O, no hidden state, so the
// same input always yields the same result. Every rejection is a
// ValidationError and happens before anything touches the gateway.
func Validate(raw RawOrder) (domain.OrderRequest, error) {
	var req domain.OrderRequest

	symbol := strings.TrimSpace(raw.Symbol)
	if symbol == "" {
		return req, domain.NewValidationError("symbol must not be empty")
	}
	if !symbolPattern.MatchString(symbol) {
		return req, domain.NewValidationError("invalid symbol %q: expected uppercase base+quote pair like BTCUSDT", symbol)
	}

	side := domain.Side(strings.TrimSpace(raw.Side))
	if !side.Valid() {
		return req, domain.NewValidationError("side must be BUY or SELL, got %q", raw.Side)
	}

	typ := domain.OrderType(strings.TrimSpace(raw.Type))
	if !typ.Valid() {
		return req, domain.NewValidationError("order type must be MARKET, LIMIT or STOP_LIMIT, got %q", raw.Type)
	}

	qty, err := parsePositive(raw.Quantity)
	if err != nil {
		return req, domain.NewValidationError("quantity %q: %v", raw.Quantity, err)
	}

	req = domain.OrderRequest{
		Symbol:   symbol,
		Side:     side,
		Type:     typ,
		Quantity: qty,
	}

	// Price fields are bound to the order type: required for priced types,
	// ignored for MARKET.
	if typ.RequiresPrice() {
		price, err := parsePositive(raw.Price)
		if err != nil {
			return domain.OrderRequest{}, domain.NewValidationError("price %q: %v", raw.Price, err)
		}
		req.Price = price
	}
	if typ.RequiresStopPrice() {
		stop, err := parsePositive(raw.StopPrice)
		if err != nil {
			return domain.OrderRequest{}, domain.NewValidationError("stop price %q: %v", raw.StopPrice, err)
		}
		req.StopPrice = stop
	}

	return req, nil
}

func parsePositive(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errNotNumeric
	}
	if !d.IsPositive() {
		return decimal.Zero, errNotPositive
	}
	return d, nil
}

var (
	errNotNumeric  = validationCause("not a valid decimal number")
	errNotPositive = validationCause("must be greater than zero")
)

type validationCause string

func (c validationCause) Error() string { return string(c) }
