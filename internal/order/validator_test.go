package order

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vishal-ladwa-19/binance-trading-bot/internal/domain"
)

func TestValidate_Accepts(t *testing.T) {
	tests := []struct {
		name string
		raw  RawOrder
	}{
		{"market", RawOrder{Symbol: "ETHUSDT", Side: "SELL", Type: "MARKET", Quantity: "0.5"}},
		{"limit", RawOrder{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: "0.01", Price: "50000"}},
		{"stop_limit", RawOrder{Symbol: "BTCUSDT", Side: "SELL", Type: "STOP_LIMIT", Quantity: "0.02", Price: "48000", StopPrice: "48500"}},
		{"market_ignores_price_text", RawOrder{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "1", Price: "not-a-number"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Validate(tt.raw)
			if err != nil {
				t.Fatalf("Validate(%+v) failed: %v", tt.raw, err)
			}
			if req.Symbol != tt.raw.Symbol {
				t.Errorf("Symbol = %q, want %q", req.Symbol, tt.raw.Symbol)
			}
			if !req.Quantity.IsPositive() {
				t.Errorf("Quantity = %s, want positive", req.Quantity)
			}
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  RawOrder
	}{
		{"empty_symbol", RawOrder{Symbol: "", Side: "BUY", Type: "MARKET", Quantity: "1"}},
		{"lowercase_hyphen_symbol", RawOrder{Symbol: "btc-usdt", Side: "BUY", Type: "MARKET", Quantity: "1"}},
		{"short_symbol", RawOrder{Symbol: "BTC", Side: "BUY", Type: "MARKET", Quantity: "1"}},
		{"bad_side", RawOrder{Symbol: "BTCUSDT", Side: "HOLD", Type: "MARKET", Quantity: "1"}},
		{"lowercase_side", RawOrder{Symbol: "BTCUSDT", Side: "buy", Type: "MARKET", Quantity: "1"}},
		{"bad_type", RawOrder{Symbol: "BTCUSDT", Side: "BUY", Type: "ICEBERG", Quantity: "1"}},
		{"zero_qty", RawOrder{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "0"}},
		{"negative_qty", RawOrder{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "-0.5"}},
		{"non_numeric_qty", RawOrder{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "lots"}},
		{"limit_missing_price", RawOrder{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: "1"}},
		{"limit_zero_price", RawOrder{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: "1", Price: "0"}},
		{"stop_limit_missing_stop", RawOrder{Symbol: "BTCUSDT", Side: "BUY", Type: "STOP_LIMIT", Quantity: "1", Price: "50000"}},
		{"stop_limit_negative_stop", RawOrder{Symbol: "BTCUSDT", Side: "BUY", Type: "STOP_LIMIT", Quantity: "1", Price: "50000", StopPrice: "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.raw)
			if err == nil {
				t.Fatalf("Validate(%+v) succeeded, want rejection", tt.raw)
			}
			var oe *domain.OrderError
			if !errors.As(err, &oe) || oe.Kind != domain.KindValidation {
				t.Errorf("error = %v, want kind %s", err, domain.KindValidation)
			}
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	raw := RawOrder{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: "0.01", Price: "50000"}

	first, err1 := Validate(raw)
	second, err2 := Validate(raw)
	if err1 != nil || err2 != nil {
		t.Fatalf("Validate failed: %v / %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated validation diverged: %+v vs %+v", first, second)
	}
}
