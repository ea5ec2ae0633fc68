package order

import (
	"testing"

	"github.com/vishal-ladwa-19/binance-trading-bot/internal/domain"
)

func TestBuild_LimitRoundTrip(t *testing.T) {
	raw := RawOrder{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: "0.01", Price: "50000"}

	req, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	p := Build(req)

	if p.Symbol != "BTCUSDT" || p.Side != "BUY" || p.Type != "LIMIT" {
		t.Errorf("payload header = %s/%s/%s, want BTCUSDT/BUY/LIMIT", p.Symbol, p.Side, p.Type)
	}
	if p.Quantity.String() != "0.01" {
		t.Errorf("Quantity = %s, want 0.01", p.Quantity)
	}
	if p.Price.String() != "50000" {
		t.Errorf("Price = %s, want 50000", p.Price)
	}
	if p.TimeInForce != "GTC" {
		t.Errorf("TimeInForce = %q, want GTC", p.TimeInForce)
	}
	if !p.StopPrice.IsZero() {
		t.Errorf("StopPrice = %s, want unset", p.StopPrice)
	}
	if p.ClientOrderID == "" {
		t.Error("ClientOrderID should be generated")
	}
}

func TestBuild_MarketOmitsPriceFields(t *testing.T) {
	req, err := Validate(RawOrder{Symbol: "ETHUSDT", Side: "SELL", Type: "MARKET", Quantity: "0.5"})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	p := Build(req)

	if p.Type != "MARKET" {
		t.Errorf("Type = %q, want MARKET", p.Type)
	}
	if !p.Price.IsZero() || !p.StopPrice.IsZero() {
		t.Errorf("market payload carries price fields: price=%s stop=%s", p.Price, p.StopPrice)
	}
	if p.TimeInForce != "" {
		t.Errorf("TimeInForce = %q, want empty for MARKET", p.TimeInForce)
	}
}

func TestBuild_StopLimitUsesExchangeStopType(t *testing.T) {
	req, err := Validate(RawOrder{
		Symbol: "BTCUSDT", Side: "SELL", Type: "STOP_LIMIT",
		Quantity: "0.02", Price: "48000", StopPrice: "48500",
	})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	p := Build(req)

	// Binance futures calls the stop-limit type "STOP".
	if p.Type != "STOP" {
		t.Errorf("Type = %q, want STOP", p.Type)
	}
	if p.Price.String() != "48000" || p.StopPrice.String() != "48500" {
		t.Errorf("prices = %s/%s, want 48000/48500", p.Price, p.StopPrice)
	}
	if p.TimeInForce != "GTC" {
		t.Errorf("TimeInForce = %q, want GTC", p.TimeInForce)
	}
}

func TestBuild_ClientOrderIDsUnique(t *testing.T) {
	req := domain.OrderRequest{Symbol: "BTCUSDT", Side: domain.SideBuy, Type: domain.OrderTypeMarket}
	a := Build(req)
	b := Build(req)
	if a.ClientOrderID == b.ClientOrderID {
		t.Errorf("two builds produced the same client order id %q", a.ClientOrderID)
	}
}
