// Package cli is the interactive shell around the order pipeline: a
// numbered menu with free-text prompts per field. Validation failures are
// recovered here by falling through to the next loop iteration.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/vishal-ladwa-19/binance-trading-bot/internal/domain"
	"github.com/vishal-ladwa-19/binance-trading-bot/internal/infra/binance"
	"github.com/vishal-ladwa-19/binance-trading-bot/internal/order"
	"github.com/vishal-ladwa-19/binance-trading-bot/internal/report"
)

// Menu drives the interactive session.
type Menu struct {
	in        *bufio.Reader
	pipeline  *order.Pipeline
	gateway   domain.Gateway
	reporter  *report.Reporter
	streamURL string

	symbols map[string]struct{} // lazy exchangeInfo cache
}

// NewMenu wires the interactive menu.
func NewMenu(gateway domain.Gateway, reporter *report.Reporter, pipeline *order.Pipeline, streamURL string) *Menu {
	return &Menu{
		in:        bufio.NewReader(os.Stdin),
		pipeline:  pipeline,
		gateway:   gateway,
		reporter:  reporter,
		streamURL: streamURL,
	}
}

// Run loops until the user exits or the context is canceled.
func (m *Menu) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Println()
		fmt.Println("Select an action:")
		fmt.Println("1. Market Order")
		fmt.Println("2. Limit Order")
		fmt.Println("3. Stop-Limit Order")
		fmt.Println("4. View Open Orders")
		fmt.Println("5. Cancel Order")
		fmt.Println("6. Check Balance")
		fmt.Println("7. Watch Mark Price")
		fmt.Println("8. Exit")

		switch m.prompt("\nEnter choice (1-8): ") {
		case "1":
			m.placeOrder(ctx, domain.OrderTypeMarket)
		case "2":
			m.placeOrder(ctx, domain.OrderTypeLimit)
		case "3":
			m.placeOrder(ctx, domain.OrderTypeStopLimit)
		case "4":
			m.viewOpenOrders(ctx)
		case "5":
			m.cancelOrder(ctx)
		case "6":
			m.checkBalance(ctx)
		case "7":
			m.watchMarkPrice(ctx)
		case "8", "q", "exit":
			fmt.Println("\nThank you for using the trading bot!")
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func (m *Menu) prompt(label string) string {
	fmt.Print(label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (m *Menu) placeOrder(ctx context.Context, typ domain.OrderType) {
	raw := order.RawOrder{Type: string(typ)}
	raw.Symbol = strings.ToUpper(m.prompt("Enter symbol (e.g. BTCUSDT): "))
	raw.Side = strings.ToUpper(m.prompt("Side (BUY/SELL): "))
	raw.Quantity = m.prompt("Enter quantity: ")
	if typ.RequiresStopPrice() {
		raw.StopPrice = m.prompt("Enter stop price: ")
	}
	if typ.RequiresPrice() {
		raw.Price = m.prompt("Enter limit price: ")
	}

	// Exchange-side existence check on top of the offline validation.
	// Fail-open: a missing listing only disables the check.
	if known := m.knownSymbols(ctx); known != nil && raw.Symbol != "" {
		if _, ok := known[raw.Symbol]; !ok {
			m.reporter.ReportError(domain.NewValidationError("symbol %s is not tradable on this venue", raw.Symbol))
			return
		}
	}

	m.pipeline.Execute(ctx, raw)
}

func (m *Menu) viewOpenOrders(ctx context.Context) {
	symbol := strings.ToUpper(m.prompt("Symbol filter (empty for all): "))

	orders, err := m.gateway.OpenOrders(ctx, symbol)
	if err != nil {
		m.reporter.ReportError(err)
		return
	}
	if len(orders) == 0 {
		fmt.Println("No open orders.")
		return
	}

	fmt.Printf("%-12s %-10s %-5s %-6s %-14s %-12s %s\n",
		"ORDER ID", "SYMBOL", "SIDE", "TYPE", "PRICE", "QTY", "STATUS")
	for _, o := range orders {
		fmt.Printf("%-12d %-10s %-5s %-6s %-14s %-12s %s\n",
			o.OrderID, o.Symbol, o.Side, o.Type, o.Price.String(), o.OrigQty.String(), o.Status)
	}
	slog.Info("retrieved open orders", slog.Int("count", len(orders)))
}

func (m *Menu) cancelOrder(ctx context.Context) {
	symbol := strings.ToUpper(m.prompt("Enter symbol: "))
	idText := m.prompt("Enter order id: ")

	orderID, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		m.reporter.ReportError(domain.NewValidationError("order id %q is not a number", idText))
		return
	}

	res, err := m.gateway.CancelOrder(ctx, symbol, orderID)
	if err != nil {
		m.reporter.ReportError(err)
		return
	}

	fmt.Printf("Order %d canceled (status: %s)\n", res.OrderID, res.Status)
	slog.Info("order canceled", slog.Int64("order_id", res.OrderID))
}

func (m *Menu) checkBalance(ctx context.Context) {
	balances, err := m.gateway.Balance(ctx)
	if err != nil {
		m.reporter.ReportError(err)
		return
	}

	printed := 0
	for _, b := range balances {
		if b.Balance.IsZero() && b.Available.IsZero() {
			continue
		}
		fmt.Printf("%-8s balance: %-18s available: %s\n",
			b.Asset, b.Balance.String(), b.Available.String())
		printed++
	}
	if printed == 0 {
		fmt.Println("All balances are zero.")
	}
}

func (m *Menu) watchMarkPrice(ctx context.Context) {
	symbol := strings.ToUpper(m.prompt("Enter symbol (e.g. BTCUSDT): "))
	if symbol == "" {
		fmt.Println("Symbol is required.")
		return
	}

	worker := binance.NewTickerWorker(m.streamURL, symbol, func(mp domain.MarkPrice) {
		fmt.Printf("\r%s mark price: %s   ", mp.Symbol, mp.Price.String())
	})
	if err := worker.Connect(ctx); err != nil {
		m.reporter.ReportError(err)
		return
	}

	fmt.Println("Streaming mark price. Press Enter to stop.")
	m.in.ReadString('\n')
	worker.Disconnect()
	fmt.Println()
}

// knownSymbols fetches and caches the tradable symbol set. Returns nil
// when the listing is unavailable; callers skip the check in that case.
func (m *Menu) knownSymbols(ctx context.Context) map[string]struct{} {
	if m.symbols != nil {
		return m.symbols
	}
	symbols, err := m.gateway.Symbols(ctx)
	if err != nil {
		slog.Warn("symbol listing unavailable, skipping exchange-side check", slog.Any("error", err))
		return nil
	}
	m.symbols = symbols
	return m.symbols
}
