// Package report formats pipeline outcomes for the console and the run log.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/vishal-ladwa-19/binance-trading-bot/internal/domain"
)

const rule = "=================================================="

// Reporter writes a human-readable summary to the console and one
// structured entry to the run log per outcome. It never fails: console
// write errors are discarded and slog has no error path, so reporting can
// never block or break the pipeline.
type Reporter struct {
	console io.Writer
	logger  *slog.Logger
}

// NewReporter builds a reporter targeting the given console writer. A nil
// logger means the process-default slog logger.
func NewReporter(console io.Writer, logger *slog.Logger) *Reporter {
	if console == nil {
		console = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{console: console, logger: logger}
}

// Report prints the success block and appends one structured log entry.
func (r *Reporter) Report(res *domain.OrderResult) {
	price := res.Price.String()
	if res.Type == "MARKET" || res.Price.IsZero() {
		price = "MARKET"
	}

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "ORDER EXECUTED SUCCESSFULLY")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Order ID:  %d\n", res.OrderID)
	fmt.Fprintf(&b, "Symbol:    %s\n", res.Symbol)
	fmt.Fprintf(&b, "Side:      %s\n", res.Side)
	fmt.Fprintf(&b, "Type:      %s\n", res.Type)
	fmt.Fprintf(&b, "Quantity:  %s\n", res.OrigQty.String())
	fmt.Fprintf(&b, "Price:     %s\n", price)
	fmt.Fprintf(&b, "Status:    %s\n", res.Status)
	if res.UpdateTimeMs > 0 {
		fmt.Fprintf(&b, "Time:      %s\n", time.UnixMilli(res.UpdateTimeMs).Format(time.DateTime))
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprint(r.console, b.String())

	r.logger.Info("order executed",
		slog.Int64("order_id", res.OrderID),
		slog.String("symbol", res.Symbol),
		slog.String("side", res.Side),
		slog.String("type", res.Type),
		slog.String("qty", res.OrigQty.String()),
		slog.String("status", res.Status),
	)
}

// ReportError prints the failure summary and appends one structured log
// entry. Any error is accepted; unknown ones surface as NetworkError.
func (r *Reporter) ReportError(err error) {
	oe := domain.AsOrderError(err)

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "ORDER FAILED")
	fmt.Fprintf(&b, "Kind:      %s\n", oe.Kind)
	if oe.Code != 0 {
		fmt.Fprintf(&b, "Code:      %d\n", oe.Code)
	}
	fmt.Fprintf(&b, "Message:   %s\n", oe.Message)
	fmt.Fprintln(&b, rule)
	fmt.Fprint(r.console, b.String())

	r.logger.Error("order failed",
		slog.String("kind", string(oe.Kind)),
		slog.Int64("code", oe.Code),
		slog.String("message", oe.Message),
	)
}
