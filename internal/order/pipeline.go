package order

import (
	"context"
	"log/slog"

	"github.com/vishal-ladwa-19/binance-trading-bot/internal/domain"
	"github.com/vishal-ladwa-19/binance-trading-bot/internal/report"
)

// Pipeline runs one order through validate → build → submit → report.
// Strictly linear and synchronous: one outbound call per Execute, no
// retries, and every failure path ends at the reporter.
type Pipeline struct {
	gateway  domain.Gateway
	reporter *report.Reporter
}

// NewPipeline wires the gateway and reporter into a pipeline.
func NewPipeline(gateway domain.Gateway, reporter *report.Reporter) *Pipeline {
	return &Pipeline{gateway: gateway, reporter: reporter}
}

// Execute processes a single raw order. A validation failure rejects the
// request before the gateway is ever touched; the caller may re-prompt.
func (p *Pipeline) Execute(ctx context.Context, raw RawOrder) {
	req, err := Validate(raw)
	if err != nil {
		p.reporter.ReportError(err)
		return
	}

	payload := Build(req)

	slog.Info("submitting order",
		slog.String("symbol", payload.Symbol),
		slog.String("side", payload.Side),
		slog.String("type", payload.Type),
		slog.String("qty", payload.Quantity.String()),
		slog.String("client_order_id", payload.ClientOrderID),
	)

	result, err := p.gateway.SubmitOrder(ctx, payload)
	if err != nil {
		p.reporter.ReportError(err)
		return
	}

	p.reporter.Report(result)
}
