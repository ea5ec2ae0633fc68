package report

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vishal-ladwa-19/binance-trading-bot/internal/domain"
)

func TestReporter_SuccessBlockAndLogLine(t *testing.T) {
	var console, logBuf bytes.Buffer
	r := NewReporter(&console, slog.New(slog.NewTextHandler(&logBuf, nil)))

	r.Report(&domain.OrderResult{
		OrderID: 123,
		Symbol:  "ETHUSDT",
		Side:    "SELL",
		Type:    "MARKET",
		Status:  "FILLED",
		OrigQty: decimal.RequireFromString("0.5"),
	})

	out := console.String()
	for _, want := range []string{"ORDER EXECUTED SUCCESSFULLY", "123", "ETHUSDT", "FILLED", "Price:     MARKET"} {
		if !strings.Contains(out, want) {
			t.Errorf("console block missing %q:\n%s", want, out)
		}
	}

	lines := strings.Count(strings.TrimSpace(logBuf.String()), "\n") + 1
	if lines != 1 {
		t.Errorf("log received %d lines, want exactly 1:\n%s", lines, logBuf.String())
	}
	if !strings.Contains(logBuf.String(), "order_id=123") {
		t.Errorf("log line missing order_id:\n%s", logBuf.String())
	}
}

func TestReporter_ErrorSummary(t *testing.T) {
	var console, logBuf bytes.Buffer
	r := NewReporter(&console, slog.New(slog.NewTextHandler(&logBuf, nil)))

	r.ReportError(domain.NewAPIError(-2019, "Margin is insufficient."))

	out := console.String()
	for _, want := range []string{"ORDER FAILED", "ApiError", "-2019", "Margin is insufficient."} {
		if !strings.Contains(out, want) {
			t.Errorf("failure summary missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(logBuf.String(), "kind=ApiError") {
		t.Errorf("log line missing kind:\n%s", logBuf.String())
	}
}

func TestReporter_UnknownErrorFoldsToNetwork(t *testing.T) {
	var console bytes.Buffer
	r := NewReporter(&console, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	r.ReportError(errors.New("unexpected EOF"))

	if !strings.Contains(console.String(), "NetworkError") {
		t.Errorf("unknown error not reported as NetworkError:\n%s", console.String())
	}
}
