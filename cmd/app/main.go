package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vishal-ladwa-19/binance-trading-bot/internal/app"
	"github.com/vishal-ladwa-19/binance-trading-bot/internal/cli"
	"github.com/vishal-ladwa-19/binance-trading-bot/internal/order"
	"github.com/vishal-ladwa-19/binance-trading-bot/internal/report"
)

func main() {
	// 1. System bootstrapping: config, logging, credentials, gateway
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(); err != nil {
		slog.Error("❌ Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer bootstrap.Close()

	// 2. Graceful shutdown context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Connectivity + credential probe (fail fast before the menu)
	if err := bootstrap.ProbeConnection(ctx); err != nil {
		slog.Error("❌ Exchange unreachable", slog.Any("error", err))
		bootstrap.Close()
		os.Exit(1)
	}

	// 4. Order pipeline and interactive session
	reporter := report.NewReporter(os.Stdout, slog.Default())
	pipeline := order.NewPipeline(bootstrap.Gateway, reporter)
	menu := cli.NewMenu(bootstrap.Gateway, reporter, pipeline, bootstrap.Config.StreamBaseURL())

	menu.Run(ctx)

	slog.Info("👋 Session ended", slog.String("log", bootstrap.LogPath))
}
