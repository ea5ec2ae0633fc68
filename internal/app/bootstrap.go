package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vishal-ladwa-19/binance-trading-bot/internal/infra"
	"github.com/vishal-ladwa-19/binance-trading-bot/internal/infra/binance"
)

// Bootstrap orchestrates the application startup sequence.
type Bootstrap struct {
	Config  *infra.Config
	Gateway *binance.Client
	LogPath string

	logFile *os.File
}

// NewBootstrap creates a new Bootstrap instance.
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads configuration, sets up the per-run log, collects
// credentials and constructs the gateway for the configured mode.
func (b *Bootstrap) Initialize() error {
	// 1. Load Config (dynamic path resolution)
	cfg, err := infra.LoadConfig(infra.ResolveConfigPath())
	if err != nil {
		return err
	}
	b.Config = cfg

	// 2. Per-run append-only log file, logger to stdout + file
	logDir := filepath.Join(infra.GetWorkspaceDir(), "logs", strings.ToLower(cfg.Trading.Mode))
	if err := infra.EnsureDir(logDir); err != nil {
		return fmt.Errorf("failed to create log dir: %w", err)
	}
	logFile, logPath, err := infra.OpenRunLog(logDir)
	if err != nil {
		return err
	}
	b.logFile = logFile
	b.LogPath = logPath
	slog.SetDefault(infra.NewLogger(cfg, io.MultiWriter(os.Stdout, logFile)))

	infra.PrintBanner(cfg)

	// 3. Credentials: config file < environment < interactive prompt.
	// Never persisted.
	if cfg.API.Binance.APIKey == "" || cfg.API.Binance.SecretKey == "" {
		if err := promptCredentials(cfg); err != nil {
			return err
		}
	}

	// 4. Mode selection with safety latch for real money
	if cfg.IsTestnet() {
		slog.Info("🔒 Connecting to Binance Futures TESTNET")
	} else {
		if os.Getenv("CONFIRM_REAL_MONEY") != "true" {
			return fmt.Errorf("SAFETY_GUARD: real trading requires 'CONFIRM_REAL_MONEY=true' environment variable")
		}
		slog.Warn("🚨🚨🚨 Connecting to Binance Futures MAINNET (REAL MONEY) 🚨🚨🚨")
	}

	signer := binance.NewSigner(cfg.API.Binance.APIKey, cfg.API.Binance.SecretKey)
	b.Gateway = binance.NewClient(cfg.RestBaseURL(), signer, cfg.API.Binance.RecvWindowMs)

	slog.Info("Bot initialized successfully",
		slog.String("mode", strings.ToUpper(cfg.Trading.Mode)),
		slog.String("log", logPath),
	)
	return nil
}

// ProbeConnection verifies the exchange is reachable and the credentials
// work, and logs the USDT wallet balance. Fail fast on a broken setup.
func (b *Bootstrap) ProbeConnection(ctx context.Context) error {
	if _, err := b.Gateway.ServerTime(ctx); err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}

	balances, err := b.Gateway.Balance(ctx)
	if err != nil {
		return fmt.Errorf("account check failed: %w", err)
	}

	wallet := "N/A"
	for _, bal := range balances {
		if bal.Asset == "USDT" {
			wallet = bal.Balance.String()
			break
		}
	}
	slog.Info("Connection successful", slog.String("wallet_balance_usdt", wallet))
	return nil
}

// Close wipes credentials and releases the log file.
func (b *Bootstrap) Close() {
	if b.Gateway != nil {
		b.Gateway.Close()
	}
	if b.logFile != nil {
		b.logFile.Close()
	}
}

func promptCredentials(cfg *infra.Config) error {
	in := bufio.NewReader(os.Stdin)

	fmt.Print("Enter API key: ")
	key, err := in.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}

	fmt.Print("Enter API secret: ")
	secret, err := in.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read API secret: %w", err)
	}

	cfg.API.Binance.APIKey = strings.TrimSpace(key)
	cfg.API.Binance.SecretKey = strings.TrimSpace(secret)

	if cfg.API.Binance.APIKey == "" || cfg.API.Binance.SecretKey == "" {
		return fmt.Errorf("API key and secret are required")
	}
	return nil
}
