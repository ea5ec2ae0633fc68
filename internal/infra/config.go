package infra

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Trading modes. DEMO targets the Binance futures testnet; REAL targets
// mainnet and is gated behind an explicit environment latch at bootstrap.
const (
	ModeDemo = "DEMO"
	ModeReal = "REAL"
)

// Config holds the full application configuration. Sensitive values can be
// overridden through environment variables after loading.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Trading struct {
		Mode string `yaml:"mode"` // DEMO or REAL
	} `yaml:"trading"`

	API struct {
		Binance struct {
			RestURL        string `yaml:"rest_url"`
			WSURL          string `yaml:"ws_url"`
			TestnetRestURL string `yaml:"testnet_rest_url"`
			TestnetWSURL   string `yaml:"testnet_ws_url"`
			APIKey         string `yaml:"api_key"`
			SecretKey      string `yaml:"secret_key"`
			RecvWindowMs   int    `yaml:"recv_window_ms"`
		} `yaml:"binance"`
	} `yaml:"api"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the config file, applies environment
// overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration validity. Fail fast: a bad config should
// stop the run before any credential is used.
func (c *Config) Validate() error {
	mode := strings.ToUpper(c.Trading.Mode)
	if mode != ModeDemo && mode != ModeReal {
		return fmt.Errorf("trading mode must be DEMO or REAL, got %q", c.Trading.Mode)
	}

	for name, url := range map[string]string{
		"rest_url":         c.API.Binance.RestURL,
		"testnet_rest_url": c.API.Binance.TestnetRestURL,
	} {
		if !strings.HasPrefix(url, "https://") {
			return fmt.Errorf("invalid Binance %s: %q", name, url)
		}
	}
	for name, url := range map[string]string{
		"ws_url":         c.API.Binance.WSURL,
		"testnet_ws_url": c.API.Binance.TestnetWSURL,
	} {
		if !strings.HasPrefix(url, "wss://") {
			return fmt.Errorf("invalid Binance %s: %q", name, url)
		}
	}

	if c.API.Binance.RecvWindowMs <= 0 {
		return fmt.Errorf("recv_window_ms must be positive")
	}

	return nil
}

// IsTestnet reports whether the configured mode targets the testnet.
func (c *Config) IsTestnet() bool {
	return strings.ToUpper(c.Trading.Mode) != ModeReal
}

// RestBaseURL returns the REST endpoint for the configured mode.
func (c *Config) RestBaseURL() string {
	if c.IsTestnet() {
		return c.API.Binance.TestnetRestURL
	}
	return c.API.Binance.RestURL
}

// StreamBaseURL returns the WebSocket endpoint for the configured mode.
func (c *Config) StreamBaseURL() string {
	if c.IsTestnet() {
		return c.API.Binance.TestnetWSURL
	}
	return c.API.Binance.WSURL
}

// overrideWithEnv lets environment variables take precedence over file
// values for credentials. Secrets committed to a config file are worth a
// loud warning.
func overrideWithEnv(cfg *Config) {
	if cfg.API.Binance.SecretKey != "" {
		fmt.Println("⚠️  SECURITY WARNING: API secret found in config file.")
		fmt.Println("   Recommendation: use environment variables instead:")
		fmt.Println("   - BINANCE_API_KEY, BINANCE_API_SECRET")
	}

	if key := os.Getenv("BINANCE_API_KEY"); key != "" {
		cfg.API.Binance.APIKey = key
	}
	if secret := os.Getenv("BINANCE_API_SECRET"); secret != "" {
		cfg.API.Binance.SecretKey = secret
	}
}
