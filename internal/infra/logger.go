package infra

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// NewLogger builds the process logger. The sink is normally an
// io.MultiWriter over stdout and the per-run log file, mirroring the dual
// console/file output the app has always had.
func NewLogger(cfg *Config, sink io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Logging.Level)}
	return slog.New(slog.NewTextHandler(sink, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OpenRunLog creates the append-only log file for this run inside dir.
// One file per run, timestamp-named.
func OpenRunLog(dir string) (*os.File, string, error) {
	name := fmt.Sprintf("trading_bot_%s.log", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open run log: %w", err)
	}
	return f, path, nil
}
