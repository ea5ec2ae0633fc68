package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vishal-ladwa-19/binance-trading-bot/internal/domain"
	"github.com/vishal-ladwa-19/binance-trading-bot/internal/infra"
)

const (
	handshakeTimeout = 10 * time.Second
	// The markPrice@1s stream pushes every second, so a stalled read means
	// a dead connection long before this deadline.
	readTimeout = 60 * time.Second
)

// TickerWorker streams mark-price updates for one symbol. It runs a single
// goroutine that reconnects with capped exponential backoff and shares no
// state with the order pipeline.
type TickerWorker struct {
	streamURL string // e.g. wss://stream.binancefuture.com
	symbol    string
	onUpdate  func(domain.MarkPrice)

	conn      *websocket.Conn
	mu        sync.RWMutex
	connected bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewTickerWorker creates a watcher for the given symbol. onUpdate is
// invoked from the worker goroutine for every update.
func NewTickerWorker(streamURL, symbol string, onUpdate func(domain.MarkPrice)) *TickerWorker {
	return &TickerWorker{
		streamURL: streamURL,
		symbol:    symbol,
		onUpdate:  onUpdate,
	}
}

// Connect starts the stream with automatic reconnection.
func (w *TickerWorker) Connect(ctx context.Context) error {
	ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go w.connectionLoop(ctx)

	return nil
}

func (w *TickerWorker) connectionLoop(ctx context.Context) {
	defer w.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("mark price worker panic recovered", slog.Any("panic", r))
		}
	}()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			slog.Info("mark price stream stopped", slog.String("symbol", w.symbol))
			return
		default:
		}

		if err := w.connect(ctx); err != nil {
			slog.Warn("mark price stream connect failed",
				slog.Any("error", err),
				slog.Int("failures", failures),
			)

			delay := infra.ReconnectBackoff(failures)
			failures++

			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
				continue
			}
		}

		failures = 0
		w.readLoop(ctx)
	}
}

func (w *TickerWorker) connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}

	streamName := strings.ToLower(w.symbol) + "@markPrice@1s"
	conn, _, err := dialer.DialContext(ctx, w.streamURL+"/ws/"+streamName, nil)
	if err != nil {
		return fmt.Errorf("dial failed: %w", err)
	}

	w.mu.Lock()
	w.conn = conn
	w.connected = true
	w.mu.Unlock()

	slog.Info("mark price stream connected", slog.String("stream", streamName))
	return nil
}

func (w *TickerWorker) readLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.closeConnection()
			return
		default:
		}

		w.mu.RLock()
		conn := w.conn
		w.mu.RUnlock()

		if conn == nil {
			return
		}

		conn.SetReadDeadline(time.Now().Add(readTimeout))
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("mark price stream read error", slog.Any("error", err))
			}
			w.closeConnection()
			return
		}

		w.handleMessage(message)
	}
}

func (w *TickerWorker) handleMessage(message []byte) {
	var ev markPriceEvent
	if err := json.Unmarshal(message, &ev); err != nil {
		return
	}
	if ev.Event != "markPriceUpdate" {
		return
	}

	if w.onUpdate != nil {
		w.onUpdate(domain.MarkPrice{
			Symbol:      ev.Symbol,
			Price:       parseDecimal(ev.MarkPrice),
			EventTimeMs: ev.EventTime,
		})
	}
}

func (w *TickerWorker) closeConnection() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn != nil {
		w.conn.Close()
		w.conn = nil
	}
	w.connected = false
}

// Disconnect closes the stream and waits for the worker to exit.
func (w *TickerWorker) Disconnect() {
	if w.cancel != nil {
		w.cancel()
	}
	w.closeConnection()
	w.wg.Wait()
}

// IsConnected returns the connection status.
func (w *TickerWorker) IsConnected() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.connected
}
