package infra

import (
	"time"
)

const (
	reconnectBaseDelay = 1 * time.Second
	reconnectMaxDelay  = 60 * time.Second
)

// ReconnectBackoff returns the exponential backoff delay for the given
// consecutive failure count: base * 2^failures, capped at the max.
// Used only by the stream watcher's reconnect loop; order submissions are
// never retried.
func ReconnectBackoff(failures int) time.Duration {
	if failures <= 0 {
		return reconnectBaseDelay
	}
	// 2^30s already exceeds any sane cap; guard the shift.
	if failures > 30 {
		return reconnectMaxDelay
	}

	delay := reconnectBaseDelay * time.Duration(1<<failures)
	if delay > reconnectMaxDelay {
		return reconnectMaxDelay
	}
	return delay
}
