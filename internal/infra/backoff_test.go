package infra

import (
	"testing"
	"time"
)

func TestReconnectBackoff(t *testing.T) {
	tests := []struct {
		failures int
		want     time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{10, 60 * time.Second},  // capped
		{100, 60 * time.Second}, // shift guard
		{-1, 1 * time.Second},
	}

	for _, tt := range tests {
		if got := ReconnectBackoff(tt.failures); got != tt.want {
			t.Errorf("ReconnectBackoff(%d) = %s, want %s", tt.failures, got, tt.want)
		}
	}
}
