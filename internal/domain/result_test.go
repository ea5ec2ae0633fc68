package domain

import "testing"

func TestOrderResult_IsOpen(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{"NEW", "NEW", true},
		{"PARTIALLY_FILLED", "PARTIALLY_FILLED", true},
		{"FILLED", "FILLED", false},
		{"CANCELED", "CANCELED", false},
		{"EXPIRED", "EXPIRED", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &OrderResult{Status: tt.status}
			if got := r.IsOpen(); got != tt.want {
				t.Errorf("OrderResult.IsOpen() = %v, want %v", got, tt.want)
			}
		})
	}
}
