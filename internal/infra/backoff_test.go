package infra

import (
	"testing"
	"time"
)

func TestBackoffDelay(t *testing.T) {
	b := DefaultBackoff

	tests := []struct {
		retryCount int
		want       time.Duration
	}{
		{-1, 1 * time.Second},
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{10, 60 * time.Second},  // capped
		{100, 60 * time.Second}, // still capped, no shift overflow
	}

	for _, tt := range tests {
		if got := b.Delay(tt.retryCount); got != tt.want {
			t.Errorf("Delay(%d) = %s, want %s", tt.retryCount, got, tt.want)
		}
	}
}

func TestBackoffCustomBase(t *testing.T) {
	b := Backoff{Base: 250 * time.Millisecond, Max: 2 * time.Second}

	if got := b.Delay(1); got != 500*time.Millisecond {
		t.Errorf("Delay(1) = %s, want 500ms", got)
	}
	if got := b.Delay(5); got != 2*time.Second {
		t.Errorf("Delay(5) = %s, want cap of 2s", got)
	}
}
