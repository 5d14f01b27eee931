package infra

import (
	"time"
)

// Backoff computes exponential retry delays: Base * 2^retry, capped at Max.
type Backoff struct {
	Base time.Duration
	Max  time.Duration
}

// DefaultBackoff suits polite retries against public APIs.
var DefaultBackoff = Backoff{Base: 1 * time.Second, Max: 60 * time.Second}

// Delay returns the delay for the given retry count. Negative counts return
// Base; large counts are capped early to avoid shift overflow.
func (b Backoff) Delay(retryCount int) time.Duration {
	if retryCount < 0 {
		return b.Base
	}
	// 2^30 seconds already dwarfs any sensible Max.
	if retryCount > 30 {
		return b.Max
	}

	delay := b.Base * time.Duration(1<<retryCount)
	if delay > b.Max {
		return b.Max
	}
	return delay
}
