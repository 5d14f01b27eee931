package infra

import (
	"log/slog"
	"sync"
	"time"
)

// BreakerState is the circuit breaker state.
type BreakerState int

const (
	BreakerClosed   BreakerState = iota // normal operation
	BreakerOpen                         // upstream considered down, reject calls
	BreakerHalfOpen                     // probing recovery
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Breaker isolates a flaky upstream: after failureThreshold consecutive
// failures it rejects calls for cooldown, then lets a single probe through.
// The proxy wraps its Kraken queries in one so a dead upstream short-circuits
// a whole refresh instead of timing out pair by pair. Thread-safe.
type Breaker struct {
	name             string
	failureThreshold int
	cooldown         time.Duration

	mu          sync.Mutex
	state       BreakerState
	failures    int
	lastFailure time.Time
}

// NewBreaker builds a Breaker. Threshold <= 0 defaults to 5 failures,
// cooldown <= 0 to 30 seconds.
func NewBreaker(name string, failureThreshold int, cooldown time.Duration) *Breaker {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	return &Breaker{
		name:             name,
		failureThreshold: failureThreshold,
		cooldown:         cooldown,
		state:            BreakerClosed,
	}
}

// Allow reports whether a call may proceed. In the open state a single probe
// is admitted once the cooldown has elapsed.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed, BreakerHalfOpen:
		return true
	case BreakerOpen:
		if time.Since(b.lastFailure) > b.cooldown {
			b.state = BreakerHalfOpen
			slog.Info("circuit breaker half-open", slog.String("name", b.name))
			return true
		}
		return false
	default:
		return false
	}
}

// RecordSuccess notes a successful call. One success closes a half-open
// breaker.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerHalfOpen {
		slog.Info("circuit breaker closed", slog.String("name", b.name))
	}
	b.state = BreakerClosed
	b.failures = 0
}

// RecordFailure notes a failed call, opening the breaker at the threshold or
// on a failed half-open probe.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailure = time.Now()

	switch b.state {
	case BreakerClosed:
		b.failures++
		if b.failures >= b.failureThreshold {
			b.state = BreakerOpen
			slog.Warn("circuit breaker open",
				slog.String("name", b.name),
				slog.Int("failures", b.failures))
		}
	case BreakerHalfOpen:
		b.state = BreakerOpen
		slog.Warn("circuit breaker reopened", slog.String("name", b.name))
	}
}

// State returns the current state for monitoring.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
