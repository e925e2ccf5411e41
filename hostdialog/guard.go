package hostdialog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// GuardConfig tunes the protections a Guard applies around an adapter.
type GuardConfig struct {
	// DialogsPerMinute is the sustained dialog rate. Zero or negative
	// disables rate limiting.
	DialogsPerMinute int
	// Burst is the number of dialogs allowed back to back. Defaults to 1
	// when rate limiting is enabled.
	Burst int
	// BreakerFailures is the number of consecutive ShowWarning failures
	// before the circuit opens. Zero disables the breaker.
	BreakerFailures uint32
	// BreakerTimeout is how long the circuit stays open before a probe call
	// is allowed through. Defaults to one minute.
	BreakerTimeout time.Duration
}

// DefaultGuardConfig returns the guard settings used for automatically
// attached dialog handlers.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		DialogsPerMinute: 6,
		Burst:            2,
		BreakerFailures:  3,
		BreakerTimeout:   time.Minute,
	}
}

// Guard wraps an Adapter with a rate limiter and a circuit breaker. The
// limiter keeps a burst of critical logs from queueing a wall of modal
// dialogs; the breaker stops hammering a host whose UI has gone away.
// Safe for concurrent use.
type Guard struct {
	adapter Adapter
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewGuard wraps adapter with the given protections.
func NewGuard(adapter Adapter, cfg GuardConfig) *Guard {
	g := &Guard{adapter: adapter}

	if cfg.DialogsPerMinute > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(float64(cfg.DialogsPerMinute)/60.0), burst)
	}

	if cfg.BreakerFailures > 0 {
		timeout := cfg.BreakerTimeout
		if timeout <= 0 {
			timeout = time.Minute
		}
		g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    adapter.Name() + "-dialog",
			Timeout: timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.BreakerFailures
			},
		})
	}

	return g
}

// Name returns the wrapped adapter's name.
func (g *Guard) Name() string { return g.adapter.Name() }

// Available delegates to the wrapped adapter.
func (g *Guard) Available() bool { return g.adapter.Available() }

// ShowWarning applies the rate limiter and circuit breaker, then delegates.
func (g *Guard) ShowWarning(ctx context.Context, title, message string) error {
	if g.limiter != nil && !g.limiter.Allow() {
		return fmt.Errorf("%w: %s", ErrRateLimited, g.adapter.Name())
	}

	if g.breaker == nil {
		return g.adapter.ShowWarning(ctx, title, message)
	}

	_, err := g.breaker.Execute(func() (interface{}, error) {
		return nil, g.adapter.ShowWarning(ctx, title, message)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: circuit open for %s dialogs", ErrNotAvailable, g.adapter.Name())
		}
		return err
	}
	return nil
}
