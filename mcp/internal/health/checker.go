package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Pinger probes a dependency; nil means healthy.
type Pinger func(ctx context.Context) error

// BackendChecker caches the health of the customer-service backend so the
// health endpoint never waits on it.
type BackendChecker struct {
	healthy atomic.Int32
	lastErr atomic.Value // string
	ping    Pinger
	timeout time.Duration
	log     zerolog.Logger
}

func NewBackendChecker(log zerolog.Logger, ping Pinger, timeout time.Duration) *BackendChecker {
	c := &BackendChecker{ping: ping, timeout: timeout, log: log}
	c.lastErr.Store("")
	return c
}

// IsHealthy returns the result of the latest probe. It is false until the
// first probe succeeds.
func (c *BackendChecker) IsHealthy() bool { return c.healthy.Load() == 1 }

// LastError is the latest probe failure, or "" while healthy.
func (c *BackendChecker) LastError() string { return c.lastErr.Load().(string) }

// Check runs one probe and updates the cached state.
func (c *BackendChecker) Check(ctx context.Context) bool {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	prev := c.healthy.Load()
	if err := c.ping(ctx); err != nil {
		c.healthy.Store(0)
		c.lastErr.Store(err.Error())
		if prev == 1 {
			c.log.Error().Err(err).Msg("backend health: DOWN")
		}
		return false
	}

	c.healthy.Store(1)
	c.lastErr.Store("")
	if prev == 0 {
		c.log.Info().Msg("backend health: UP")
	}
	return true
}

// Start probes immediately and then every interval until ctx is done. A
// non-positive interval probes once and returns.
func (c *BackendChecker) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		c.Check(ctx)
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}
