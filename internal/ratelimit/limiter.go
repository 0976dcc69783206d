package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter is the pacing contract stages depend on. The pipeline visits
// one page at a time, so pacing is a fixed pause, not per-domain
// bookkeeping.
type Limiter interface {
	// Wait blocks until the next page visit may proceed. If the context
	// is cancelled before the pause elapses, an error is returned.
	Wait(ctx context.Context) error

	// Allow reports whether a visit could proceed right now without
	// blocking.
	Allow() bool
}

// Pacer spaces page visits a fixed interval apart using a token bucket
// with a burst of one. The first visit proceeds immediately; each
// subsequent visit waits out the remainder of the interval.
type Pacer struct {
	lim      *rate.Limiter
	interval time.Duration
}

// NewPacer creates a Pacer with the given politeness interval. A zero or
// negative interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{lim: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Pacer{
		lim:      rate.NewLimiter(rate.Every(interval), 1),
		interval: interval,
	}
}

// Wait blocks until the pause between visits has elapsed
func (p *Pacer) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return p.lim.Wait(ctx)
}

// Allow reports whether a visit can proceed immediately
func (p *Pacer) Allow() bool {
	return p.lim.Allow()
}

// Interval returns the configured pause between visits
func (p *Pacer) Interval() time.Duration {
	return p.interval
}
