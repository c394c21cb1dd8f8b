package marketplace

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/donaldgifford/maardu-realty/internal/metrics"
)

// RateLimiter is a token bucket guarding outbound marketplace calls so that
// bursts (an expiration sweep over many listings, a backlog of resumed
// pipeline runs) do not overwhelm the remote service.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter allowing perSecond calls with the
// given burst. A non-positive rate disables limiting.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{limiter: rate.NewLimiter(limit, burst)}
}

// Wait blocks until a call is allowed or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	res := r.limiter.Reserve()
	if !res.OK() {
		return fmt.Errorf("rate limiter: burst %d cannot admit a call", r.limiter.Burst())
	}

	delay := res.Delay()
	if delay == 0 {
		return nil
	}

	metrics.MarketplaceRateLimitWaits.Inc()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		res.Cancel()
		return fmt.Errorf("rate limiter wait: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

// Tokens returns the number of calls that could be made immediately.
func (r *RateLimiter) Tokens() float64 {
	return r.limiter.Tokens()
}
