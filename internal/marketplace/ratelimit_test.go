package marketplace

import (
	"context"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/maardu-realty/internal/metrics"
)

func TestRateLimiter_AllowsBurst(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 3)
	ctx := context.Background()

	start := time.Now()
	for range 3 {
		require.NoError(t, rl.Wait(ctx))
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestRateLimiter_Unlimited(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0, 0)
	ctx := context.Background()
	for range 100 {
		require.NoError(t, rl.Wait(ctx))
	}
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.001, 1)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	before := ptestutil.ToFloat64(metrics.MarketplaceRateLimitWaits)
	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.MarketplaceRateLimitWaits), before+1)
}

func TestRateLimiter_Tokens(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 2)
	assert.InDelta(t, 2.0, rl.Tokens(), 0.01)
	require.NoError(t, rl.Wait(context.Background()))
	assert.InDelta(t, 1.0, rl.Tokens(), 0.1)
}
