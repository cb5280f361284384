package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_HitIncrements(t *testing.T) {
	ctx := context.Background()
	limiter := NewMemoryLimiter()

	for i := int64(1); i <= 3; i++ {
		count, err := limiter.Hit(ctx, "client-1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	count, err := limiter.Count(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// Separate keys do not share counters.
	count, err = limiter.Count(ctx, "client-2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMemoryLimiter_WindowExpires(t *testing.T) {
	ctx := context.Background()
	limiter := NewMemoryLimiter()

	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	_, err := limiter.Hit(ctx, "client-1", time.Minute)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)

	count, err := limiter.Count(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// A hit after expiry starts a fresh window.
	count, err = limiter.Hit(ctx, "client-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	limiter := NewMemoryLimiter()

	_, err := limiter.Hit(ctx, "client-1", time.Minute)
	require.NoError(t, err)

	require.NoError(t, limiter.Reset(ctx, "client-1"))

	count, err := limiter.Count(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
