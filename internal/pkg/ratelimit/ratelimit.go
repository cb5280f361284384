package ratelimit

import (
	"context"
	"time"
)

// AttemptLimiter counts failed attempts per key with increment-and-expire
// semantics, used to throttle repeated login failures.
type AttemptLimiter interface {
	// Hit records one failed attempt and returns the running count within
	// the window.
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)

	// Count returns the current count without recording an attempt.
	Count(ctx context.Context, key string) (int64, error)

	// Reset clears the counter, called after a successful login.
	Reset(ctx context.Context, key string) error
}
