package ratelimit

import (
	"context"
	"time"

	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// MemoryLimiter applies per-key rate limits using an in-process store.
type MemoryLimiter struct {
	store limiter.Store
}

// NewMemoryLimiter returns a limiter backed by an in-memory store.
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{store: memory.NewStore()}
}

// Allow registers an event for the given key and reports whether it is
// within the limit. Zero or negative thresholds disable limiting.
func (l *MemoryLimiter) Allow(ctx context.Context, key string, window time.Duration, max int) (bool, int, time.Time, error) {
	if l == nil || l.store == nil || max <= 0 || window <= 0 {
		return true, max, time.Now().Add(window), nil
	}
	rate := limiter.Rate{Period: window, Limit: int64(max)}
	lctx, err := limiter.New(l.store, rate).Get(ctx, key)
	if err != nil {
		return false, 0, time.Now().Add(window), err
	}
	return !lctx.Reached, int(lctx.Remaining), time.Unix(lctx.Reset, 0), nil
}
