package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formlab/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore, *clock) {
	t.Helper()
	c := &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(c.Now))
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, store, c
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{"zero capacity", ratelimiter.Config{RefillRate: 1, RefillInterval: time.Second}},
		{"zero refill rate", ratelimiter.Config{Capacity: 1, RefillInterval: time.Second}},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), tt.cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}
}

func TestBucket_Allow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _, c := newBucket(t, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second})

	for i := range 3 {
		res, err := b.Allow(ctx, "visitor")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 2-i, res.Remaining)
		assert.Equal(t, 3, res.Limit)
	}

	res, err := b.Allow(ctx, "visitor")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, time.Second, res.RetryAfter(c.Now()))

	// Denied requests take nothing, so one refill is enough.
	c.Advance(time.Second)
	res, err = b.Allow(ctx, "visitor")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	other, err := b.Allow(ctx, "someone-else")
	require.NoError(t, err)
	assert.Equal(t, 2, other.Remaining)
}

func TestBucket_RefillIsCapped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _, c := newBucket(t, ratelimiter.Config{Capacity: 5, RefillRate: 2, RefillInterval: time.Second})

	_, err := b.AllowN(ctx, "k", 5)
	require.NoError(t, err)

	c.Advance(time.Hour)
	res, err := b.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Remaining)
}

func TestBucket_InvalidInput(t *testing.T) {
	t.Parallel()

	b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})

	_, err := b.AllowN(context.Background(), "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	_, err = b.Allow(context.Background(), "")
	assert.ErrorIs(t, err, ratelimiter.ErrEmptyKey)
}

func TestBucket_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, store, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})

	_, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	require.NoError(t, b.Reset(ctx, "k"))
	assert.Zero(t, store.Len())

	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
}

func TestMemoryStore_RemoveStale(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := &clock{now: time.Now()}
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithStaleAge(time.Minute),
		ratelimiter.WithClock(c.Now),
	)
	defer store.Close()
	cfg := ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}

	_, _, err := store.ConsumeTokens(ctx, "old", 1, cfg)
	require.NoError(t, err)
	c.Advance(2 * time.Minute)
	_, _, err = store.ConsumeTokens(ctx, "fresh", 1, cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, store.RemoveStale())
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 50, RefillRate: 1, RefillInterval: time.Hour})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := b.Allow(context.Background(), "shared")
			if err == nil && res.Allowed() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
