package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formlab/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), 21, func(_ context.Context, n int) (int, error) {
		return n * 2, nil
	})
	v, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, f.IsComplete())

	boom := errors.New("boom")
	_, err = async.Async(context.Background(), "x", func(context.Context, string) (bool, error) {
		return false, boom
	}).Await()
	require.ErrorIs(t, err, boom)
}

func TestAsync_CanceledContextSkipsFunction(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	_, err := async.Async(ctx, 1, func(context.Context, int) (int, error) {
		called.Store(true)
		return 1, nil
	}).Await()
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called.Load())
}

func TestAfter(t *testing.T) {
	t.Parallel()

	start := time.Now()
	f := async.After(context.Background(), 30*time.Millisecond, func(context.Context) (string, error) {
		return "done", nil
	})
	assert.False(t, f.IsComplete())

	v, err := f.AwaitContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", v)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestAfter_CanceledDuringWait(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var called atomic.Bool
	f := async.After(ctx, time.Hour, func(context.Context) (int, error) {
		called.Store(true)
		return 0, nil
	})
	cancel()

	select {
	case <-f.Done():
	case <-time.After(time.Second):
		require.Fail(t, "future did not resolve")
	}
	_, err := f.Await()
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called.Load())
}

func TestAwaitContext_GivesUp(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)
	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.AwaitContext(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, f.IsComplete())
}
