package async

import (
	"context"
	"time"
)

// Future holds the result of a function running on another goroutine.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the function returns.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext is Await that gives up when ctx ends first.
// The function keeps running; only the wait is abandoned.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// Done is closed when the result is available.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the result is available without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn(ctx, param) on a new goroutine.
// A context that is already done resolves the future with ctx.Err()
// without calling fn.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// After runs fn once d has elapsed. If ctx ends during the wait, fn is not
// called and the future resolves with ctx.Err().
func After[U any](ctx context.Context, d time.Duration, fn func(context.Context) (U, error)) *Future[U] {
	return Async(ctx, d, func(ctx context.Context, d time.Duration) (U, error) {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			var zero U
			return zero, ctx.Err()
		case <-timer.C:
		}
		return fn(ctx)
	})
}
