// Package async runs functions on separate goroutines and hands back a
// typed Future for the result.
//
//	f := async.After(ctx, time.Second, func(ctx context.Context) (Result, error) {
//	    return finish(ctx)
//	})
//	res, err := f.AwaitContext(ctx)
//
// Futures are single-assignment: the result and error are written once by
// the worker goroutine before Done is closed.
package async
