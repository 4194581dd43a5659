package async

import "context"

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the computation finishes.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Async executes fn in its own goroutine and returns a Future for its result.
// A context that is already done completes the Future with ctx.Err() without
// calling fn.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		// result and err are published by close(f.done)
		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll waits until every future completes or ctx is done. Results of the
// individual futures are left to the caller; only ctx expiry is reported.
func WaitAll[U any](ctx context.Context, futures ...*Future[U]) error {
	for _, future := range futures {
		if future == nil {
			continue
		}
		select {
		case <-future.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
