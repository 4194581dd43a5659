// Package async provides small generic helpers for running computations
// asynchronously and collecting their results.
//
// Async starts the supplied function in its own goroutine and returns a
// *Future. The caller can block with Await, select on Done, or poll with
// IsComplete. WaitAll waits for a batch of futures under a context.
//
// A Future is written once, by its goroutine, before the done channel closes;
// readers only touch the result after observing that close, so no locks are
// involved.
//
// # Usage
//
//	f := async.Async(ctx, email, func(ctx context.Context, e string) (bool, error) {
//	    return directory.Exists(ctx, e)
//	})
//
//	if f.IsComplete() {
//	    exists, err := f.Await()
//	    // ...
//	}
//
// Cancelling the context passed to Async is visible to the function; whether it
// stops early is up to the function.
package async
