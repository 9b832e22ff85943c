// Package fanout runs a function across a slice of items with bounded
// concurrency and an optional per-item deadline, preserving input order in
// the results. The health registry uses it to probe every checker at once.
package fanout

import (
	"context"
	"sync"
	"time"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Options bounds a Run. Workers below 1 means one goroutine per item.
// A zero Timeout leaves each call bounded only by the parent context.
type Options struct {
	Workers int
	Timeout time.Duration
}

// Run executes fn for each item using at most opts.Workers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// If ctx is canceled while a goroutine is waiting for a worker slot, that
// item records ctx.Err() and fn is not called. With a non-zero Timeout each
// call receives a context that expires after Timeout; fn is responsible for
// honoring it.
//
// Run blocks until all goroutines complete. If items is empty, it returns
// an empty non-nil slice immediately.
func Run[T, R any](ctx context.Context, opts Options, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	workers := opts.Workers
	if workers < 1 || workers > len(items) {
		workers = len(items)
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			callCtx := ctx
			if opts.Timeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
				defer cancel()
			}

			val, err := fn(callCtx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}
	wg.Wait()

	return results
}
