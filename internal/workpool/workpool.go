// Package workpool runs independent per-item work on a bounded number of
// goroutines and collects the results in input order.
package workpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Limit returns the number of workers to use for a requested count.
// Zero or negative means one worker per available CPU.
func Limit(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}

// Map calls fn for every item with at most Limit(workers) calls in flight.
// out[i] is the result for items[i]. Each call writes only its own slot, so no
// locking is needed. The first error cancels the context passed to the
// remaining calls and is returned.
func Map[T, R any](ctx context.Context, items []T, workers int, fn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Limit(workers))

	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		i, item := i, item
		g.Go(func() error {
			r, err := fn(gctx, item)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
