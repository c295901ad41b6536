package sixdegrees

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency runs every scan sequentially
const DefaultConcurrency = 1

func workerCount(concurrency, items int) int {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	if concurrency > items {
		concurrency = items
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return concurrency
}

// parallelFor calls the function returned by newWorker for every i in
// [0,n). Each goroutine calls newWorker once, so per-goroutine scratch
// state lives inside the returned closure. Items are striped across
// workers (worker w handles w, w+k, w+2k, ...) and callers store results
// by index, which keeps the output independent of scheduling.
func parallelFor(ctx context.Context, n, concurrency int, newWorker func() func(i int)) error {
	workers := workerCount(concurrency, n)
	if workers == 1 {
		fn := newWorker()
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w
		eg.Go(func() error {
			fn := newWorker()
			for i := start; i < n; i += workers {
				if err := egCtx.Err(); err != nil {
					return err
				}
				fn(i)
			}
			return nil
		})
	}
	return eg.Wait()
}
