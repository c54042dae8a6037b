// Package batch validates many values in parallel over a fixed worker pool.
//
// The kernel is pure, so inputs are sharded across workers with no
// coordination beyond collecting results.
package batch

import (
	"context"
	"runtime"
	"sync"
)

// Result pairs an input's position with the value fn produced for it
type Result[O any] struct {
	Index int
	Value O
}

// Run calls fn for every item on at most workers goroutines and returns the
// outputs in input order. If workers is 0 or negative, GOMAXPROCS is used.
//
// Cancelling ctx stops dispatch: items not yet handed to a worker are skipped
// and Run returns ctx.Err() together with the outputs gathered so far. Skipped
// positions hold the zero value.
func Run[I, O any](ctx context.Context, items []I, workers int, fn func(context.Context, I) O) ([]O, error) {
	out := make([]O, len(items))
	if len(items) == 0 {
		return out, ctx.Err()
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(items))

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				// each index is written by exactly one worker
				out[i] = fn(ctx, items[i])
			}
		}()
	}

	err := dispatch(ctx, jobs, len(items))
	close(jobs)
	wg.Wait()
	return out, err
}

func dispatch(ctx context.Context, jobs chan<- int, n int) error {
	for i := range n {
		// checked first so a cancelled context never races a ready worker
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Stream is Run for callers that want results as they complete. Results
// arrive in completion order; the channel is closed once every dispatched item
// has been handled.
func Stream[I, O any](ctx context.Context, items []I, workers int, fn func(context.Context, I) O) <-chan Result[O] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make(chan Result[O], workers)
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results <- Result[O]{Index: i, Value: fn(ctx, items[i])}
			}
		}()
	}

	go func() {
		_ = dispatch(ctx, jobs, len(items))
		close(jobs)
		wg.Wait()
		close(results)
	}()
	return results
}
