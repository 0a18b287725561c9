// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

// ErrNoItems is returned by First when there is nothing to process.
var ErrNoItems = errors.New("no items to process")

type outcome[R any] struct {
	value R
	err   error
}

// First runs process over items with up to workerCount concurrent workers and
// returns the first successful result. The context passed to process is
// cancelled as soon as a result is taken, workers still running are abandoned.
// When every item fails, the joined errors are returned. When ctx ends first,
// the errors collected so far are joined with ctx.Err().
// A non-positive workerCount runs every item concurrently.
func First[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) (R, error),
) (R, error) {
	var zero R
	if len(items) == 0 {
		return zero, ErrNoItems
	}
	if workerCount <= 0 || workerCount > len(items) {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T)
	// buffered so abandoned workers never block on send
	results := make(chan outcome[R], len(items))
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				value, err := process(ctx, item)
				results <- outcome[R]{value: value, err: err}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var errs []error
	for {
		select {
		case <-ctx.Done():
			// a result already delivered still wins over the cancellation
			for {
				select {
				case res, ok := <-results:
					if ok && res.err == nil {
						return res.value, nil
					}
					if ok {
						errs = append(errs, res.err)
						continue
					}
				default:
				}
				return zero, errors.Join(append(errs, ctx.Err())...)
			}
		case res, ok := <-results:
			if !ok {
				return zero, errors.Join(errs...)
			}
			if res.err == nil {
				return res.value, nil
			}
			errs = append(errs, res.err)
		}
	}
}
