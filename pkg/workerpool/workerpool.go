// Package workerpool runs bounded fan-out over a slice of work items.
package workerpool

import (
	"context"
	"sync"
)

type task[T any] struct {
	index int
	item  T
}

// Process runs fn for every item on at most workerCount goroutines. The first
// error cancels the remaining work, triggers onCancel and is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) error,
	onCancel func(),
) error {
	return run(ctx, workerCount, items, func(ctx context.Context, _ int, item T) error {
		return fn(ctx, item)
	}, onCancel)
}

// Map applies fn to every item concurrently and returns the results in input
// order, so callers get deterministic output regardless of scheduling.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, int, T) (R, error),
) ([]R, error) {
	results := make([]R, len(items))
	err := run(ctx, workerCount, items, func(ctx context.Context, i int, item T) error {
		r, err := fn(ctx, i, item)
		if err != nil {
			return err
		}
		results[i] = r
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func run[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, int, T) error,
	onCancel func(),
) error {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(items) && len(items) > 0 {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			if onCancel != nil {
				onCancel()
			}
			cancel()
		})
	}

	tasks := make(chan task[T])
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				if ctx.Err() != nil {
					continue
				}
				if err := fn(ctx, t.index, t.item); err != nil {
					fail(err)
				}
			}
		}()
	}

feed:
	for i, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- task[T]{index: i, item: item}:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
