package parsum

import (
	"context"
	"sync"

	"golang.org/x/exp/constraints"
)

// Summer sums many slices with one fixed [Pool] of workers, so repeated
// calls do not pay goroutine startup per batch. Each Sum call partitions
// its input with the pool's worker count, submits one task per non-empty
// partition, and joins them before folding the partials.
//
// A Summer is safe for concurrent use. Call [Summer.Close] when done.
type Summer[T constraints.Signed] struct {
	pool    *Pool
	workers int
}

// NewSummer creates a Summer backed by a pool of workers goroutines.
// Returns [ErrInvalidWorkers] if workers < 1.
func NewSummer[T constraints.Signed](ctx context.Context, workers int, opts ...PoolOption) (*Summer[T], error) {
	pool, err := NewPool(ctx, workers, opts...)
	if err != nil {
		return nil, err
	}
	return &Summer[T]{pool: pool, workers: workers}, nil
}

// Sum computes the sum of xs on the pool, equal to sequential summation.
// An empty slice sums to zero. Returns [ErrPoolClosed] after [Summer.Close],
// or the pool context's error if it was cancelled.
func (s *Summer[T]) Sum(xs []T) (T, error) {
	parts, err := Plan(len(xs), s.workers)
	if err != nil {
		return 0, err
	}

	partials := make([]T, len(parts))

	var wg sync.WaitGroup
	for i, p := range parts {
		wg.Add(1)
		submitErr := s.pool.Submit(func() error {
			defer wg.Done()
			var local T
			for _, v := range xs[p.Lo:p.Hi] {
				local += v
			}
			partials[i] = local // unique index per task
			return nil
		})
		if submitErr != nil {
			wg.Done() // the rejected task never runs
			wg.Wait() // join whatever was already submitted
			return 0, submitErr
		}
	}
	wg.Wait()

	var total T
	for _, partial := range partials {
		total += partial
	}
	return total, nil
}

// Stats returns a snapshot of the underlying pool's counters.
func (s *Summer[T]) Stats() PoolStats {
	return s.pool.Stats()
}

// Close shuts down the pool, waiting for in-flight tasks to finish.
// Subsequent Sum calls return [ErrPoolClosed].
func (s *Summer[T]) Close() error {
	return s.pool.Close()
}
