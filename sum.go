package parsum

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/okunev/parsum/chans"
)

// Sum computes the sum of xs using up to workers concurrent workers and
// returns the same value as sequential summation. Each worker folds one
// contiguous partition locally, then publishes its partial over a channel;
// the final fold runs single-threaded in the caller after every worker has
// joined, so workers never contend on a lock.
//
// An empty slice sums to zero. A worker count below one returns
// [ErrInvalidWorkers]. Overflow is not checked; the result is exact within
// the representable range of T.
func Sum[T constraints.Signed](ctx context.Context, xs []T, workers int) (T, error) {
	parts, err := Plan(len(xs), workers)
	if err != nil {
		return 0, err
	}
	if len(parts) == 0 {
		return 0, nil
	}

	// One slot per partition: a worker's single send can never block, and
	// chans.Send still unblocks it should the group be cancelled first.
	partials := make(chan T, len(parts))

	err = Run(ctx, func(g *Group) {
		for i, p := range parts {
			g.Go(fmt.Sprintf("sum[%d]", i), func(ctx context.Context) error {
				var local T
				for _, v := range xs[p.Lo:p.Hi] {
					local += v
				}
				return chans.Send(ctx, partials, local)
			})
		}
	})
	if err != nil {
		return 0, err
	}

	close(partials)
	var total T
	for _, partial := range chans.Collect(partials) {
		total += partial
	}
	return total, nil
}

// SumShared computes the same result as [Sum] using the shared-accumulator
// strategy: each worker merges its local partial into a single mutex-guarded
// [Accumulator] in one short critical section. The accumulator is created at
// call start and read only after all workers have joined; it does not
// outlive the call.
func SumShared[T constraints.Signed](ctx context.Context, xs []T, workers int) (T, error) {
	parts, err := Plan(len(xs), workers)
	if err != nil {
		return 0, err
	}

	var acc Accumulator[T]
	err = Run(ctx, func(g *Group) {
		for i, p := range parts {
			g.Go(fmt.Sprintf("sum[%d]", i), func(ctx context.Context) error {
				var local T
				for _, v := range xs[p.Lo:p.Hi] {
					local += v
				}
				acc.Add(local)
				return nil
			})
		}
	})
	if err != nil {
		return 0, err
	}
	return acc.Total(), nil
}

// SumWithin races [Sum] against a deadline. If the summation does not
// complete within d, SumWithin returns [context.DeadlineExceeded] and all
// workers are cancelled and joined before it returns.
func SumWithin[T constraints.Signed](ctx context.Context, xs []T, workers int, d time.Duration) (T, error) {
	return WithinTimeout(ctx, d, func(ctx context.Context) (T, error) {
		return Sum(ctx, xs, workers)
	})
}
