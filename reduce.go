package parsum

import (
	"context"
	"fmt"
)

// Reduce folds xs in parallel: each of up to workers partitions is folded
// locally from identity via fold, then the per-partition results are merged
// single-threaded, in partition order, after every worker has joined.
//
// The result equals a sequential fold whenever merge is associative and
// commutative over fold outputs and identity is a true identity for merge.
// [Sum] is the integer-addition instance of this contract.
//
//	sum, err := parsum.Reduce(ctx, nums, 4,
//	    0,
//	    func(acc, v int) int { return acc + v },
//	    func(a, b int) int { return a + b },
//	)
func Reduce[T, R any](
	ctx context.Context,
	xs []T,
	workers int,
	identity R,
	fold func(acc R, v T) R,
	merge func(a, b R) R,
	opts ...Option,
) (R, error) {
	var zero R

	parts, err := Plan(len(xs), workers)
	if err != nil {
		return zero, err
	}

	partials := make([]R, len(parts))
	err = Run(ctx, func(g *Group) {
		for i, p := range parts {
			g.Go(fmt.Sprintf("reduce[%d]", i), func(ctx context.Context) error {
				local := identity
				for _, v := range xs[p.Lo:p.Hi] {
					local = fold(local, v)
				}
				partials[i] = local // safe: each worker writes a unique index
				return nil
			})
		}
	}, opts...)
	if err != nil {
		return zero, err
	}

	out := identity
	for _, partial := range partials {
		out = merge(out, partial)
	}
	return out, nil
}

// ForEachPart runs fn over each contiguous partition of xs concurrently,
// one worker per non-empty partition. It is the side-effect counterpart of
// [Reduce] for callers that aggregate externally.
//
//	err := parsum.ForEachPart(ctx, rows, 8, func(ctx context.Context, part []Row) error {
//	    return index(ctx, part)
//	})
func ForEachPart[T any](
	ctx context.Context,
	xs []T,
	workers int,
	fn func(ctx context.Context, part []T) error,
	opts ...Option,
) error {
	parts, err := Plan(len(xs), workers)
	if err != nil {
		return err
	}

	return Run(ctx, func(g *Group) {
		for i, p := range parts {
			g.Go(fmt.Sprintf("part[%d]", i), func(ctx context.Context) error {
				return fn(ctx, xs[p.Lo:p.Hi])
			})
		}
	}, opts...)
}
