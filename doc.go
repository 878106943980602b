// Package parsum computes reductions over slices by splitting them into
// contiguous partitions and fanning the partitions out to a bounded set of
// concurrent workers, all of which are joined before the call returns.
//
// # Summation
//
// The flagship operation is [Sum], which partitions an integer slice into
// ceil(len/workers) sized ranges, computes a partial sum per partition, and
// folds the partials into the final total after every worker has finished:
//
//	total, err := parsum.Sum(ctx, nums, 4)
//
// The result is always equal to sequential summation: partitions cover the
// input exactly once, and integer addition is associative and commutative
// within the representable range (overflow is the caller's concern). A
// worker count below one is rejected with [ErrInvalidWorkers] before any
// partition arithmetic runs.
//
// [Sum] merges partials over a channel and folds them single-threaded in the
// caller, so workers never contend on a lock. [SumShared] is the classic
// variant where each worker merges its partial into a mutex-guarded
// [Accumulator] in a single short critical section; both produce identical
// results. [SumWithin] races the summation against a deadline.
//
// # Partitions
//
// [Plan] exposes the partitioning step on its own: it returns the contiguous,
// non-overlapping [Partition] ranges whose union is exactly the input index
// space. Requesting more workers than elements simply yields fewer
// partitions; trailing empty ranges are omitted.
//
// # Generic reduction
//
// [Reduce] generalizes Sum to any fold: each partition is folded locally,
// then the per-partition results are merged single-threaded after the join.
// [ForEachPart] runs a function over each partition concurrently without
// producing a value.
//
// # Worker groups
//
// The routines above run on [Run] and [Group], a structured worker group:
// workers are spawned by name, share a cancellable context, and are all
// joined before Run returns, so no work outlives the call. Error policies
// control aggregation:
//
//   - [FailFast] (default): the first error cancels sibling workers.
//   - [Collect]: all errors are gathered and joined via [errors.Join].
//
// Worker failures are wrapped in [*WorkerError] for attribution. A panicking
// worker does not crash the process: the panic is captured with its stack
// and surfaced as a [*PanicError] error value. [WithRepanic] restores
// re-raising for callers that prefer to fail loud.
//
// [WithMaxConcurrent] bounds how many workers execute simultaneously; the
// bound is enforced by [Semaphore], which is also usable standalone.
//
// # Reusable pools
//
// [Summer] keeps a fixed [Pool] of workers alive across many Sum calls,
// amortizing goroutine startup when summing batches repeatedly.
// [Pool.Stats] exposes submitted/completed/in-flight counters.
//
// # Racing
//
// [First] runs several functions concurrently and returns the first
// successful result, cancelling the losers. [WithinTimeout] races a single
// function against a timer. Both join every goroutine they start before
// returning.
//
// # Channel utilities
//
// The [github.com/okunev/parsum/chans] subpackage provides the context-aware
// channel operations (Send, Recv, Collect, OrDone) the merge paths are built
// on.
package parsum
