package parsum

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Accumulator is a mutex-guarded running total shared by the workers of a
// single call. Each worker merges its partial in one locked update via
// [Accumulator.Add]; the caller reads the result with [Accumulator.Total]
// after all workers have joined.
//
// The zero value is ready to use with a total of zero.
type Accumulator[T constraints.Signed] struct {
	mu    sync.Mutex
	total T
}

// Add merges a partial value into the total. The critical section is a
// single addition.
func (a *Accumulator[T]) Add(partial T) {
	a.mu.Lock()
	a.total += partial
	a.mu.Unlock()
}

// Total returns the current total. Call it only after the workers writing to
// the accumulator have been joined if a final value is expected.
func (a *Accumulator[T]) Total() T {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}
