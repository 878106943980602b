package parsum

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkers is returned when a worker count below one is requested.
// The check runs before any partition arithmetic, so a zero count can never
// reach the ceiling division.
var ErrInvalidWorkers = errors.New("parsum: worker count must be at least 1")

// Partition is a contiguous half-open index range [Lo, Hi) assigned to one
// worker. Partitions produced by [Plan] never overlap and together cover the
// input exactly.
type Partition struct {
	Lo int
	Hi int
}

// Len returns the number of indices in the partition.
func (p Partition) Len() int { return p.Hi - p.Lo }

// Empty reports whether the partition contains no indices.
func (p Partition) Empty() bool { return p.Hi <= p.Lo }

func (p Partition) String() string {
	return fmt.Sprintf("[%d,%d)", p.Lo, p.Hi)
}

// Plan splits the index range [0, n) into up to workers contiguous
// partitions of size ceil(n/workers), the last truncated at n. Trailing
// empty partitions are omitted, so requesting more workers than elements
// yields fewer partitions rather than no-op workers.
//
// For every n >= 0 and workers >= 1 the returned partitions are disjoint and
// their union is exactly [0, n). Plan returns [ErrInvalidWorkers] if workers
// is less than 1 and an error if n is negative.
func Plan(n, workers int) ([]Partition, error) {
	if workers < 1 {
		return nil, ErrInvalidWorkers
	}
	if n < 0 {
		return nil, fmt.Errorf("parsum: negative length %d", n)
	}
	if n == 0 {
		return nil, nil
	}

	size := (n + workers - 1) / workers
	parts := make([]Partition, 0, workers)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		parts = append(parts, Partition{Lo: lo, Hi: hi})
	}
	return parts, nil
}
