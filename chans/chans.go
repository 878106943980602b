// Package chans provides the context-aware channel operations the parsum
// merge paths are built on: blocking send/receive that unblock on context
// cancellation, draining a channel of partial results into a slice, and
// wrapping a receive channel so it respects a context.
package chans

import "context"

// Send sends v to ch, unblocking early if ctx is cancelled. A worker
// publishing a partial result through Send can never wedge after the group
// is cancelled. It returns nil on successful send, or the context error.
func Send[T any](ctx context.Context, ch chan<- T, v T) error {
	select {
	case ch <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Recv receives a value from ch, unblocking early if ctx is cancelled.
// It returns the value, a boolean indicating whether the channel is still
// open (false means ch was closed), and any context error.
func Recv[T any](ctx context.Context, ch <-chan T) (T, bool, error) {
	select {
	case v, ok := <-ch:
		return v, ok, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}
