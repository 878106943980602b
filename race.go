package parsum

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// First runs all fns concurrently and returns the result of the first one
// to succeed (return a nil error). The contexts of the remaining fns are
// cancelled as soon as a winner is found, and every goroutine First started
// is joined before it returns.
//
// If all fns fail, First returns the zero value and the last error
// observed. If ctx is cancelled before any fn succeeds, First returns
// ctx.Err(). If fns is empty, First returns (zero, nil).
//
// First panics if any element of fns is nil.
func First[T any](
	ctx context.Context,
	fns ...func(context.Context) (T, error),
) (T, error) {
	var zero T
	if len(fns) == 0 {
		return zero, nil
	}
	for i, fn := range fns {
		if fn == nil {
			panic(fmt.Sprintf("parsum: First fn[%d] must not be nil", i))
		}
	}

	raceCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	type outcome struct {
		val T
		err error
	}

	// Buffered so every goroutine can send without blocking after the
	// winner is picked up.
	ch := make(chan outcome, len(fns))

	var wg sync.WaitGroup
	wg.Add(len(fns))

	for _, fn := range fns {
		go func() {
			defer wg.Done()
			val, err := fn(raceCtx)
			ch <- outcome{val: val, err: err}
		}()
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	// Drain to the close so the losers are joined before we return.
	var (
		won     bool
		winner  T
		lastErr error
	)
	for res := range ch {
		if res.err == nil && !won {
			won = true
			winner = res.val
			cancel(context.Canceled)
		}
		if res.err != nil {
			lastErr = res.err
		}
	}

	if won {
		return winner, nil
	}
	if ctx.Err() != nil {
		return zero, ctx.Err()
	}
	return zero, lastErr
}

// WithinTimeout races fn against a timer. If fn completes within d its
// result is returned; otherwise fn's context is cancelled, fn is joined,
// and WithinTimeout returns [context.DeadlineExceeded] (or the parent
// context's error if that fired first).
//
// If fn finishes successfully while the join is in progress, its result is
// preferred over the deadline error.
//
// WithinTimeout panics if fn is nil or d is not positive.
func WithinTimeout[T any](
	ctx context.Context,
	d time.Duration,
	fn func(context.Context) (T, error),
) (T, error) {
	var zero T
	if fn == nil {
		panic("parsum: WithinTimeout fn must not be nil")
	}
	if d <= 0 {
		panic("parsum: WithinTimeout requires d > 0")
	}

	tctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type outcome struct {
		val T
		err error
	}
	ch := make(chan outcome, 1)

	go func() {
		val, err := fn(tctx)
		ch <- outcome{val: val, err: err}
	}()

	select {
	case res := <-ch:
		return res.val, res.err
	case <-tctx.Done():
		// Join fn before returning; it observes the cancellation.
		res := <-ch
		if res.err == nil {
			return res.val, nil
		}
		return zero, tctx.Err()
	}
}
