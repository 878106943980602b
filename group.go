// Group provides structured concurrency for partitioned work: a set of named
// workers sharing a cancellable context, joined as a unit before control
// returns to the caller. Errors aggregate according to a configured policy
// (FailFast or Collect), and panics in workers are captured rather than
// allowed to crash the process.
package parsum

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// WorkerFunc is the signature of a worker running within a [Group]. The
// context is cancelled when the group ends or a sibling fails under
// [FailFast].
type WorkerFunc func(ctx context.Context) error

// Group spawns and tracks workers for one [Run] call. It is valid only for
// the duration of the function passed to Run; calling [Group.Go] after that
// function returns panics.
type Group struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	cfg    config

	wg   sync.WaitGroup
	open atomic.Bool

	firstErr atomic.Pointer[WorkerError]
	errOnce  sync.Once

	errMu sync.Mutex
	errs  []*WorkerError

	panicMu sync.Mutex
	panics  []*PanicError

	limiter *Semaphore

	spawned atomic.Int64
	active  atomic.Int64
}

// Run creates a [Group], invokes fn with it, then waits for every spawned
// worker to complete before returning. The returned error is aggregated
// according to the configured [Policy] (default [FailFast]).
//
// If fn itself panics, the group still waits for in-flight workers before
// the panic propagates.
func Run(parent context.Context, fn func(g *Group), opts ...Option) (err error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithCancelCause(parent)
	g := &Group{
		ctx:    ctx,
		cancel: cancel,
		cfg:    cfg,
	}
	if cfg.maxConcurrent > 0 {
		g.limiter = NewSemaphore(cfg.maxConcurrent)
	}
	g.open.Store(true)

	defer func() {
		// Capture a panic from fn before cleanup so workers are still
		// joined on the way out.
		fnPanic := recover()

		g.open.Store(false)
		waitErr, waitPanic := g.finalize()

		if fnPanic != nil {
			panic(fnPanic)
		}
		if waitPanic != nil {
			panic(waitPanic)
		}
		err = waitErr
	}()

	fn(g)
	return nil
}

// Go starts a named worker. The name appears in [*WorkerError] attribution
// and in the [WithOnDone] hook.
//
// Go panics if called after Run has returned; structured concurrency
// requires all workers to be scoped to the call.
func (g *Group) Go(name string, fn WorkerFunc) {
	// Check open BEFORE wg.Add to avoid a TOCTOU race with finalize's
	// wg.Wait.
	if !g.open.Load() {
		panic("parsum: Go called after group shutdown")
	}

	g.wg.Add(1)
	g.spawned.Add(1)

	go func() {
		defer g.wg.Done()

		if g.limiter != nil {
			if err := g.limiter.Acquire(g.ctx); err != nil {
				// Cancelled while waiting for a slot. The cause is
				// already recorded elsewhere; stay silent.
				return
			}
			defer g.limiter.Release()
		}

		if g.ctx.Err() != nil {
			return
		}

		g.active.Add(1)
		start := time.Now()
		err := g.exec(fn)
		elapsed := time.Since(start)
		g.active.Add(-1)

		if g.cfg.onDone != nil {
			g.cfg.onDone(name, err, elapsed)
		}
		if err != nil {
			g.recordError(name, err)
		}
	}()
}

// Context returns the group's context. It is cancelled when the group
// finalizes or, under [FailFast], when the first worker fails.
func (g *Group) Context() context.Context { return g.ctx }

// Active returns the number of workers currently executing.
func (g *Group) Active() int64 { return g.active.Load() }

// Spawned returns the total number of workers started via [Group.Go],
// including those already finished.
func (g *Group) Spawned() int64 { return g.spawned.Load() }

// exec runs a worker with panic recovery. Under the default configuration a
// panic becomes a *PanicError returned as the worker's error; with
// WithRepanic it is stored for re-raise in finalize.
func (g *Group) exec(fn WorkerFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pe := newPanicError(r)
			if g.cfg.repanic {
				g.panicMu.Lock()
				g.panics = append(g.panics, pe)
				g.panicMu.Unlock()
				g.cancel(pe)
			} else {
				err = pe
			}
		}
	}()
	return fn(g.ctx)
}

// recordError records a worker failure according to the configured policy.
func (g *Group) recordError(name string, err error) {
	we := &WorkerError{Worker: name, Err: err}

	switch g.cfg.policy {
	case FailFast:
		g.errOnce.Do(func() {
			g.firstErr.Store(we)
			g.cancel(err)
		})
	case Collect:
		g.errMu.Lock()
		g.errs = append(g.errs, we)
		g.errMu.Unlock()
	}
}

// finalize waits for all workers and aggregates the outcome.
func (g *Group) finalize() (error, *PanicError) {
	g.wg.Wait()

	// Was the context cancelled from outside before cleanup?
	ctxWasCancelled := g.ctx.Err() != nil

	select {
	case <-g.ctx.Done():
	default:
		g.cancel(nil)
	}

	var finPanic *PanicError
	if g.cfg.repanic {
		g.panicMu.Lock()
		if len(g.panics) > 0 {
			finPanic = g.panics[0]
		}
		g.panicMu.Unlock()
	}

	var finErr error
	switch g.cfg.policy {
	case FailFast:
		if we := g.firstErr.Load(); we != nil {
			finErr = we
		}
	case Collect:
		g.errMu.Lock()
		if len(g.errs) > 0 {
			errs := make([]error, 0, len(g.errs))
			for _, we := range g.errs {
				errs = append(errs, we)
			}
			finErr = errors.Join(errs...)
		}
		g.errMu.Unlock()
	}

	// No worker errors, but the parent context was cancelled before the
	// group wound down: surface that.
	if finErr == nil && ctxWasCancelled {
		finErr = g.ctx.Err()
	}

	return finErr, finPanic
}
