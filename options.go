package parsum

import "time"

// Policy determines how a [Group] handles errors from its workers.
type Policy int

const (
	// FailFast cancels all sibling workers when the first error occurs.
	// [Run] returns that first error.
	FailFast Policy = iota

	// Collect gathers all errors without cancelling siblings.
	// [Run] returns them joined via [errors.Join].
	Collect
)

type config struct {
	policy        Policy
	maxConcurrent int
	repanic       bool
	onDone        func(worker string, err error, d time.Duration)
}

// Option configures a [Group].
type Option func(*config)

func defaultConfig() config {
	return config{
		policy: FailFast,
	}
}

// WithPolicy sets the error handling policy for the group.
// It panics if p is not a known Policy value.
func WithPolicy(p Policy) Option {
	return func(c *config) {
		switch p {
		case FailFast, Collect:
			c.policy = p
		default:
			panic("parsum: invalid policy")
		}
	}
}

// WithMaxConcurrent bounds the number of workers executing simultaneously.
// Workers beyond the bound wait for a slot, respecting context cancellation
// while waiting.
//
// A bound of zero (the default) means one goroutine per partition runs
// freely. WithMaxConcurrent panics if n is negative.
func WithMaxConcurrent(n int) Option {
	return func(c *config) {
		if n < 0 {
			panic("parsum: max concurrent must be non-negative")
		}
		c.maxConcurrent = n
	}
}

// WithRepanic re-raises a worker panic from [Run] instead of converting it
// to a [*PanicError] error value. This is the fail-loud behavior of the
// classic teaching exercise; the default keeps the process alive and
// reports the panic as an error.
func WithRepanic() Option {
	return func(c *config) {
		c.repanic = true
	}
}

// WithOnDone registers a hook invoked when each worker finishes. The hook
// receives the worker's name, its error (nil on success), and wall-clock
// duration. It runs inside the worker's goroutine after the worker function
// returns.
func WithOnDone(fn func(worker string, err error, d time.Duration)) Option {
	return func(c *config) {
		c.onDone = fn
	}
}
