package parsum

import (
	"errors"
	"fmt"
)

// WorkerError wraps an error together with the name of the worker that
// produced it. Group aggregation wraps every worker failure in a
// WorkerError so callers can attribute errors to specific partitions.
type WorkerError struct {
	Worker string
	Err    error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %q failed: %v", e.Worker, e.Err)
}

func (e *WorkerError) Unwrap() error {
	return e.Err
}

// IsWorkerError reports whether err (or any error in its chain) is a
// [*WorkerError].
func IsWorkerError(err error) bool {
	if err == nil {
		return false
	}
	var we *WorkerError
	return errors.As(err, &we)
}

// WorkerOf extracts the worker name from the first [*WorkerError] in err's
// chain. Returns false if none is found.
func WorkerOf(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var we *WorkerError
	if errors.As(err, &we) {
		return we.Worker, true
	}
	return "", false
}

// CauseOf unwraps the first [*WorkerError] in err's chain and returns its
// underlying cause. If err is not a WorkerError, it is returned as-is.
// Returns nil if err is nil.
func CauseOf(err error) error {
	if err == nil {
		return nil
	}

	var we *WorkerError
	if errors.As(err, &we) {
		return we.Err
	}
	return err
}

// AllWorkerErrors recursively collects every [*WorkerError] from err's
// chain, including errors combined via [errors.Join]. Returns nil if none
// are found.
func AllWorkerErrors(err error) []*WorkerError {
	if err == nil {
		return nil
	}

	var out []*WorkerError
	collectWorkerErrors(err, &out)
	return out
}

func collectWorkerErrors(err error, out *[]*WorkerError) {
	switch e := err.(type) {
	case *WorkerError:
		*out = append(*out, e)

	case interface{ Unwrap() []error }:
		for _, sub := range e.Unwrap() {
			collectWorkerErrors(sub, out)
		}

	case interface{ Unwrap() error }:
		collectWorkerErrors(e.Unwrap(), out)
	}
}
