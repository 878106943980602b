package parsum

import (
	"errors"
	"fmt"
	"testing"
)

func TestWorkerError_Error(t *testing.T) {
	err := errors.New("something went wrong")
	we := &WorkerError{
		Worker: "sum[1]",
		Err:    err,
	}

	expected := `worker "sum[1]" failed: something went wrong`
	if got := we.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
}

func TestWorkerError_Unwrap(t *testing.T) {
	err := errors.New("original error")
	we := &WorkerError{
		Worker: "sum[1]",
		Err:    err,
	}

	if got := we.Unwrap(); got != err {
		t.Errorf("Unwrap() = %v, want %v", got, err)
	}
}

func TestIsWorkerError(t *testing.T) {
	we := &WorkerError{
		Worker: "sum[0]",
		Err:    errors.New("err"),
	}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "standard error",
			err:  errors.New("standard"),
			want: false,
		},
		{
			name: "WorkerError",
			err:  we,
			want: true,
		},
		{
			name: "wrapped WorkerError",
			err:  fmt.Errorf("wrapped: %w", we),
			want: true,
		},
		{
			name: "joined errors containing WorkerError",
			err:  errors.Join(errors.New("other"), we),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWorkerError(tt.err); got != tt.want {
				t.Errorf("IsWorkerError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWorkerOf(t *testing.T) {
	we := &WorkerError{
		Worker: "target-worker",
		Err:    errors.New("err"),
	}

	tests := []struct {
		name       string
		err        error
		wantWorker string
		wantOk     bool
	}{
		{
			name:       "nil error",
			err:        nil,
			wantWorker: "",
			wantOk:     false,
		},
		{
			name:       "standard error",
			err:        errors.New("standard"),
			wantWorker: "",
			wantOk:     false,
		},
		{
			name:       "WorkerError",
			err:        we,
			wantWorker: "target-worker",
			wantOk:     true,
		},
		{
			name:       "wrapped WorkerError",
			err:        fmt.Errorf("wrapped: %w", we),
			wantWorker: "target-worker",
			wantOk:     true,
		},
		{
			name:       "joined errors containing WorkerError",
			err:        errors.Join(errors.New("other"), we),
			wantWorker: "target-worker",
			wantOk:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotWorker, gotOk := WorkerOf(tt.err)
			if gotOk != tt.wantOk {
				t.Errorf("WorkerOf() ok = %v, want %v", gotOk, tt.wantOk)
			}
			if gotWorker != tt.wantWorker {
				t.Errorf("WorkerOf() worker = %q, want %q", gotWorker, tt.wantWorker)
			}
		})
	}
}

func TestCauseOf(t *testing.T) {
	rootErr := errors.New("root cause")
	we := &WorkerError{
		Worker: "sum[0]",
		Err:    rootErr,
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil error",
			err:  nil,
			want: nil,
		},
		{
			name: "standard error",
			err:  rootErr,
			want: rootErr,
		},
		{
			name: "WorkerError",
			err:  we,
			want: rootErr,
		},
		{
			name: "wrapped WorkerError",
			err:  fmt.Errorf("wrapped: %w", we),
			want: rootErr,
		},
		{
			name: "joined errors containing WorkerError",
			err:  errors.Join(errors.New("other"), we),
			want: rootErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CauseOf(tt.err)
			if got != tt.want {
				t.Errorf("CauseOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllWorkerErrors(t *testing.T) {
	we1 := &WorkerError{Worker: "w1", Err: errors.New("e1")}
	we2 := &WorkerError{Worker: "w2", Err: errors.New("e2")}
	we3 := &WorkerError{Worker: "w3", Err: errors.New("e3")}

	// WorkerError wrapping another WorkerError
	weNested := &WorkerError{Worker: "outer", Err: we1}

	tests := []struct {
		name string
		err  error
		want []*WorkerError
	}{
		{
			name: "nil error",
			err:  nil,
			want: nil,
		},
		{
			name: "standard error",
			err:  errors.New("standard"),
			want: nil,
		},
		{
			name: "single WorkerError",
			err:  we1,
			want: []*WorkerError{we1},
		},
		{
			name: "wrapped WorkerError",
			err:  fmt.Errorf("wrapped: %w", we1),
			want: []*WorkerError{we1},
		},
		{
			name: "joined WorkerErrors",
			err:  errors.Join(we1, we2),
			want: []*WorkerError{we1, we2},
		},
		{
			name: "mixed joined errors",
			err:  errors.Join(errors.New("other"), we1, errors.New("other2"), we2),
			want: []*WorkerError{we1, we2},
		},
		{
			name: "nested joins",
			err:  errors.Join(errors.Join(we1, we2), we3),
			want: []*WorkerError{we1, we2, we3},
		},
		{
			name: "WorkerError wrapping WorkerError (stops at top)",
			err:  weNested,
			want: []*WorkerError{weNested},
		},
		{
			name: "Join with nested WorkerError",
			err:  errors.Join(weNested, we2),
			want: []*WorkerError{weNested, we2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllWorkerErrors(tt.err)
			if len(got) != len(tt.want) {
				t.Fatalf("AllWorkerErrors() len = %d, want %d", len(got), len(tt.want))
			}
			for i, g := range got {
				if g != tt.want[i] {
					t.Errorf("AllWorkerErrors()[%d] = %v, want %v", i, g, tt.want[i])
				}
			}
		})
	}
}
