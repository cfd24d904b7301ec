package assistant

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse marks a response missing a required field.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrTimeout is returned when a run does not complete within the poll limit.
	ErrTimeout = errors.New("timed out waiting for run")
)

// ServiceError wraps any failure of a remote call.
type ServiceError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// RunFailedError is returned when a run stops in a status other than completed.
type RunFailedError struct {
	RunID   string
	Status  RunStatus
	Message string
}

func (e *RunFailedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("run %s ended with status %s: %s", e.RunID, e.Status, e.Message)
	}
	return fmt.Sprintf("run %s ended with status %s", e.RunID, e.Status)
}

func malformed(op, format string, args ...any) error {
	return &ServiceError{Op: op, Err: fmt.Errorf("%w: "+format, append([]any{ErrMalformedResponse}, args...)...)}
}
