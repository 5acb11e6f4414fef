package controller

import (
	"errors"
	"fmt"
)

// State is the request lifecycle of one controller.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrBusy rejects a submission while another one is still pending.
	ErrBusy = errors.New("a request is already pending")

	// ErrDetached rejects a submission on a controller whose view is gone.
	ErrDetached = errors.New("controller is no longer active")

	// ErrInvalid classifies validation failures.
	ErrInvalid = errors.New("invalid input")
)

// ValidationError is a predicate failure. Message is shown next to the
// input; the request never leaves the controller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Invalid builds a ValidationError.
func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
