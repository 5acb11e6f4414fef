package client

import (
	"errors"
	"fmt"
)

var (
	// ErrHTTP classifies failures where the remote answered with a non-2xx status.
	ErrHTTP = errors.New("http failure")

	// ErrTransport classifies failures where no interpretable response arrived.
	ErrTransport = errors.New("transport failure")
)

// HTTPError reports a received response whose status indicates failure.
type HTTPError struct {
	Method string
	Path   string
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.Status)
}

func (e *HTTPError) Unwrap() error {
	return ErrHTTP
}

// TransportError reports that no usable response was received: the network
// call failed, or the body could not be parsed into the expected shape.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap exposes both the class sentinel and the cause, so callers can test
// errors.Is(err, ErrTransport) as well as errors.Is(err, context.Canceled).
func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// Cause returns the underlying failure.
func (e *TransportError) Cause() error {
	return e.Err
}

// Status returns the HTTP status carried by err, or 0 when err is not an HTTP failure.
func Status(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}
