package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrNetwork matches every NetworkError.
	ErrNetwork = errors.New("network error")

	// ErrTimeout matches a NetworkError caused by the request deadline.
	ErrTimeout = errors.New("request timeout")

	// ErrNoCandidates means a 200 response carried no usable candidate text.
	ErrNoCandidates = errors.New("no candidates in response")
)

// NetworkError wraps a transport failure: connection refused, DNS, reset, or
// the client timeout firing.
type NetworkError struct {
	Err     error
	Timeout bool
}

func newNetworkError(err error) *NetworkError {
	var ne net.Error
	timeout := errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout())
	return &NetworkError{Err: err, Timeout: timeout}
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timeout: %v", e.Err)
	}
	return fmt.Sprintf("connection error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork || (target == ErrTimeout && e.Timeout)
}

// APIError is a non-200 answer from Gemini.
type APIError struct {
	StatusCode int
	Body       string // truncated response body
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini returned %d: %s", e.StatusCode, e.Body)
}
