package ollama

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMalformedLine marks a streamed line that was not valid JSON.
	// It is attached to Skip events and never returned from Stream.Next.
	ErrMalformedLine = errors.New("malformed stream line")

	// ErrIdleTimeout is the cause of a StreamError when the backend stops
	// sending lines for longer than the configured idle timeout.
	ErrIdleTimeout = errors.New("stream idle timeout")

	// ErrMissingField is the cause of a ProtocolError when a required
	// response field is absent.
	ErrMissingField = errors.New("missing field")
)

// UnreachableError means the request never got an HTTP response: connection
// refused, DNS failure, or a timeout before headers arrived.
type UnreachableError struct {
	// Op is the backend endpoint, e.g. "/api/chat".
	Op string

	// Timeout is set when the failure was a deadline.
	Timeout time.Duration

	// Cause is the underlying transport error.
	Cause error
}

// Error implements the error interface.
func (e *UnreachableError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("ollama %s timed out after %s: %v", e.Op, e.Timeout, e.Cause)
	}
	return fmt.Sprintf("ollama %s unreachable: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *UnreachableError) Unwrap() error {
	return e.Cause
}

// ProtocolError means the backend replied, but with an unexpected status or
// a body that does not have the expected shape.
type ProtocolError struct {
	// Op is the backend endpoint.
	Op string

	// StatusCode is the HTTP status (0 if the status was fine).
	StatusCode int

	// Message is the backend's own error text or a description of the problem.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.StatusCode > 0 && e.StatusCode != 200 {
		return fmt.Sprintf("ollama %s returned status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("ollama %s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ProtocolError) Unwrap() error {
	return e.Cause
}

// StreamError means a streamed reply failed after it started.
type StreamError struct {
	// Op is the backend endpoint.
	Op string

	// Lines is the number of lines read before the failure.
	Lines int

	// Cause is ErrIdleTimeout, a read error, or a ProtocolError for an
	// error line sent by the backend.
	Cause error
}

// Error implements the error interface.
func (e *StreamError) Error() string {
	return fmt.Sprintf("ollama %s stream failed after %d lines: %v", e.Op, e.Lines, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *StreamError) Unwrap() error {
	return e.Cause
}

// MissingField returns the ProtocolError for a 200 reply that lacks field.
func MissingField(op, field string) error {
	return &ProtocolError{
		Op:         op,
		StatusCode: 200,
		Message:    fmt.Sprintf("response missing %q field", field),
		Cause:      ErrMissingField,
	}
}
