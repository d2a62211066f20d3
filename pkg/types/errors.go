package types

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedOperation is returned by RPC operations that exist in
// the wire contract but have no defined semantics.
var ErrUnsupportedOperation = errors.New("operation not supported")

// TransportError represents an RPC-level failure: a timeout, a broken
// connection or an unreachable worker.
type TransportError struct {
	Op    string // RPC operation that failed
	Addr  string // worker address
	Cause error  // underlying error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error in %s to %s: %v", e.Op, e.Addr, e.Cause)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// NewTransportError creates a new TransportError.
func NewTransportError(op, addr string, cause error) *TransportError {
	return &TransportError{Op: op, Addr: addr, Cause: cause}
}

// ApplicationError represents a well-formed but non-ok worker
// response, such as a remote execution exception.
type ApplicationError struct {
	Op      string // RPC operation
	Code    int32  // worker-reported error code
	Message string // worker-reported message
}

// Error implements the error interface.
func (e *ApplicationError) Error() string {
	return fmt.Sprintf("worker error in %s (code %d): %s", e.Op, e.Code, e.Message)
}

// NewApplicationError creates a new ApplicationError.
func NewApplicationError(op string, code int32, message string) *ApplicationError {
	return &ApplicationError{Op: op, Code: code, Message: message}
}

// PlacementError means no eligible worker could be chosen for a
// segment, or an internal worker index was invalid. It is terminal for
// the attempt and never retried.
type PlacementError struct {
	SegmentID SegmentID
	Reason    string
}

// Error implements the error interface.
func (e *PlacementError) Error() string {
	return fmt.Sprintf("placement failed for segment %d: %s", e.SegmentID, e.Reason)
}

// NewPlacementError creates a new PlacementError.
func NewPlacementError(segmentID SegmentID, reason string) *PlacementError {
	return &PlacementError{SegmentID: segmentID, Reason: reason}
}

// ConfigurationError means a required dispatch field is missing or
// invalid. It is detected before any RPC is issued.
type ConfigurationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Reason)
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

// DeadlineExceededError means the attempt's deadline passed while
// segments were still pending, independent of any per-call timeout.
type DeadlineExceededError struct {
	Deadline time.Time
	Pending  int // segments not yet finished
}

// Error implements the error interface.
func (e *DeadlineExceededError) Error() string {
	return fmt.Sprintf("query deadline %s exceeded with %d segments pending",
		e.Deadline.Format(time.RFC3339), e.Pending)
}

// NewDeadlineExceededError creates a new DeadlineExceededError.
func NewDeadlineExceededError(deadline time.Time, pending int) *DeadlineExceededError {
	return &DeadlineExceededError{Deadline: deadline, Pending: pending}
}

// IsDeadlineExceeded reports whether err is a deadline violation,
// either the scheduler's own or one propagated from a context.
func IsDeadlineExceeded(err error) bool {
	var de *DeadlineExceededError
	return errors.As(err, &de) || errors.Is(err, context.DeadlineExceeded)
}
