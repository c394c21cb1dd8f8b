// Package apperrors defines the error kinds shared by the marketplace
// client, the payment pipeline, and the HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError reports that a remote call never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// NewNetworkError wraps a transport failure for the named operation.
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// ServerRejection reports that the remote service answered with an error
// status or a body that could not be decoded.
type ServerRejection struct {
	Op     string
	Status int
	Body   string
}

func (e *ServerRejection) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: rejected (HTTP %d): %s", e.Op, e.Status, e.Body)
	}
	return fmt.Sprintf("%s: rejected (HTTP %d)", e.Op, e.Status)
}

// NewServerRejection builds a ServerRejection.
func NewServerRejection(op string, status int, body string) *ServerRejection {
	return &ServerRejection{Op: op, Status: status, Body: body}
}

// ValidationError reports input that cannot be processed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewValidationError builds a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports that an operation collides with one in progress.
type ConflictError struct {
	Resource string
	Reason   string
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Reason)
	}
	return fmt.Sprintf("%s conflict", e.Resource)
}

// NewConflictError builds a ConflictError.
func NewConflictError(resource, reason string) *ConflictError {
	return &ConflictError{Resource: resource, Reason: reason}
}

// NotFoundError reports a missing resource.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// NewNotFoundError builds a NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsRetryable reports whether err is worth retrying: transport failures,
// rate limiting, and 5xx rejections. Client errors and validation failures
// are permanent.
func IsRetryable(err error) bool {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var rej *ServerRejection
	if errors.As(err, &rej) {
		return rej.Status == http.StatusTooManyRequests || rej.Status >= http.StatusInternalServerError
	}
	return false
}
