package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the pipeline can produce. The taxonomy
// is closed: ValidationError is raised before any network call, ApiError is
// a server-reported rejection, NetworkError is a transport-level failure.
type ErrorKind string

const (
	KindValidation ErrorKind = "ValidationError"
	KindAPI        ErrorKind = "ApiError"
	KindNetwork    ErrorKind = "NetworkError"
)

// OrderError is the single error type crossing stage boundaries. None of
// the kinds are retried; all of them terminate the current request.
type OrderError struct {
	Kind    ErrorKind
	Code    int64 // exchange numeric error code, ApiError only
	Message string
}

func (e *OrderError) Error() string {
	if e.Kind == KindAPI && e.Code != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewValidationError builds a pre-dispatch input rejection.
func NewValidationError(format string, args ...any) *OrderError {
	return &OrderError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewAPIError builds a server-reported rejection carrying the exchange's
// machine-readable code.
func NewAPIError(code int64, msg string) *OrderError {
	return &OrderError{Kind: KindAPI, Code: code, Message: msg}
}

// NewNetworkError wraps a transport failure (timeout, DNS, refused conn).
func NewNetworkError(err error) *OrderError {
	return &OrderError{Kind: KindNetwork, Message: err.Error()}
}

// AsOrderError extracts the typed error from any error chain. Unknown
// errors are folded into NetworkError so the taxonomy stays closed at the
// reporting boundary.
func AsOrderError(err error) *OrderError {
	var oe *OrderError
	if errors.As(err, &oe) {
		return oe
	}
	return NewNetworkError(err)
}
