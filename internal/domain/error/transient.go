// Package error defines domain-specific errors for the reconciliation service.
package error

import "errors"

// ErrTransientStore marks store failures that are safe to retry: serialization
// conflicts and lock-acquisition timeouts. Business-rule and not-found errors
// are never wrapped with it.
var ErrTransientStore = errors.New("transient store failure")

// TransientError wraps a retryable store failure.
type TransientError struct {
	Cause error
}

// Error implements the error interface.
func (e *TransientError) Error() string {
	return "transient store failure: " + e.Cause.Error()
}

// Unwrap exposes both the retryable marker and the underlying cause, so
// errors.Is(err, ErrTransientStore) holds and the store error stays
// inspectable through errors.Is/As.
func (e *TransientError) Unwrap() []error {
	return []error{ErrTransientStore, e.Cause}
}

// NewTransientError wraps cause as a retryable failure.
func NewTransientError(cause error) *TransientError {
	return &TransientError{Cause: cause}
}

// IsTransient reports whether err is a retryable store failure.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientStore)
}
