package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting role is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted for role")

// ErrTransport indicates that the command channel was unreachable or the remote side rejected the call.
var ErrTransport = errors.New("transport error")

// ErrStorageUnavailable indicates that persisted key-value storage could not be used.
var ErrStorageUnavailable = errors.New("storage unavailable")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError wraps ErrValidation with a human readable reason.
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// NewTransportError wraps ErrTransport for a failed command.
func NewTransportError(command string, err error) error {
	return fmt.Errorf("%w: command %s: %w", ErrTransport, command, err)
}

// NewStorageError wraps ErrStorageUnavailable for a failed storage operation on key.
func NewStorageError(op, key string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrStorageUnavailable, op, key, err)
}
