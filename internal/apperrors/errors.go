package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a referenced customer or account could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a non-positive amount supplied to a money-moving operation.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrInsufficientFunds indicates a withdrawal or transfer exceeding the available balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// AppError carries a code and message alongside an underlying cause.
// Storage failures are wrapped in an AppError so callers can report them
// as clearly labeled fatal errors instead of bare driver errors.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
