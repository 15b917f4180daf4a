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

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrImbalancedJournal is returned when the debit and credit sums of a journal differ.
// It is a validation error: nothing has been written when it is returned.
var ErrImbalancedJournal = fmt.Errorf("%w: journal debits and credits do not balance", ErrValidation)

// ErrUnknownAccount is returned when a journal entry references an account that does not exist.
var ErrUnknownAccount = fmt.Errorf("%w: unknown account", ErrValidation)

// ErrAlreadySeeded is returned when an opening balance is seeded on an account that already has ledger rows.
var ErrAlreadySeeded = errors.New("account already has ledger history")

// ErrPersistence wraps any failure inside a posting unit of work. The unit of work has been
// rolled back when it is returned.
var ErrPersistence = errors.New("persistence error")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}
