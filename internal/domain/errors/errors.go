package errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrAlreadyExists       = fmt.Errorf("%w: already exists", ErrConflict)
	ErrIllegalTransition   = fmt.Errorf("%w: transition not allowed", ErrConflict)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrConflict)
	ErrAlreadyReviewed     = fmt.Errorf("%w: order already reviewed", ErrConflict)
	ErrAlreadyResolved     = fmt.Errorf("%w: change request already resolved", ErrConflict)
	ErrSelfResolution      = fmt.Errorf("%w: requester cannot resolve own change request", ErrConflict)
	ErrAlreadyReleased     = fmt.Errorf("%w: funds already released", ErrConflict)
	ErrOrderClosed         = fmt.Errorf("%w: order is closed", ErrConflict)
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError describes malformed input on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

// Invalid builds a ValidationError.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
