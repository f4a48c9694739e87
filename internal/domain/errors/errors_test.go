package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestConflictFamily(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"illegal transition", ErrIllegalTransition},
		{"insufficient balance", ErrInsufficientBalance},
		{"already reviewed", ErrAlreadyReviewed},
		{"already resolved", ErrAlreadyResolved},
		{"self resolution", ErrSelfResolution},
		{"already released", ErrAlreadyReleased},
		{"order closed", ErrOrderClosed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("storage: %w", tc.err)
			if !stdErrors.Is(wrapped, ErrConflict) {
				t.Fatalf("expected %v to be a conflict", tc.err)
			}
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match %v", tc.err)
			}
			if stdErrors.Is(wrapped, ErrNotFound) {
				t.Fatalf("conflict must not match not found")
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("create order: %w", Invalid("items", "at least one item is required"))
	if !stdErrors.Is(err, ErrValidation) {
		t.Fatal("expected validation error to match ErrValidation")
	}
	if stdErrors.Is(err, ErrConflict) {
		t.Fatal("validation error must not match conflict")
	}

	var ve *ValidationError
	if !stdErrors.As(err, &ve) || ve.Field != "items" {
		t.Fatalf("expected ValidationError for items, got %v", err)
	}
	if got := Invalid("", "bad").Error(); got != "bad" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := ve.Error(); got != "items: at least one item is required" {
		t.Fatalf("unexpected message %q", got)
	}
}
