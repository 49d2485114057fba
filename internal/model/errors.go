package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotEligible is returned when a booking targets an application
	// that is not in the Shortlisted state, or a slot that does not
	// belong to the application's company.
	ErrNotEligible = errors.New("application not eligible for scheduling")

	// ErrSlotTaken is returned when another interview already holds the
	// requested start time. Expected under concurrent booking.
	ErrSlotTaken = errors.New("slot already taken")
)

// ValidationError describes malformed administration or booking input.
// It is rejected before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
