/*
errors.go - Centralized error types for the salary engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Hosts (api, cli) classify errors with the helpers at the bottom of this
  file instead of matching on strings.

ERROR CATEGORIES:
  1. Input errors - Form text that cannot be read as a number
  2. Request errors - Malformed envelopes around the inputs (JSON, dates)

USAGE:
  if errors.Is(err, generic.ErrInvalidInput) {
      // show the fixed "Please enter valid numbers." message
  }

SEE ALSO:
  - types.go: ParseDecimal / ParseCount produce InvalidInputError
  - payroll/calculator.go: Aborts the calculation on the first bad field
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned when a numeric form field cannot be parsed.
	// Any single bad field invalidates the whole calculation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDate is returned when a reference date is malformed.
	ErrInvalidDate = errors.New("invalid date")

	errNonFinite  = errors.New("value is not finite")
	errOutOfRange = errors.New("value is out of range")
	errTooLong    = errors.New("value is too long")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidInputError records which field failed and what it contained.
// Users never see these details; they get a single fixed message.
type InvalidInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid input for %s: %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid input for %s: %q", e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidDate)
}

// IsInvalidInput reports whether err came from an unparsable numeric field.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
