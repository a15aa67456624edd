package valueobject

import "fmt"

// ValidationError is the single error kind raised for violated construction
// or generation constraints. It carries the human-readable reason; callers
// treat the failed operation as all-or-nothing.
type ValidationError struct {
	Reason string
}

// NewValidationError creates a ValidationError with a formatted reason.
func NewValidationError(format string, args ...any) ValidationError {
	return ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Error returns the reason string.
func (e ValidationError) Error() string { return e.Reason }
