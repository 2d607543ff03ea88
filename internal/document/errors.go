package document

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateNumber is returned when a document number is already taken
	// by another document of the same kind.
	ErrDuplicateNumber = errors.New("document number already in use")

	// ErrNumberOverflow is returned when a vendor-year sequence would need
	// more than four digits.
	ErrNumberOverflow = errors.New("document number sequence exhausted")
)

// ValidationError reports a malformed field on a document or line item.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
