package types

import (
	"errors"
	"fmt"
)

// Field validation errors. A *ValidationError returned by a setter wraps
// exactly one of these.
var (
	ErrInvalidName     = errors.New("name must not be empty")
	ErrInvalidPhone    = errors.New("phone must contain only digits")
	ErrInvalidBirthday = errors.New("birthday must be a valid date")
)

// Book errors.
var (
	ErrNotFound      = errors.New("contact not found")
	ErrInvalidRecord = errors.New("invalid record")
)

// ValidationError reports a value rejected by a field's rule.
type ValidationError struct {
	Field string // Field name: "name", "phone" or "birthday".
	Value any    // The rejected value.
	Err   error  // One of the ErrInvalid* sentinels.
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, fmt.Sprint(e.Value), e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
