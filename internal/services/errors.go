package services

import (
	"errors"
	"fmt"
)

// ErrForbidden is returned when the caller is authenticated but does not
// own the record or lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCredentials is returned on login failure. Unknown usernames
// and wrong passwords are deliberately indistinguishable so account
// existence does not leak.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports a missing or out-of-range submission field.
// The caller can correct the input and resubmit; nothing was persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
