package order

import "errors"

// ErrInvalid is matched by every validation failure returned from this
// package.
var ErrInvalid = errors.New("order: invalid value")

// FieldError carries a user-facing validation message for a single field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrInvalid
}

func invalid(field, message string) error {
	return &FieldError{Field: field, Message: message}
}
