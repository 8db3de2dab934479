package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrDetailNotFound  = errors.New("offer detail not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrReviewNotFound  = errors.New("review not found")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	// ErrDuplicateRecord is what repositories return when a unique
	// index rejects a write; services turn it into a field error.
	ErrDuplicateRecord = errors.New("duplicate record")
)

// FieldError is a validation failure tied to one request field. It maps
// to a 400 with the field name as the key in the errors object.
type FieldError struct {
	Field   string
	Message string
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
