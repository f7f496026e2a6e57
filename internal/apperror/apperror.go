// Package apperror defines the error kinds shared by the store, service and
// handler layers.
//
// Every failure a caller can act on is an *AppError wrapping one of the
// sentinels below. Lower layers create them, upper layers classify them with
// errors.Is, and only the HTTP boundary turns them into status codes.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrUnauthorized = errors.New("unauthorized")
)

type AppError struct {
	Err     error    // sentinel kind
	Message string   // Human-readable error message
	Fields  []string // Optional: fields causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, id any) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %v", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Fields:  []string{field},
	}
}

// MissingFields reports every required field absent from a payload in one
// error, so clients can fix them all at once.
func MissingFields(fields ...string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: "missing required fields: " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

func DuplicateKey(resource, key string) *AppError {
	return &AppError{
		Err:     ErrDuplicateKey,
		Message: fmt.Sprintf("%s already exists: %s", resource, key),
	}
}

// Unauthorized returns an AppError for missing or rejected credentials.
// HTTP handlers map this to 401 Unauthorized.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}
