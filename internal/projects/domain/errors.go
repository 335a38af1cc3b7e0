package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("project not found")
	ErrConflict      = errors.New("project already exists")
	ErrUnavailable   = errors.New("project store unavailable")
	ErrInvalidStatus = errors.New("invalid project status")
)

// DecodeError marks a payload that is not well-formed JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode config: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError marks a decoded payload missing a required field or
// carrying a value outside the allowed set.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: field %q %s", e.Field, e.Reason)
}
