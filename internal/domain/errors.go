package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidID      = errors.New("invalid id")
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrUnknownClient  = errors.New("unknown client")
)

type Violation struct {
	Field   string
	Message string
}

type ValidationError struct {
	Violations []Violation
}

func NewValidationError(v ...Violation) *ValidationError {
	return &ValidationError{Violations: v}
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		lines = append(lines, v.Field+": "+v.Message)
	}
	return strings.Join(lines, "\n")
}
