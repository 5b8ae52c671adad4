package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrDuplicateUsername  = errors.New("username already in use")
)

// ValidationError accumulates field-level violations in insertion order.
// There is a single validator producing every violation; the HTTP boundary
// decides whether to present all of them or only the first one.
type ValidationError struct {
	order  []string
	fields map[string][]string
}

// NewValidationError returns an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string][]string)}
}

// Add records a violation message for a field.
func (e *ValidationError) Add(field, message string) {
	if _, seen := e.fields[field]; !seen {
		e.order = append(e.order, field)
	}
	e.fields[field] = append(e.fields[field], message)
}

// Empty reports whether no violations were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.order) == 0
}

// Fields returns all violations grouped by field.
func (e *ValidationError) Fields() map[string][]string {
	return e.fields
}

// First returns the first violated field and its first message.
func (e *ValidationError) First() (field, message string) {
	if len(e.order) == 0 {
		return "", ""
	}
	field = e.order[0]
	return field, e.fields[field][0]
}

// ErrOrNil returns the error itself if any violation was recorded, nil otherwise.
// Returning the concrete type directly would make a nil pointer non-nil as error.
func (e *ValidationError) ErrOrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	var parts []string
	for _, f := range e.order {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e.fields[f], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
