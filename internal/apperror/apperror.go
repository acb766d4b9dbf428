// Package apperror defines the error taxonomy shared by the service and
// handler layers. Services return these; handlers translate them to HTTP
// status codes and wire bodies.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a requested resource does not exist.
// Handlers map it to 404 with body {"detail": "Not found."}.
var ErrNotFound = errors.New("not found")

// Field error messages, matching the wire contract of the API.
const (
	MsgRequired      = "This field is required."
	MsgBlank         = "This field may not be blank."
	MsgPasswordMatch = "Password fields didn't match."
	MsgEmailTaken    = "Email already in use."
	MsgUsernameTaken = "A user with that username already exists."
)

// MsgMaxLength returns the over-length message for a field capped at n characters.
func MsgMaxLength(n int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", n)
}

// FieldErrors maps a field name to its message list. A value is either a
// []string or a nested FieldErrors for object-valued fields, so that a missing
// tag title serializes as {"tag": {"title": ["This field is required."]}}.
type FieldErrors map[string]any

// ValidationError carries per-field messages for a rejected write.
// Handlers map it to 400 with Fields as the response body.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Validation builds a single-field ValidationError.
func Validation(field string, messages ...string) *ValidationError {
	return &ValidationError{Fields: FieldErrors{field: messages}}
}

// Nested builds a ValidationError for a field inside an object-valued field.
func Nested(field, inner string, messages ...string) *ValidationError {
	return &ValidationError{Fields: FieldErrors{field: FieldErrors{inner: messages}}}
}

// Add merges another field's messages into e and returns e for chaining.
func (e *ValidationError) Add(field string, messages ...string) *ValidationError {
	if e.Fields == nil {
		e.Fields = FieldErrors{}
	}
	e.Fields[field] = messages
	return e
}
