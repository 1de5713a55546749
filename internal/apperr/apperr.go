// Package apperr defines the closed set of failures the API can report.
//
// Services classify low-level faults (repository sentinels, bad credentials,
// malformed ids) into exactly one member of this set at the point of failure.
// The HTTP adapter renders each member to a status and body; it never
// re-classifies. Anything that reaches the adapter unclassified is treated
// as Internal.
package apperr

import "fmt"

// Kind enumerates the closed error taxonomy.
type Kind int

const (
	// Internal is the zero value so that an unset Kind never renders as
	// anything more specific than a server fault.
	Internal Kind = iota
	NotFound
	Unauthenticated
	Forbidden
	Validation
	Conflict
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a classified application failure.
type Error struct {
	Kind    Kind
	Message string
	// Fields is populated only for Kind == Validation, in the order the
	// fields are declared on the validated input.
	Fields []FieldError
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind == Validation && len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s: %s", e.Message, e.Fields[0].Field, e.Fields[0].Message)
	}
	return e.Message
}

func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

func NewUnauthenticated(message string) *Error {
	return &Error{Kind: Unauthenticated, Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{Kind: Forbidden, Message: message}
}

func NewValidation(fields ...FieldError) *Error {
	return &Error{Kind: Validation, Message: "validation failed", Fields: fields}
}

func NewConflict(message string) *Error {
	return &Error{Kind: Conflict, Message: message}
}

func NewInternal(message string) *Error {
	return &Error{Kind: Internal, Message: message}
}
