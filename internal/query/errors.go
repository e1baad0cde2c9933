package query

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes element access failures.
type ErrorCode string

const (
	// CodeNotFound indicates no element satisfied the predicates.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeOutOfRange indicates an index outside [0, length).
	CodeOutOfRange ErrorCode = "OUT_OF_RANGE"

	// CodeAmbiguous indicates more than one element satisfied the predicates.
	CodeAmbiguous ErrorCode = "AMBIGUOUS_MATCH"
)

// Sentinels for errors.Is. An *Error matches the sentinel with the same code.
var (
	ErrNotFound   = &Error{Code: CodeNotFound, Message: "no element satisfies the condition"}
	ErrOutOfRange = &Error{Code: CodeOutOfRange, Message: "index out of range"}
	ErrAmbiguous  = &Error{Code: CodeAmbiguous, Message: "more than one element satisfies the condition"}
)

// Error is returned by the strict element accessors.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the operator that failed (e.g. "First", "ElementAt").
	Op string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// IsNotFound returns true if err means no qualifying element exists.
// Both CodeNotFound and CodeOutOfRange qualify.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code == CodeNotFound || qe.Code == CodeOutOfRange
	}
	return false
}

// IsAmbiguous returns true if err is an ambiguous-match error.
func IsAmbiguous(err error) bool {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code == CodeAmbiguous
	}
	return false
}

func notFound(op string) *Error {
	return &Error{Code: CodeNotFound, Op: op, Message: ErrNotFound.Message}
}

func outOfRange(op string, index, length int) *Error {
	return &Error{
		Code:    CodeOutOfRange,
		Op:      op,
		Message: fmt.Sprintf("index %d outside [0, %d)", index, length),
	}
}

func ambiguous(op string) *Error {
	return &Error{Code: CodeAmbiguous, Op: op, Message: ErrAmbiguous.Message}
}
