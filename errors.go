package filters

import "fmt"

// ErrScalarType indicates a serialized value that cannot be represented as
// the collection's scalar type.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrScalarType struct {
	Value  any
	Target string
	cause  error
}

func (e *ErrScalarType) Error() string {
	return fmt.Sprintf("cannot decode %v (%T) as %s", e.Value, e.Value, e.Target)
}

func (e *ErrScalarType) Unwrap() error { return e.cause }

// ErrDocumentShape indicates serialized text whose top-level shape is not a
// key to value-list document.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDocumentShape struct {
	Got   string
	cause error
}

func (e *ErrDocumentShape) Error() string {
	return fmt.Sprintf("serialized document must be a mapping of value lists, got %s", e.Got)
}

func (e *ErrDocumentShape) Unwrap() error { return e.cause }
