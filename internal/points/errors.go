package points

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField reports a required field that is absent or null.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidJSON reports input that is not a well-formed JSON document.
	ErrInvalidJSON = errors.New("invalid json")
	// ErrWrongType reports a field whose JSON type does not match the schema.
	ErrWrongType = errors.New("wrong type")
)

// ParseError is returned by Parse. Field is the JSON path of the offending
// value (e.g. "points[2].size"); it is empty when the document itself is malformed.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parse points: %v", e.Err)
	}
	return fmt.Sprintf("parse points: %s: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
