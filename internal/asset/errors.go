package asset

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers match them with errors.Is.
var (
	ErrPathNotFound    = errors.New("asset path not found")
	ErrRead            = errors.New("asset read failed")
	ErrParse           = errors.New("asset parse failed")
	ErrAlreadyConsumed = errors.New("dataset already consumed")
	ErrNotReady        = errors.New("dataset not ready")
)

// LoadError is the failure reported by Poll and Take for a handle whose load did not succeed.
// It matches ErrPathNotFound, ErrRead or ErrParse via errors.Is, and the underlying cause
// (e.g. *points.ParseError or *fs.PathError) via errors.As.
type LoadError struct {
	Path string
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
