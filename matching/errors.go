package matching

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedID  = errors.New("malformed gesture identifier")
	ErrOutOfBounds  = errors.New("gesture index out of bounds")
	ErrItemMismatch = errors.New("dragged item does not match source position")
	ErrNotDraggable = errors.New("placeholders are not draggable")
	ErrInvariant    = errors.New("collection invariant violated")
	ErrConfig       = errors.New("invalid exercise configuration")
)

// GestureError describes a gesture the engine refused to apply.
type GestureError struct {
	Op     string // "parse", "resolve"
	Detail string
	Err    error
}

func (e *GestureError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s gesture: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s gesture: %v: %s", e.Op, e.Err, e.Detail)
}

func (e *GestureError) Unwrap() error { return e.Err }

// InvariantError lists every invariant a store failed.
type InvariantError struct {
	Violations []string
}

func (e *InvariantError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("%v: %s", ErrInvariant, e.Violations[0])
	}
	return fmt.Sprintf("%v: %d violations (first: %s)", ErrInvariant, len(e.Violations), e.Violations[0])
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }

func resolveErr(err error, format string, args ...any) error {
	return &GestureError{Op: "resolve", Detail: fmt.Sprintf(format, args...), Err: err}
}

func parseErr(err error, format string, args ...any) error {
	return &GestureError{Op: "parse", Detail: fmt.Sprintf(format, args...), Err: err}
}
