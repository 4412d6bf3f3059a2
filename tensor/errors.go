package tensor

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLayout reports an operation invoked on a layout it is
// not defined for, e.g. expanding a dimension of a sparse tensor.
var ErrUnsupportedLayout = errors.New("tensor: operation not supported for this layout")

// FormatError reports malformed text input to Parse. It carries the
// original input string for diagnostics and never describes a partially
// constructed tensor.
type FormatError struct {
	Input string // the original (trimmed) input
	Err   error  // underlying cause
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("tensor: cannot parse %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// ShapeError reports invalid shape arithmetic: an unknown axis where a
// resolved one is required, a non-exact division during shape inference,
// or an out-of-range axis position.
type ShapeError struct {
	Op     string // the failing operation
	Shape  Shape  // the shape involved, if any
	Detail string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if len(e.Shape) > 0 {
		return fmt.Sprintf("tensor: %s: shape [%s]: %s", e.Op, e.Shape, e.Detail)
	}
	return fmt.Sprintf("tensor: %s: %s", e.Op, e.Detail)
}

// RankError reports a view conversion requested against a tensor of the
// wrong rank.
type RankError struct {
	Op   string
	Want int
	Got  int
}

// Error implements the error interface.
func (e *RankError) Error() string {
	return fmt.Sprintf("tensor: %s requires rank %d, got rank %d", e.Op, e.Want, e.Got)
}
