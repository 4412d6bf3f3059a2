package matrix

import "errors"

// Common errors.
var (
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
	ErrUnknownSize       = errors.New("matrix: vector size is unknown")
	ErrIndexOutOfRange   = errors.New("matrix: index out of range")
	ErrNonRectangular    = errors.New("matrix: data length is not a multiple of the row count")
)
