// Copyright 2026 The Alink Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"strconv"
	"strings"
)

// Extent is the size of a single tensor axis. The zero value is Unknown,
// an axis whose size has not been resolved yet. In the text encoding an
// unknown extent is written as -1.
type Extent struct {
	n     int
	known bool
}

// Unknown is an axis extent whose size is not resolved.
var Unknown = Extent{}

// Known returns an extent of size n.
func Known(n int) Extent {
	return Extent{n: n, known: true}
}

// Value returns the extent's size and whether it is known.
func (e Extent) Value() (int, bool) {
	return e.n, e.known
}

// IsKnown reports whether the extent is resolved.
func (e Extent) IsKnown() bool {
	return e.known
}

// String returns the extent in text-encoding form: its size, or "-1"
// when unknown.
func (e Extent) String() string {
	if !e.known {
		return "-1"
	}
	return strconv.Itoa(e.n)
}

// Shape is the ordered list of per-axis extents of a tensor.
// Rank is the number of axes.
type Shape []Extent

// ShapeOf builds a shape from plain integers; negative entries become
// Unknown. It mirrors the -1 convention of the text encoding.
func ShapeOf(dims ...int) Shape {
	s := make(Shape, len(dims))
	for i, d := range dims {
		if d >= 0 {
			s[i] = Known(d)
		}
	}
	return s
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// FullyKnown reports whether every axis extent is resolved.
func (s Shape) FullyKnown() bool {
	for _, e := range s {
		if !e.known {
			return false
		}
	}
	return true
}

// NumElements returns the total number of elements and whether it could
// be computed (false when any axis is unknown).
func (s Shape) NumElements() (int, bool) {
	n := 1
	for _, e := range s {
		if !e.known {
			return 0, false
		}
		n *= e.n
	}
	return n, true
}

// Equal reports whether two shapes have the same rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String returns the shape in text-encoding form, e.g. "2,3" or "-1".
func (s Shape) String() string {
	var sb strings.Builder
	for i, e := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}

// Strides computes row-major strides for the shape: the last axis has
// stride 1 and stride[i] = stride[i+1] * shape[i+1]. It fails when the
// shape is not fully known, the stride engine's only failure mode.
func (s Shape) Strides() ([]int, error) {
	if !s.FullyKnown() {
		return nil, &ShapeError{Op: "Strides", Shape: s, Detail: "shape is not fully known"}
	}
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides, nil
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1].n
	}
	return strides, nil
}

// ToFlat converts a coordinate tuple into a flat row-major offset under
// the given strides.
func ToFlat(coord, strides []int) int {
	offset := 0
	for i, c := range coord {
		offset += c * strides[i]
	}
	return offset
}

// FromFlat recovers the coordinate tuple of a flat row-major offset
// under the given strides, most-significant axis first.
func FromFlat(offset int, strides []int) []int {
	coord := make([]int, len(strides))
	for i, st := range strides {
		coord[i] = offset / st
		offset %= st
	}
	return coord
}
