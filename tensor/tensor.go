// Copyright 2026 The Alink Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"

	"github.com/RockySteveJobs/Alink/matrix"
)

// Tensor is a rank-N numeric container in one of exactly two physical
// layouts: *Dense or *Sparse. The interface is sealed; no other
// implementations exist.
//
// Layout-specific operations (ExpandDim, ToMatrix) live only on the
// variant that supports them. Package-level helpers (Reshape,
// Standardize, Normalize, ExpandDim) operate on the interface for
// callers holding a tensor of unknown layout, e.g. one returned by
// Parse.
//
// A tensor is value-like: transforms never mutate their receiver and
// return a new tensor instead, so a no-longer-transformed instance may
// be shared freely for concurrent reads.
type Tensor interface {
	// Shape returns the tensor's shape. Callers must not modify it.
	Shape() Shape
	// Rank returns the number of axes.
	Rank() int
	// Data returns the value buffer: the full row-major buffer for a
	// dense tensor, the per-entry values for a sparse one.
	Data() []float64
	// ToDense converts the tensor to dense layout. It requires a fully
	// known shape and is idempotent on an already-dense tensor.
	ToDense() (*Dense, error)
	// ToDenseVector converts a rank-1 tensor into a dense vector view.
	ToDenseVector() (*matrix.DenseVector, error)
	// ToSparseVector converts a rank-1 tensor into a sparse vector view.
	ToSparseVector() (*matrix.SparseVector, error)
	// String returns the canonical text encoding.
	String() string
	// MarshalText implements encoding.TextMarshaler using the canonical
	// text encoding.
	MarshalText() ([]byte, error)

	sealed()
}

var (
	_ Tensor = (*Dense)(nil)
	_ Tensor = (*Sparse)(nil)
)

// Dense is a tensor holding one value per coordinate in a flat
// row-major buffer (the last axis varies fastest).
type Dense struct {
	shape Shape
	data  []float64
}

// Sparse is a tensor holding explicit (coordinate, value) pairs;
// coordinates not listed are implicitly zero. An entry's coordinate
// tuple has one component per axis. Coordinate values are not bounds
// checked against the shape; correctness is deferred to consumers.
type Sparse struct {
	shape   Shape
	indices [][]int
	data    []float64
}

// NewDense creates a dense tensor from a shape and a flat row-major
// buffer. The leading axis is always re-derived as
// len(data) / product(other axes); all other axes must be known, and
// the product of the other axes must divide len(data) exactly.
// The data slice is not copied.
func NewDense(shape Shape, data []float64) (*Dense, error) {
	if len(shape) == 0 {
		return nil, &ShapeError{Op: "NewDense", Detail: "rank must be at least 1"}
	}
	rest := 1
	for i := 1; i < len(shape); i++ {
		n, ok := shape[i].Value()
		if !ok {
			return nil, &ShapeError{Op: "NewDense", Shape: shape, Detail: fmt.Sprintf("axis %d is unknown", i)}
		}
		rest *= n
	}
	resolved := shape.Clone()
	switch {
	case rest == 0:
		if len(data) != 0 {
			return nil, &ShapeError{Op: "NewDense", Shape: shape, Detail: "zero-sized axis with non-empty data"}
		}
		resolved[0] = Known(0)
	case len(data)%rest != 0:
		return nil, &ShapeError{Op: "NewDense", Shape: shape,
			Detail: fmt.Sprintf("%d values cannot fill the trailing axes (%d per leading index)", len(data), rest)}
	default:
		resolved[0] = Known(len(data) / rest)
	}
	return &Dense{shape: resolved, data: data}, nil
}

// NewSparse creates a sparse tensor from a shape and parallel
// coordinate/value lists. Every coordinate tuple must have exactly one
// component per axis. Coordinate values are not bounds checked.
// The indices and data slices are not copied.
func NewSparse(shape Shape, indices [][]int, data []float64) (*Sparse, error) {
	if len(shape) == 0 {
		return nil, &ShapeError{Op: "NewSparse", Detail: "rank must be at least 1"}
	}
	if len(indices) != len(data) {
		return nil, &ShapeError{Op: "NewSparse", Shape: shape,
			Detail: fmt.Sprintf("%d coordinate tuples vs %d values", len(indices), len(data))}
	}
	for i, coord := range indices {
		if len(coord) != len(shape) {
			return nil, &ShapeError{Op: "NewSparse", Shape: shape,
				Detail: fmt.Sprintf("coordinate %d has %d components, want %d", i, len(coord), len(shape))}
		}
	}
	return &Sparse{shape: shape.Clone(), indices: indices, data: data}, nil
}

// Empty creates an all-zero sparse tensor of unknown extent, the
// canonical decoding of an empty string.
func Empty() *Sparse {
	return &Sparse{shape: Shape{Unknown}}
}

// EmptyWithShape creates an all-zero sparse tensor with the given shape.
func EmptyWithShape(shape Shape) *Sparse {
	return &Sparse{shape: shape.Clone()}
}

func (d *Dense) sealed() {}

func (sp *Sparse) sealed() {}

// Shape returns the tensor's shape. Callers must not modify it.
func (d *Dense) Shape() Shape { return d.shape }

// Rank returns the number of axes.
func (d *Dense) Rank() int { return len(d.shape) }

// Data returns the flat row-major buffer (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (d *Dense) Data() []float64 { return d.data }

// At returns the value at the given coordinate tuple.
// Panics if the coordinate arity or any component is out of bounds, or
// if the shape is not fully known.
func (d *Dense) At(coord ...int) float64 {
	if len(coord) != len(d.shape) {
		panic(fmt.Sprintf("tensor: expected %d coordinates, got %d", len(d.shape), len(coord)))
	}
	strides, err := d.shape.Strides()
	if err != nil {
		panic(err)
	}
	for i, c := range coord {
		if n, _ := d.shape[i].Value(); c < 0 || c >= n {
			panic(fmt.Sprintf("tensor: coordinate %d out of bounds for axis %d (size %d)", c, i, n))
		}
	}
	return d.data[ToFlat(coord, strides)]
}

// Shape returns the tensor's shape. Callers must not modify it.
func (sp *Sparse) Shape() Shape { return sp.shape }

// Rank returns the number of axes.
func (sp *Sparse) Rank() int { return len(sp.shape) }

// Data returns the per-entry values, parallel to Indices (zero-copy).
func (sp *Sparse) Data() []float64 { return sp.data }

// Indices returns the per-entry coordinate tuples, parallel to Data
// (zero-copy).
func (sp *Sparse) Indices() [][]int { return sp.indices }

// NNZ returns the number of explicitly stored entries.
func (sp *Sparse) NNZ() int { return len(sp.data) }
