// Copyright 2026 The Alink Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import "fmt"

// SparseVector is a vector stored as explicit (index, value) pairs.
// Indices not listed are implicitly zero. Pairs are kept in the order
// they were given; callers must not assume they are sorted.
//
// A negative extent means the vector's true length is not specified.
type SparseVector struct {
	n       int
	indices []int
	values  []float64
}

// NewSparseVector creates a sparse vector of extent n from parallel
// index and value slices. The slices are not copied.
func NewSparseVector(n int, indices []int, values []float64) (*SparseVector, error) {
	if len(indices) != len(values) {
		return nil, fmt.Errorf("%w: %d indices vs %d values", ErrDimensionMismatch, len(indices), len(values))
	}
	return &SparseVector{n: n, indices: indices, values: values}, nil
}

// EmptySparseVector creates an all-zero sparse vector of extent n.
func EmptySparseVector(n int) *SparseVector {
	return &SparseVector{n: n}
}

// Len returns the extent of the vector. A negative value means the
// extent is unknown.
func (v *SparseVector) Len() int {
	return v.n
}

// NNZ returns the number of explicitly stored entries.
func (v *SparseVector) NNZ() int {
	return len(v.values)
}

// Indices returns the stored indices (zero-copy).
func (v *SparseVector) Indices() []int {
	return v.indices
}

// Values returns the stored values (zero-copy).
func (v *SparseVector) Values() []float64 {
	return v.values
}

// Dot returns the dot product of v with a dense vector w.
// Stored indices outside [0, w.Len()) contribute nothing.
func (v *SparseVector) Dot(w *DenseVector) float64 {
	var sum float64
	for i, idx := range v.indices {
		if idx >= 0 && idx < w.Len() {
			sum += v.values[i] * w.At(idx)
		}
	}
	return sum
}

// ToDense converts the sparse vector into a dense one. The extent must
// be known, and every stored index must fall within [0, Len()).
// Duplicate indices are resolved by the last stored entry.
func (v *SparseVector) ToDense() (*DenseVector, error) {
	if v.n < 0 {
		return nil, ErrUnknownSize
	}
	out := make([]float64, v.n)
	for i, idx := range v.indices {
		if idx < 0 || idx >= v.n {
			return nil, fmt.Errorf("%w: index %d with extent %d", ErrIndexOutOfRange, idx, v.n)
		}
		out[idx] = v.values[i]
	}
	return &DenseVector{data: out}, nil
}
