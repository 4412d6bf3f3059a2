// Copyright 2026 The Alink Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"gonum.org/v1/gonum/floats"
)

// DenseVector is a fixed-length vector of float64 values.
//
// The constructor takes ownership of the provided slice; callers that
// need to keep the original untouched should pass a copy.
type DenseVector struct {
	data []float64
}

// NewDenseVector creates a dense vector backed by data.
func NewDenseVector(data []float64) *DenseVector {
	return &DenseVector{data: data}
}

// ZerosDenseVector creates a dense vector of length n filled with zeros.
func ZerosDenseVector(n int) *DenseVector {
	return &DenseVector{data: make([]float64, n)}
}

// Len returns the number of elements.
func (v *DenseVector) Len() int {
	return len(v.data)
}

// At returns the element at position i.
// Panics if i is out of bounds.
func (v *DenseVector) At(i int) float64 {
	return v.data[i]
}

// Data returns the underlying slice (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the vector.
func (v *DenseVector) Data() []float64 {
	return v.data
}

// Clone returns a deep copy of the vector.
func (v *DenseVector) Clone() *DenseVector {
	data := make([]float64, len(v.data))
	copy(data, v.data)
	return &DenseVector{data: data}
}

// Dot returns the dot product of v and w.
// Panics if the lengths differ.
func (v *DenseVector) Dot(w *DenseVector) float64 {
	return floats.Dot(v.data, w.data)
}

// Norm2 returns the Euclidean norm of the vector.
func (v *DenseVector) Norm2() float64 {
	return floats.Norm(v.data, 2)
}

// Norm2Squared returns the squared Euclidean norm of the vector.
func (v *DenseVector) Norm2Squared() float64 {
	return floats.Dot(v.data, v.data)
}

// Add returns the elementwise sum v + w as a new vector.
// Panics if the lengths differ.
func (v *DenseVector) Add(w *DenseVector) *DenseVector {
	out := v.Clone()
	floats.Add(out.data, w.data)
	return out
}

// Scale returns a * v as a new vector.
func (v *DenseVector) Scale(a float64) *DenseVector {
	out := v.Clone()
	floats.Scale(a, out.data)
	return out
}
