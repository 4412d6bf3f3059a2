// Copyright 2026 The Alink Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DenseMatrix is a row-major matrix backed by gonum's mat.Dense.
type DenseMatrix struct {
	m *mat.Dense
}

// NewDenseMatrix creates a matrix with the given row count from a flat
// row-major buffer. The column count is derived as len(data) / rows,
// which must divide exactly. The buffer is not copied.
func NewDenseMatrix(rows int, data []float64) (*DenseMatrix, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: row count %d", ErrDimensionMismatch, rows)
	}
	if len(data)%rows != 0 {
		return nil, fmt.Errorf("%w: %d values over %d rows", ErrNonRectangular, len(data), rows)
	}
	cols := len(data) / rows
	return &DenseMatrix{m: mat.NewDense(rows, cols, data)}, nil
}

// Rows returns the number of rows.
func (dm *DenseMatrix) Rows() int {
	r, _ := dm.m.Dims()
	return r
}

// Cols returns the number of columns.
func (dm *DenseMatrix) Cols() int {
	_, c := dm.m.Dims()
	return c
}

// At returns the element at row i, column j.
// Panics if the position is out of bounds.
func (dm *DenseMatrix) At(i, j int) float64 {
	return dm.m.At(i, j)
}

// Row returns a copy of row i as a dense vector.
func (dm *DenseMatrix) Row(i int) *DenseVector {
	return &DenseVector{data: mat.Row(nil, i, dm.m)}
}

// Data returns the underlying flat row-major buffer (zero-copy).
func (dm *DenseMatrix) Data() []float64 {
	return dm.m.RawMatrix().Data
}

// Mat returns the underlying gonum matrix for use with gonum routines.
func (dm *DenseMatrix) Mat() *mat.Dense {
	return dm.m
}

// MulVec returns the matrix-vector product dm * v.
func (dm *DenseMatrix) MulVec(v *DenseVector) (*DenseVector, error) {
	if v.Len() != dm.Cols() {
		return nil, fmt.Errorf("%w: %dx%d matrix times vector of length %d",
			ErrDimensionMismatch, dm.Rows(), dm.Cols(), v.Len())
	}
	var out mat.VecDense
	out.MulVec(dm.m, mat.NewVecDense(v.Len(), v.data))
	return &DenseVector{data: out.RawVector().Data}, nil
}
