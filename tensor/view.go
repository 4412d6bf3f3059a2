// Copyright 2026 The Alink Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/RockySteveJobs/Alink/matrix"
)

// ToDenseVector converts a rank-1 dense tensor into a dense vector
// view. The vector shares the tensor's buffer.
func (d *Dense) ToDenseVector() (*matrix.DenseVector, error) {
	if len(d.shape) != 1 {
		return nil, &RankError{Op: "ToDenseVector", Want: 1, Got: len(d.shape)}
	}
	return matrix.NewDenseVector(d.data), nil
}

// ToSparseVector converts a rank-1 dense tensor into a sparse vector
// view in which every position is a present index; zero values are not
// dropped.
func (d *Dense) ToSparseVector() (*matrix.SparseVector, error) {
	if len(d.shape) != 1 {
		return nil, &RankError{Op: "ToSparseVector", Want: 1, Got: len(d.shape)}
	}
	idx := make([]int, len(d.data))
	for i := range idx {
		idx[i] = i
	}
	return matrix.NewSparseVector(len(d.data), idx, d.data)
}

// ToMatrix converts a rank-2 dense tensor into a dense matrix view with
// the leading axis as the row count. Both extents must be known.
// There is no sparse counterpart; a matrix view of a sparse tensor is
// not offered.
func (d *Dense) ToMatrix() (*matrix.DenseMatrix, error) {
	if len(d.shape) != 2 {
		return nil, &RankError{Op: "ToMatrix", Want: 2, Got: len(d.shape)}
	}
	rows, ok := d.shape[0].Value()
	if !ok || !d.shape.FullyKnown() {
		return nil, &ShapeError{Op: "ToMatrix", Shape: d.shape, Detail: "shape is not fully known"}
	}
	return matrix.NewDenseMatrix(rows, d.data)
}

// ToSparseVector converts a rank-1 sparse tensor into a sparse vector
// view, using each entry's single coordinate component as its index.
// It succeeds even when the extent is unknown (the view's extent is
// then negative).
func (sp *Sparse) ToSparseVector() (*matrix.SparseVector, error) {
	if len(sp.shape) != 1 {
		return nil, &RankError{Op: "ToSparseVector", Want: 1, Got: len(sp.shape)}
	}
	n := -1
	if v, ok := sp.shape[0].Value(); ok {
		n = v
	}
	if len(sp.indices) == 0 {
		return matrix.EmptySparseVector(n), nil
	}
	idx := make([]int, len(sp.indices))
	for i, coord := range sp.indices {
		idx[i] = coord[0]
	}
	return matrix.NewSparseVector(n, idx, sp.data)
}

// ToDenseVector converts a rank-1 sparse tensor into a dense vector
// view. The extent must be known to size the allocation.
func (sp *Sparse) ToDenseVector() (*matrix.DenseVector, error) {
	if len(sp.shape) != 1 {
		return nil, &RankError{Op: "ToDenseVector", Want: 1, Got: len(sp.shape)}
	}
	if !sp.shape[0].IsKnown() {
		return nil, &ShapeError{Op: "ToDenseVector", Shape: sp.shape, Detail: "extent is unknown"}
	}
	sv, err := sp.ToSparseVector()
	if err != nil {
		return nil, err
	}
	return sv.ToDense()
}
