// Copyright 2026 The Alink Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the vector and matrix types produced by tensor
// view conversion and consumed by downstream algorithms (clustering,
// model scoring, online training).
//
// Three types are offered:
//   - DenseVector: a fixed-length slice of float64 values.
//   - SparseVector: an extent plus explicit (index, value) pairs; absent
//     indices are implicitly zero.
//   - DenseMatrix: a row-major matrix backed by gonum's mat.Dense.
//
// Basic usage:
//
//	v := matrix.NewDenseVector([]float64{1, 2, 3})
//	w := matrix.NewDenseVector([]float64{4, 5, 6})
//	d := v.Dot(w)          // 32
//	n := v.Norm2()         // sqrt(14)
//
//	sv, _ := matrix.NewSparseVector(5, []int{0, 3}, []float64{1, 2})
//	dv, _ := sv.ToDense()  // [1 0 0 2 0]
//
// DenseVector arithmetic is backed by gonum's floats package, and
// DenseMatrix exposes its underlying *mat.Dense for direct use with
// gonum linear algebra routines.
package matrix
