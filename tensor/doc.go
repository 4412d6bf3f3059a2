// Copyright 2026 The Alink Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor implements a unified multi-dimensional numeric
// container that represents vectors, matrices, and higher-rank arrays
// in either dense or sparse layout, together with the canonical text
// encoding used for persistence and interchange.
//
// # Layouts
//
// A tensor is one of exactly two variants behind the sealed Tensor
// interface:
//   - *Dense: a flat row-major buffer with one value per coordinate.
//   - *Sparse: explicit (coordinate, value) pairs; absent coordinates
//     are implicitly zero.
//
// Axis extents are Extent values, either Known(n) or Unknown; a dense
// tensor's leading extent is inferred from the buffer length at
// construction time.
//
// # Text encoding
//
// The on-disk/wire form is a compact comma-separated string with an
// optional "$...$" shape prefix:
//
//	"1,2,0,3,0"            dense vector [1 2 0 3 0]
//	"0:1,1:2,3:3"          sparse vector, unknown extent
//	"$2,3$1,0,3,0,0,6"     dense 2x3 matrix
//	"$2,3$0:0:1,0:2:3"     sparse 2x3 matrix
//
// Parse decodes a string into the appropriate variant and String (on
// either variant) re-encodes it; for any tensor with a fully known
// shape the two round-trip.
//
// # Basic usage
//
//	t, err := tensor.Parse("$2,3$0:0:1,0:2:3,1:2:6")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := t.ToDense()        // flat buffer [1 0 3 0 0 6]
//	m, err := d.ToMatrix()       // 2x3 matrix view
//
// Transforms (Reshape, ExpandDim, ToDense, Standardize, Normalize)
// never mutate their receiver; they return a new tensor, possibly
// sharing the underlying buffer. A tensor that is no longer being
// transformed may be shared freely for concurrent reads.
//
// View conversion produces the matrix package's DenseVector,
// SparseVector, and DenseMatrix types, the sole integration surface
// with downstream algorithms.
package tensor
