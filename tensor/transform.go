// Copyright 2026 The Alink Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// Reshape returns a dense tensor with the same buffer and a new shape.
//
// Row-major flattening is shape-agnostic, so the buffer is reused
// untouched; the total element count of the new shape is not
// revalidated and callers must ensure compatibility.
func (d *Dense) Reshape(newShape Shape) *Dense {
	return &Dense{shape: newShape.Clone(), data: d.data}
}

// ExpandDim returns a dense tensor with a new axis of extent 1 inserted
// at the given position. A negative axis counts from the end, -1
// meaning "after the last axis". It fails when the resolved position
// falls outside [0, rank].
func (d *Dense) ExpandDim(axis int) (*Dense, error) {
	ndim := len(d.shape)
	if axis > ndim || axis < -1-ndim {
		return nil, &ShapeError{Op: "ExpandDim", Shape: d.shape, Detail: fmt.Sprintf("invalid axis %d", axis)}
	}
	if axis < 0 {
		axis = ndim + 1 + axis
	}
	newShape := make(Shape, 0, ndim+1)
	newShape = append(newShape, d.shape[:axis]...)
	newShape = append(newShape, Known(1))
	newShape = append(newShape, d.shape[axis:]...)
	return &Dense{shape: newShape, data: d.data}, nil
}

// ToDense on an already-dense tensor returns the receiver.
func (d *Dense) ToDense() (*Dense, error) {
	return d, nil
}

// Standardize returns a tensor with every value x replaced by
// (x - mean[c]) / stdvar[c], where c is the value's channel (see
// channelOf). A zero stdvar is not guarded and propagates as a
// non-finite value.
func (d *Dense) Standardize(mean, stdvar []float64) (*Dense, error) {
	if err := d.checkChannels("Standardize", len(mean), len(stdvar)); err != nil {
		return nil, err
	}
	out := make([]float64, len(d.data))
	block := channelBlock(len(d.data), len(mean))
	for i, x := range d.data {
		c := denseChannel(i, block, len(mean))
		out[i] = (x - mean[c]) / stdvar[c]
	}
	return &Dense{shape: d.shape.Clone(), data: out}, nil
}

// Normalize returns a tensor with every value x replaced by
// (x - min[c]) / (max[c] - min[c]), where c is the value's channel.
// A zero range is not guarded and propagates as a non-finite value.
func (d *Dense) Normalize(min, max []float64) (*Dense, error) {
	if err := d.checkChannels("Normalize", len(min), len(max)); err != nil {
		return nil, err
	}
	out := make([]float64, len(d.data))
	block := channelBlock(len(d.data), len(min))
	for i, x := range d.data {
		c := denseChannel(i, block, len(min))
		out[i] = (x - min[c]) / (max[c] - min[c])
	}
	return &Dense{shape: d.shape.Clone(), data: out}, nil
}

func (d *Dense) checkChannels(op string, n, m int) error {
	if n != m {
		return fmt.Errorf("tensor: %s: statistics length mismatch: %d vs %d", op, n, m)
	}
	if n > 1 && len(d.data)%n != 0 {
		return &ShapeError{Op: op, Shape: d.shape,
			Detail: fmt.Sprintf("%d values cannot be split into %d channels", len(d.data), n)}
	}
	return nil
}

// channelBlock is the number of contiguous buffer positions assigned to
// each channel: the buffer splits into numChannels equal blocks along
// the leading axis.
func channelBlock(size, numChannels int) int {
	if numChannels <= 1 {
		return size
	}
	return size / numChannels
}

func denseChannel(i, block, numChannels int) int {
	if numChannels == 1 {
		return 0
	}
	return i / block
}

// Reshape returns a sparse tensor with the given shape, remapping every
// coordinate tuple through its flat offset: old coordinates are
// flattened under the old shape's strides and reinterpreted under the
// new shape's strides. Entry order is preserved. Both shapes must be
// fully known.
func (sp *Sparse) Reshape(newShape Shape) (*Sparse, error) {
	strides, err := sp.shape.Strides()
	if err != nil {
		return nil, err
	}
	newStrides, err := newShape.Strides()
	if err != nil {
		return nil, err
	}
	newIndices := make([][]int, len(sp.indices))
	for i, coord := range sp.indices {
		newIndices[i] = FromFlat(ToFlat(coord, strides), newStrides)
	}
	return &Sparse{shape: newShape.Clone(), indices: newIndices, data: sp.data}, nil
}

// ToDense converts the sparse tensor into a dense one. Every axis
// extent must be known. Each stored entry is written at its flat
// row-major offset; when two entries share a coordinate the last stored
// one wins (redundant entries are allowed by the sparse encoding and
// are not summed).
func (sp *Sparse) ToDense() (*Dense, error) {
	strides, err := sp.shape.Strides()
	if err != nil {
		return nil, &ShapeError{Op: "ToDense", Shape: sp.shape, Detail: "shape is not fully known"}
	}
	size, _ := sp.shape.NumElements()
	out := make([]float64, size)
	for i, coord := range sp.indices {
		out[ToFlat(coord, strides)] = sp.data[i]
	}
	return &Dense{shape: sp.shape.Clone(), data: out}, nil
}

// Standardize returns a sparse tensor with every stored value x
// replaced by (x - mean[c]) / stdvar[c]. With a single statistic every
// entry shares one channel; otherwise the channel is the entry's first
// coordinate component. A zero stdvar is not guarded.
func (sp *Sparse) Standardize(mean, stdvar []float64) (*Sparse, error) {
	if len(mean) != len(stdvar) {
		return nil, fmt.Errorf("tensor: Standardize: statistics length mismatch: %d vs %d", len(mean), len(stdvar))
	}
	out := make([]float64, len(sp.data))
	for i, x := range sp.data {
		c, err := sp.channel(i, len(mean))
		if err != nil {
			return nil, err
		}
		out[i] = (x - mean[c]) / stdvar[c]
	}
	return &Sparse{shape: sp.shape.Clone(), indices: sp.indices, data: out}, nil
}

// Normalize returns a sparse tensor with every stored value x replaced
// by (x - min[c]) / (max[c] - min[c]), with channels assigned as in
// Standardize. A zero range is not guarded.
func (sp *Sparse) Normalize(min, max []float64) (*Sparse, error) {
	if len(min) != len(max) {
		return nil, fmt.Errorf("tensor: Normalize: statistics length mismatch: %d vs %d", len(min), len(max))
	}
	out := make([]float64, len(sp.data))
	for i, x := range sp.data {
		c, err := sp.channel(i, len(min))
		if err != nil {
			return nil, err
		}
		out[i] = (x - min[c]) / (max[c] - min[c])
	}
	return &Sparse{shape: sp.shape.Clone(), indices: sp.indices, data: out}, nil
}

func (sp *Sparse) channel(entry, numChannels int) (int, error) {
	if numChannels == 1 {
		return 0, nil
	}
	c := sp.indices[entry][0]
	if c < 0 || c >= numChannels {
		return 0, fmt.Errorf("tensor: entry %d has leading coordinate %d, outside the %d channels", entry, c, numChannels)
	}
	return c, nil
}

// Reshape applies the layout-appropriate reshape to a tensor of either
// layout.
func Reshape(t Tensor, newShape Shape) (Tensor, error) {
	switch t := t.(type) {
	case *Dense:
		return t.Reshape(newShape), nil
	case *Sparse:
		return t.Reshape(newShape)
	}
	panic("tensor: unreachable layout")
}

// ExpandDim inserts an axis of extent 1 into a dense tensor; a sparse
// tensor is rejected with ErrUnsupportedLayout.
func ExpandDim(t Tensor, axis int) (Tensor, error) {
	switch t := t.(type) {
	case *Dense:
		return t.ExpandDim(axis)
	case *Sparse:
		return nil, fmt.Errorf("%w: ExpandDim on a sparse tensor", ErrUnsupportedLayout)
	}
	panic("tensor: unreachable layout")
}

// Standardize applies the layout-appropriate standardization.
func Standardize(t Tensor, mean, stdvar []float64) (Tensor, error) {
	switch t := t.(type) {
	case *Dense:
		return t.Standardize(mean, stdvar)
	case *Sparse:
		return t.Standardize(mean, stdvar)
	}
	panic("tensor: unreachable layout")
}

// Normalize applies the layout-appropriate normalization.
func Normalize(t Tensor, min, max []float64) (Tensor, error) {
	switch t := t.(type) {
	case *Dense:
		return t.Normalize(min, max)
	case *Sparse:
		return t.Normalize(min, max)
	}
	panic("tensor: unreachable layout")
}
