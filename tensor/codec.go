// Copyright 2026 The Alink Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse decodes the canonical text encoding of a tensor.
//
// The grammar, on the trimmed input:
//
//	tensor      := "" | shapePrefix? body
//	shapePrefix := "$" int ("," int)* "$"
//	body        := denseBody | sparseBody
//	denseBody   := number ("," number)*
//	sparseBody  := sparseEntry ("," sparseEntry)*
//	sparseEntry := coord (":" coord)* ":" number
//
// An empty input yields an all-zero sparse tensor of unknown extent. A
// negative shape-prefix entry marks that axis as Unknown. The body is
// sparse when the first value token contains a ':'; the sparse rank is
// the prefix length when a prefix is given, otherwise the number of
// ':' separators in the first entry.
//
// Any malformed number, wrong coordinate arity, garbled shape prefix,
// or failing shape inference is reported as a *FormatError carrying the
// original input; no partially constructed tensor is ever returned.
func Parse(s string) (Tensor, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return Empty(), nil
	}

	body := input
	var shape Shape
	if body[0] == '$' {
		last := strings.LastIndexByte(body, '$')
		if last == 0 {
			return nil, &FormatError{Input: input, Err: errors.New("unterminated shape prefix")}
		}
		var err error
		if shape, err = parseShapePrefix(body[1:last]); err != nil {
			return nil, &FormatError{Input: input, Err: err}
		}
		body = strings.TrimSpace(body[last+1:])
	}

	if body == "" {
		return EmptyWithShape(shape), nil
	}

	entries := strings.Split(body, ",")
	if strings.Contains(entries[0], ":") {
		return parseSparse(input, shape, entries)
	}
	return parseDense(input, shape, entries)
}

func parseShapePrefix(s string) (Shape, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty shape prefix")
	}
	tokens := strings.Split(s, ",")
	shape := make(Shape, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("bad shape entry %d: %w", i, err)
		}
		if n >= 0 {
			shape[i] = Known(n)
		}
	}
	return shape, nil
}

func parseSparse(input string, shape Shape, entries []string) (Tensor, error) {
	ndim := strings.Count(entries[0], ":")
	if shape != nil {
		ndim = len(shape)
	}

	indices := make([][]int, len(entries))
	data := make([]float64, len(entries))
	for i, entry := range entries {
		parts := strings.Split(entry, ":")
		if len(parts) != ndim+1 {
			return nil, &FormatError{Input: input,
				Err: fmt.Errorf("entry %d has %d coordinates, want %d", i, len(parts)-1, ndim)}
		}
		coord := make([]int, ndim)
		for j := 0; j < ndim; j++ {
			c, err := strconv.Atoi(strings.TrimSpace(parts[j]))
			if err != nil {
				return nil, &FormatError{Input: input, Err: fmt.Errorf("entry %d: %w", i, err)}
			}
			coord[j] = c
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[ndim]), 64)
		if err != nil {
			return nil, &FormatError{Input: input, Err: fmt.Errorf("entry %d: %w", i, err)}
		}
		indices[i] = coord
		data[i] = v
	}

	if shape == nil {
		shape = make(Shape, ndim) // all axes Unknown
	}
	sp, err := NewSparse(shape, indices, data)
	if err != nil {
		return nil, &FormatError{Input: input, Err: err}
	}
	return sp, nil
}

func parseDense(input string, shape Shape, entries []string) (Tensor, error) {
	data := make([]float64, len(entries))
	for i, entry := range entries {
		v, err := strconv.ParseFloat(strings.TrimSpace(entry), 64)
		if err != nil {
			return nil, &FormatError{Input: input, Err: fmt.Errorf("value %d: %w", i, err)}
		}
		data[i] = v
	}

	if shape == nil {
		shape = Shape{Known(len(data))}
	}
	d, err := NewDense(shape, data)
	if err != nil {
		return nil, &FormatError{Input: input, Err: err}
	}
	return d, nil
}

// String returns the canonical text encoding of the tensor.
func (d *Dense) String() string {
	return encode(d.shape, false, nil, d.data)
}

// String returns the canonical text encoding of the tensor.
func (sp *Sparse) String() string {
	return encode(sp.shape, true, sp.indices, sp.data)
}

// MarshalText implements encoding.TextMarshaler.
func (d *Dense) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalText implements encoding.TextMarshaler.
func (sp *Sparse) MarshalText() ([]byte, error) {
	return []byte(sp.String()), nil
}

// encode writes the canonical text form. The shape prefix is emitted
// only for sparse tensors and for dense tensors of rank > 1, and only
// when at least one axis extent is known; a fully unknown shape is
// omitted entirely, so it is not recovered by a later Parse.
func encode(shape Shape, sparse bool, indices [][]int, data []float64) string {
	withShape := false
	if sparse || len(shape) > 1 {
		for _, e := range shape {
			if e.IsKnown() {
				withShape = true
			}
		}
	}

	var sb strings.Builder
	if withShape {
		sb.WriteByte('$')
		sb.WriteString(shape.String())
		sb.WriteByte('$')
	}

	if sparse {
		for i, coord := range indices {
			if i > 0 {
				sb.WriteByte(',')
			}
			for _, c := range coord {
				sb.WriteString(strconv.Itoa(c))
				sb.WriteByte(':')
			}
			sb.WriteString(formatValue(data[i]))
		}
		return sb.String()
	}

	for i, v := range data {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(formatValue(v))
	}
	return sb.String()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
