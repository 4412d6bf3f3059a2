package tensor

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseReshape(t *testing.T) {
	d, err := NewDense(ShapeOf(-1), []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	m := d.Reshape(ShapeOf(2, 3))
	assert.True(t, m.Shape().Equal(ShapeOf(2, 3)))
	// The buffer is reused untouched; row-major flattening is
	// shape-agnostic.
	assert.Equal(t, d.Data(), m.Data())
	assert.True(t, d.Shape().Equal(ShapeOf(6)), "receiver must not change")
}

func TestDenseExpandDim(t *testing.T) {
	d, err := NewDense(ShapeOf(-1, 3), []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	tests := []struct {
		axis int
		want Shape
	}{
		{-1, ShapeOf(2, 3, 1)},
		{0, ShapeOf(1, 2, 3)},
		{1, ShapeOf(2, 1, 3)},
		{2, ShapeOf(2, 3, 1)},
		{-3, ShapeOf(1, 2, 3)},
	}

	for _, tt := range tests {
		got, err := d.ExpandDim(tt.axis)
		require.NoError(t, err, "axis %d", tt.axis)
		assert.True(t, got.Shape().Equal(tt.want), "axis %d: got %s, want %s", tt.axis, got.Shape(), tt.want)
		assert.Equal(t, d.Data(), got.Data())
	}
	assert.True(t, d.Shape().Equal(ShapeOf(2, 3)), "receiver must not change")
}

func TestDenseExpandDimInvalidAxis(t *testing.T) {
	d, err := NewDense(ShapeOf(-1, 3), []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	for _, axis := range []int{3, -4} {
		_, err := d.ExpandDim(axis)
		require.Error(t, err, "axis %d", axis)
		var shapeErr *ShapeError
		assert.ErrorAs(t, err, &shapeErr)
	}
}

func TestExpandDimOnSparseIsRejected(t *testing.T) {
	sp, err := NewSparse(ShapeOf(3), [][]int{{0}}, []float64{1})
	require.NoError(t, err)

	_, err = ExpandDim(sp, 0)
	assert.ErrorIs(t, err, ErrUnsupportedLayout)

	d, err := NewDense(ShapeOf(-1), []float64{1, 2})
	require.NoError(t, err)
	got, err := ExpandDim(d, 0)
	require.NoError(t, err)
	assert.True(t, got.Shape().Equal(ShapeOf(1, 2)))
}

func TestSparseReshape(t *testing.T) {
	sp, err := NewSparse(ShapeOf(2, 3), [][]int{{0, 0}, {0, 2}, {1, 2}}, []float64{1, 3, 6})
	require.NoError(t, err)

	r, err := sp.Reshape(ShapeOf(3, 2))
	require.NoError(t, err)
	// Flat offsets 0, 2, 5 reinterpreted under shape [3 2].
	assert.Equal(t, [][]int{{0, 0}, {1, 0}, {2, 1}}, r.Indices())
	assert.Equal(t, []float64{1, 3, 6}, r.Data())
	assert.Equal(t, [][]int{{0, 0}, {0, 2}, {1, 2}}, sp.Indices(), "receiver must not change")
}

// Reshaping A -> B -> A must reproduce the original entry set.
func TestSparseReshapeRoundTrip(t *testing.T) {
	orig, err := NewSparse(ShapeOf(2, 6), [][]int{{0, 1}, {1, 0}, {1, 5}}, []float64{1, 2, 3})
	require.NoError(t, err)

	for _, mid := range []Shape{ShapeOf(12), ShapeOf(3, 4), ShapeOf(4, 3), ShapeOf(2, 2, 3)} {
		r, err := orig.Reshape(mid)
		require.NoError(t, err)
		back, err := r.Reshape(ShapeOf(2, 6))
		require.NoError(t, err)
		if diff := cmp.Diff(orig, back, tensorCmp); diff != "" {
			t.Errorf("reshape via %s changed the tensor (-want +got):\n%s", mid, diff)
		}
	}
}

func TestSparseReshapeUnknownShape(t *testing.T) {
	sp, err := Parse("0:1,1:2")
	require.NoError(t, err)

	_, err = sp.(*Sparse).Reshape(ShapeOf(2, 1))
	require.Error(t, err)
	var shapeErr *ShapeError
	assert.ErrorAs(t, err, &shapeErr)

	known, err := NewSparse(ShapeOf(4), [][]int{{2}}, []float64{1})
	require.NoError(t, err)
	_, err = known.Reshape(ShapeOf(2, -1))
	assert.ErrorAs(t, err, &shapeErr)
}

func TestSparseToDense(t *testing.T) {
	sp, err := NewSparse(ShapeOf(2, 3), [][]int{{0, 0}, {0, 2}, {1, 2}}, []float64{1, 3, 6})
	require.NoError(t, err)

	d, err := sp.ToDense()
	require.NoError(t, err)
	assert.True(t, d.Shape().Equal(ShapeOf(2, 3)))
	assert.Equal(t, []float64{1, 0, 3, 0, 0, 6}, d.Data())
}

func TestToDenseIdempotent(t *testing.T) {
	sp, err := NewSparse(ShapeOf(4), [][]int{{1}}, []float64{7})
	require.NoError(t, err)

	once, err := sp.ToDense()
	require.NoError(t, err)
	twice, err := once.ToDense()
	require.NoError(t, err)
	assert.Same(t, once, twice)
	assert.Equal(t, []float64{0, 7, 0, 0}, twice.Data())
}

// Duplicate coordinates are not summed: the last stored entry wins.
// The sparse text format allows redundant entries, so this is pinned
// as intended behavior.
func TestToDenseDuplicateCoordinateLastWins(t *testing.T) {
	sp, err := NewSparse(ShapeOf(2), [][]int{{0}, {0}}, []float64{1, 9})
	require.NoError(t, err)

	d, err := sp.ToDense()
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 0}, d.Data())
}

func TestDenseStandardizeSingleChannel(t *testing.T) {
	d, err := NewDense(ShapeOf(-1), []float64{2, 4, 6})
	require.NoError(t, err)

	got, err := d.Standardize([]float64{0}, []float64{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got.Data())
	assert.Equal(t, []float64{2, 4, 6}, d.Data(), "receiver must not change")
}

func TestDenseStandardizeChannels(t *testing.T) {
	// The buffer splits into equal contiguous blocks along the leading
	// axis, one per channel.
	d, err := NewDense(ShapeOf(-1, 2), []float64{1, 2, 30, 40})
	require.NoError(t, err)

	got, err := d.Standardize([]float64{1, 30}, []float64{1, 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0, 1}, got.Data())
}

func TestDenseStandardizeErrors(t *testing.T) {
	d, err := NewDense(ShapeOf(-1), []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	_, err = d.Standardize([]float64{0}, []float64{1, 1})
	assert.Error(t, err, "statistics length mismatch")

	_, err = d.Standardize([]float64{0, 0}, []float64{1, 1})
	var shapeErr *ShapeError
	assert.ErrorAs(t, err, &shapeErr, "5 values cannot split into 2 channels")
}

func TestSparseStandardizeChannelByLeadingCoordinate(t *testing.T) {
	sp, err := NewSparse(ShapeOf(2, 2), [][]int{{0, 0}, {1, 1}}, []float64{2, 6})
	require.NoError(t, err)

	got, err := sp.Standardize([]float64{1, 2}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got.Data())
	assert.Equal(t, []float64{2, 6}, sp.Data(), "receiver must not change")
}

func TestSparseStandardizeChannelOutOfRange(t *testing.T) {
	sp, err := NewSparse(ShapeOf(5), [][]int{{4}}, []float64{1})
	require.NoError(t, err)

	_, err = sp.Standardize([]float64{0, 0}, []float64{1, 1})
	assert.Error(t, err)
}

func TestDenseNormalize(t *testing.T) {
	d, err := NewDense(ShapeOf(-1), []float64{1, 2, 3})
	require.NoError(t, err)

	got, err := d.Normalize([]float64{1}, []float64{3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, got.Data())
}

func TestSparseNormalize(t *testing.T) {
	sp, err := NewSparse(ShapeOf(2, 2), [][]int{{0, 1}, {1, 0}}, []float64{5, 30})
	require.NoError(t, err)

	got, err := sp.Normalize([]float64{0, 20}, []float64{10, 40})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, got.Data())
}

// A zero range or variance is intentionally not guarded; it propagates
// as a non-finite value.
func TestNormalizeZeroRangePropagatesNonFinite(t *testing.T) {
	d, err := NewDense(ShapeOf(-1), []float64{1, 2})
	require.NoError(t, err)

	got, err := d.Normalize([]float64{1}, []float64{1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.Data()[0]), "0/0 must stay NaN")
	assert.True(t, math.IsInf(got.Data()[1], 1), "1/0 must stay +Inf")

	std, err := d.Standardize([]float64{1}, []float64{0})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(std.Data()[0]))
	assert.True(t, math.IsInf(std.Data()[1], 1))
}

func TestGenericTransformHelpers(t *testing.T) {
	parsed, err := Parse("$2,2$0:0:2,1:1:4")
	require.NoError(t, err)

	r, err := Reshape(parsed, ShapeOf(4))
	require.NoError(t, err)
	assert.True(t, r.Shape().Equal(ShapeOf(4)))

	s, err := Standardize(parsed, []float64{0}, []float64{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, s.Data())

	n, err := Normalize(parsed, []float64{0}, []float64{4})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1}, n.Data())
}
