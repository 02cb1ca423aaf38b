// SPDX-License-Identifier: MIT

// Package array_test contains unit tests for dense, view and random construction.
package array_test

import (
	"testing"

	"github.com/katalvlaran/statick/array"
	"github.com/stretchr/testify/require"
)

// TestNewDenseBadShape ensures negative dimensions are rejected.
func TestNewDenseBadShape(t *testing.T) {
	_, err := array.NewDense[float64](-1, 2)
	require.ErrorIs(t, err, array.ErrBadShape)

	_, err = array.NewDense[float64](2, -1)
	require.ErrorIs(t, err, array.ErrBadShape)
}

// TestNewDenseShapeInvariant checks size == rows*cols and the info record order.
func TestNewDenseShapeInvariant(t *testing.T) {
	m, err := array.NewDense[float64](3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 12, m.Size())
	require.Equal(t, [3]int{4, 3, 12}, m.Info()) // [cols, rows, size]
	require.False(t, m.IsSparse())

	empty, err := array.NewDense[float64](0, 5)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Size())
}

// TestNewDenseFromSizeMismatch ensures the buffer length must equal rows*cols.
func TestNewDenseFromSizeMismatch(t *testing.T) {
	_, err := array.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, array.ErrSizeMismatch)
}

// TestDenseRowAndAt verifies row slicing follows i*cols and At bounds checks.
func TestDenseRowAndAt(t *testing.T) {
	m, err := array.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	require.Equal(t, []float64{4, 5, 6}, m.Row(1))
	require.Len(t, m.Row(0), 3)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, array.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, array.ErrOutOfRange)
}

// TestDenseRowKernels checks RowDot, RowAxpy and RowNormSq, ignoring an intercept slot.
func TestDenseRowKernels(t *testing.T) {
	m, err := array.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	w := []float64{0.5, -1, 100} // trailing slot is not part of the row
	require.InDelta(t, 0.5*3-4, m.RowDot(1, w), 1e-12)

	y := []float64{1, 1, 7}
	m.RowAxpy(0, 2, y)
	require.Equal(t, []float64{3, 5, 7}, y)

	require.InDelta(t, 25.0, m.RowNormSq(1), 1e-12)
}

// TestDenseFloat32 exercises the generic fallback kernels.
func TestDenseFloat32(t *testing.T) {
	m, err := array.NewDenseFrom(1, 3, []float32{1, 2, 3})
	require.NoError(t, err)
	require.InDelta(t, 14.0, float64(m.RowNormSq(0)), 1e-6)
	y := make([]float32, 3)
	m.RowAxpy(0, -1, y)
	require.Equal(t, []float32{-1, -2, -3}, y)
}

// TestViewAliasesWithoutCopy ensures a view reads the owner's memory.
func TestViewAliasesWithoutCopy(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6, 7}
	v, err := array.NewView(buf[1:], 2, 3)
	require.NoError(t, err)
	require.Equal(t, 6, v.Size())
	require.Equal(t, []float64{5, 6, 7}, v.Row(1))

	buf[4] = 42 // visible through the alias
	require.Equal(t, 42.0, v.Row(1)[0])

	clone := v.Clone()
	buf[4] = 0
	require.Equal(t, 42.0, clone.Row(1)[0])

	_, err = array.NewView(buf, 3, 3)
	require.ErrorIs(t, err, array.ErrSizeMismatch)
}

// TestRandomSeeded checks reproducibility for non-negative seeds and the [0,1) range.
func TestRandomSeeded(t *testing.T) {
	a, err := array.Random[float64](4, 5, 1933)
	require.NoError(t, err)
	b, err := array.Random[float64](4, 5, 1933)
	require.NoError(t, err)
	c, err := array.Random[float64](4, 5, 7)
	require.NoError(t, err)

	require.Equal(t, a.Data(), b.Data())
	require.NotEqual(t, a.Data(), c.Data())
	for _, v := range a.Data() {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

// TestRandomEntropy checks that a negative seed still yields a valid array.
func TestRandomEntropy(t *testing.T) {
	m, err := array.Random[float32](3, 3, -1)
	require.NoError(t, err)
	require.Equal(t, 9, m.Size())

	v, err := array.RandomVector[float64](6, 11)
	require.NoError(t, err)
	require.Equal(t, 6, v.Len())
}

// TestIsNil distinguishes typed-nil handles from live matrices.
func TestIsNil(t *testing.T) {
	var dense *array.Dense[float64]
	var view *array.View[float64]
	var sparse *array.Sparse[float64]

	require.True(t, array.IsNil[float64](nil))    // untyped nil
	require.True(t, array.IsNil[float64](dense))  // typed-nil Dense
	require.True(t, array.IsNil[float64](view))   // typed-nil View
	require.True(t, array.IsNil[float64](sparse)) // typed-nil Sparse

	m, err := array.NewDense[float64](2, 2)
	require.NoError(t, err)                   // live 2x2 matrix
	require.False(t, array.IsNil[float64](m)) // not nil
}
