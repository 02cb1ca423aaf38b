// SPDX-License-Identifier: MIT

package array_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/statick/array"
	"github.com/stretchr/testify/require"
)

// TestListOffsetInvariant checks offset_i == sum(size_0..size_{i-1}) and that
// At(i) returns exactly that sub-range.
func TestListOffsetInvariant(t *testing.T) {
	shapes := [][2]int{{2, 3}, {1, 1}, {0, 4}, {4, 2}}
	l := array.NewList[float64]()
	var srcs []*array.Dense[float64]
	for k, s := range shapes {
		m, err := array.Random[float64](s[0], s[1], int64(k))
		require.NoError(t, err)
		require.NoError(t, l.Append(m))
		srcs = append(srcs, m)
	}
	require.Equal(t, len(shapes), l.Len())

	offset := 0
	for i, src := range srcs {
		e, err := l.Entry(i)
		require.NoError(t, err)
		require.Equal(t, [4]int{src.Cols(), src.Rows(), src.Size(), offset}, e)

		v, err := l.At(i)
		require.NoError(t, err)
		require.Equal(t, src.Info(), v.Info())
		require.Equal(t, l.Data()[offset:offset+src.Size()], v.Data())
		require.Equal(t, src.Data(), v.Data())
		offset += src.Size()
	}
	require.Equal(t, offset, l.Size())

	_, err := l.At(len(shapes))
	require.ErrorIs(t, err, array.ErrOutOfRange)
}

// TestListAppendFromAtomic ensures a rejected record leaves the list untouched.
func TestListAppendFromAtomic(t *testing.T) {
	l := array.NewList[float64]()
	good, err := array.NewDenseFrom(1, 2, []float64{1, 2})
	require.NoError(t, err)
	require.NoError(t, l.AppendFrom(roundTrip(t, good)))

	// size mismatch
	err = l.AppendFrom(craftDense(t, false, 3, 4, 10, make([]float64, 10)))
	require.ErrorIs(t, err, array.ErrSizeMismatch)
	// sparse discriminant
	err = l.AppendFrom(craftDense(t, true, 1, 1, 1, []float64{9}))
	require.ErrorIs(t, err, array.ErrSparseMismatch)
	// truncated payload
	err = l.AppendFrom(craftDense(t, false, 2, 1, 2, []float64{9}))
	require.Error(t, err)

	require.Equal(t, 1, l.Len())
	require.Equal(t, []float64{1, 2}, l.Data())
	require.Equal(t, []int{2, 1, 2, 0}, l.Info())

	require.NoError(t, l.AppendFrom(roundTrip(t, good)))
	require.Equal(t, []int{2, 1, 2, 0, 2, 1, 2, 2}, l.Info())
}

// TestListFromFiles loads several files and aborts on the first bad one.
func TestListFromFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 3; i++ {
		m, err := array.Random[float64](i+1, 2, int64(i))
		require.NoError(t, err)
		p := filepath.Join(dir, fmt.Sprintf("f%d.cereal", i))
		require.NoError(t, array.Save(p, m))
		paths = append(paths, p)
	}

	l, err := array.ListFromFiles[float64](paths)
	require.NoError(t, err)
	require.Equal(t, 3, l.Len())
	require.Equal(t, 2+4+6, l.Size())
	require.Len(t, l.Views(), 3)

	bad := filepath.Join(dir, "bad.cereal")
	s := array.SparseFromDense(mustDense(t, 1, 1, []float64{1}))
	require.NoError(t, array.Save(bad, s))

	l, err = array.ListFromFiles[float64](append(paths, bad))
	require.ErrorIs(t, err, array.ErrSparseMismatch)
	require.Nil(t, l)

	_, err = array.ListFromFiles[float64]([]string{filepath.Join(dir, "missing")})
	require.Error(t, err)
}

// TestListAppendNil ensures a nil source is rejected.
func TestListAppendNil(t *testing.T) {
	l := array.NewList[float64]()
	require.ErrorIs(t, l.Append(nil), array.ErrNilArray)
	require.Equal(t, 0, l.Len())
}

func mustDense(t *testing.T, rows, cols int, data []float64) *array.Dense[float64] {
	t.Helper()
	m, err := array.NewDenseFrom(rows, cols, data)
	require.NoError(t, err)

	return m
}
