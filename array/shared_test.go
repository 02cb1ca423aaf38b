// SPDX-License-Identifier: MIT

package array_test

import (
	"testing"

	"github.com/katalvlaran/statick/array"
	"github.com/stretchr/testify/require"
)

// TestSharedListHandles checks append, indexed replace and handle sharing.
func TestSharedListHandles(t *testing.T) {
	reg := array.NewSharedList[float64](2)
	require.Equal(t, 2, reg.Len())
	require.False(t, reg.Empty())

	_, err := reg.At(0)
	require.ErrorIs(t, err, array.ErrNilArray)

	a := mustDense(t, 1, 2, []float64{1, 2})
	require.NoError(t, reg.Set(0, a))
	require.NoError(t, reg.Set(1, array.SparseFromDense(a)))
	require.ErrorIs(t, reg.Set(2, a), array.ErrOutOfRange)

	reg.Append(a)
	require.Equal(t, 3, reg.Len())

	got, err := reg.At(2)
	require.NoError(t, err)
	require.Same(t, a, got) // shared, not copied

	ms := reg.Matrices()
	ms[0] = nil
	first, err := reg.At(0)
	require.NoError(t, err)
	require.NotNil(t, first)

	require.True(t, array.NewSharedList[float64](0).Empty())
}
