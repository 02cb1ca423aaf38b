// SPDX-License-Identifier: MIT

package model_test

import (
	"testing"

	"github.com/katalvlaran/statick/model"
	"github.com/stretchr/testify/require"
)

// TestReduceSamplesCoversEverySample checks each sample is summed exactly once
// regardless of the worker count.
func TestReduceSamplesCoversEverySample(t *testing.T) {
	const n, dim = 37, 3
	fn := func(lo, hi int, partial []float64) {
		for i := lo; i < hi; i++ {
			partial[0]++
			partial[1] += float64(i)
			partial[2] += float64(i * i)
		}
	}
	want := model.ReduceSamples(n, dim, 1, fn)
	require.Equal(t, []float64{37, 666, 16206}, want)

	for _, w := range []int{2, 3, 8, 64} {
		got := model.ReduceSamples(n, dim, w, fn)
		require.Equal(t, want, got, "workers=%d", w)
	}
}

// TestReduceSamplesEmpty ensures zero samples produce a zero vector.
func TestReduceSamplesEmpty(t *testing.T) {
	got := model.ReduceSamples(0, 2, 4, func(lo, hi int, partial []float64) {})
	require.Equal(t, []float64{0, 0}, got)
}
