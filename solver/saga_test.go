// SPDX-License-Identifier: MIT

package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/statick/array"
	"github.com/katalvlaran/statick/prox"
	"github.com/katalvlaran/statick/solver"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// TestSAGADefaultStep derives the step from the largest Lipschitz constant.
func TestSAGADefaultStep(t *testing.T) {
	m := smallModel(t)
	saga, err := solver.NewSAGA[float64](m, nil)
	require.NoError(t, err)
	s, err := saga.NewState()
	require.NoError(t, err)
	require.InDelta(t, 1/(3*m.Lipschitz().Max()), s.Step, 1e-15)
	require.Len(t, s.Iterate, 2)
	require.Len(t, s.GradientsMemory, 3)
	require.Len(t, s.GradientsAverage, 2)

	saga, err = solver.NewSAGA[float64](m, nil, solver.WithStep(0.25))
	require.NoError(t, err)
	s, err = saga.NewState()
	require.NoError(t, err)
	require.Equal(t, 0.25, s.Step)
}

// TestSAGAAverageInvariant checks that after any sequence of steps the
// average equals the mean of the stored per-sample gradients.
func TestSAGAAverageInvariant(t *testing.T) {
	m := separable(t, 20, 3, false)
	saga, err := solver.NewSAGA[float64](m, prox.NewL2Sq(0.01), solver.WithSeed(5))
	require.NoError(t, err)
	s, err := saga.NewState()
	require.NoError(t, err)
	require.NoError(t, saga.Solve(s))
	require.NoError(t, saga.Solve(s))

	want := make([]float64, 4)
	for i := 0; i < m.NSamples(); i++ {
		m.Features().RowAxpy(i, s.GradientsMemory[i], want[:3])
		want[3] += s.GradientsMemory[i]
	}
	floats.Scale(1/float64(m.NSamples()), want)
	require.InDeltaSlice(t, want, s.GradientsAverage, 1e-12)
	require.Equal(t, 2, s.Epoch)
}

// TestSAGAFirstStep checks the first update from a zero state is a plain
// stochastic gradient step.
func TestSAGAFirstStep(t *testing.T) {
	m := smallModel(t)
	saga, err := solver.NewSAGA[float64](m, nil, solver.WithStep(0.1))
	require.NoError(t, err)
	s, err := saga.NewState()
	require.NoError(t, err)

	gi := make([]float64, 2)
	m.GradI(1, s.Iterate, gi)
	require.NoError(t, saga.Step(s, 1))
	require.InDeltaSlice(t, []float64{-0.1 * gi[0], -0.1 * gi[1]}, s.Iterate, 1e-12)
	require.InDelta(t, 0.5, s.GradientsMemory[1], 1e-12) // -y*sigma(0) with y = -1
}

// TestSAGADecreasesObjective runs SAGA on dense and sparse storage.
func TestSAGADecreasesObjective(t *testing.T) {
	for _, sparse := range []bool{false, true} {
		m := separable(t, 60, 4, sparse)
		saga, err := solver.NewSAGA[float64](m, prox.NewL2Sq(1e-3), solver.WithIndexGenerator(cyclic(60)))
		require.NoError(t, err)
		s, err := saga.NewState()
		require.NoError(t, err)

		start := saga.Objective(s.Iterate)
		require.InDelta(t, math.Ln2, start, 1e-12)
		for e := 0; e < 10; e++ {
			require.NoError(t, saga.Solve(s))
		}
		require.Less(t, saga.Objective(s.Iterate), start)
	}
}

// TestSAGADenseSparseAgree checks storage kind does not change the trajectory.
func TestSAGADenseSparseAgree(t *testing.T) {
	run := func(sparse bool) []float64 {
		m := separable(t, 30, 3, sparse)
		saga, err := solver.NewSAGA[float64](m, nil, solver.WithIndexGenerator(cyclic(30)))
		require.NoError(t, err)
		s, err := saga.NewState()
		require.NoError(t, err)
		for e := 0; e < 3; e++ {
			require.NoError(t, saga.Solve(s))
		}

		return s.Iterate
	}
	require.InDeltaSlice(t, run(false), run(true), 1e-10)
}

// TestSAGAErrors covers the guard rails.
func TestSAGAErrors(t *testing.T) {
	m := smallModel(t)

	_, err := solver.NewSAGA[float64](nil, nil)
	require.ErrorIs(t, err, solver.ErrNilModel)

	saga, err := solver.NewSAGA[float64](m, nil)
	require.NoError(t, err)
	require.ErrorIs(t, saga.Solve(nil), solver.ErrNilState)
	require.ErrorIs(t, saga.Step(&solver.SAGAState[float64]{}, 0), solver.ErrDimensionMismatch)

	s, err := saga.NewState()
	require.NoError(t, err)
	require.ErrorIs(t, saga.Step(s, 3), array.ErrOutOfRange)
}
