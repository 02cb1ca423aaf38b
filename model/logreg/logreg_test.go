// SPDX-License-Identifier: MIT

package logreg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/statick/array"
	"github.com/katalvlaran/statick/model"
	"github.com/katalvlaran/statick/model/logreg"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// fixture returns a small dense dataset with ±1 labels.
func fixture(t *testing.T) (*array.Dense[float64], *array.Vector[float64]) {
	t.Helper()
	x, err := array.NewDenseFrom(4, 3, []float64{
		1, 0, 2,
		0, -1, 1,
		3, 1, 0,
		-2, 0.5, 1,
	})
	require.NoError(t, err)

	return x, array.NewVectorFrom([]float64{1, -1, 1, -1})
}

// referenceGrad computes X^T * f / n with gonum/mat, f_i = -y_i / (1 + exp(y_i z_i)).
func referenceGrad(x *array.Dense[float64], y, w []float64, intercept bool) []float64 {
	n, d := x.Rows(), x.Cols()
	X := mat.NewDense(n, d, append([]float64(nil), x.Data()...))
	z := mat.NewVecDense(n, nil)
	z.MulVec(X, mat.NewVecDense(d, append([]float64(nil), w[:d]...)))

	f := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		zi := z.AtVec(i)
		if intercept {
			zi += w[d]
		}
		f.SetVec(i, -y[i]/(1+math.Exp(y[i]*zi)))
	}
	g := mat.NewVecDense(d, nil)
	g.MulVec(X.T(), f)
	g.ScaleVec(1/float64(n), g)

	out := append([]float64(nil), g.RawVector().Data...)
	if intercept {
		out = append(out, floats.Sum(f.RawVector().Data)/float64(n))
	}

	return out
}

// TestNewValidation covers the construction guards.
func TestNewValidation(t *testing.T) {
	x, y := fixture(t)

	_, err := logreg.New[float64](nil, y)
	require.ErrorIs(t, err, logreg.ErrNilFeatures)

	_, err = logreg.New[float64](x, array.NewVectorFrom([]float64{1, -1}))
	require.ErrorIs(t, err, logreg.ErrSampleCount)

	_, err = logreg.New[float64](x, array.NewVectorFrom([]float64{1, 0, 1, -1}))
	require.ErrorIs(t, err, logreg.ErrBadLabel)

	empty, err := array.NewDense[float64](0, 3)
	require.NoError(t, err)
	_, err = logreg.New[float64](empty, array.NewVectorFrom([]float64{}))
	require.ErrorIs(t, err, logreg.ErrEmpty)

	require.Panics(t, func() { logreg.WithWorkers(0) })
}

// TestGradMatchesReference compares Grad with a gonum/mat computation.
func TestGradMatchesReference(t *testing.T) {
	x, y := fixture(t)
	for _, intercept := range []bool{false, true} {
		var opts []logreg.Option
		if intercept {
			opts = append(opts, logreg.WithIntercept())
		}
		m, err := logreg.New[float64](x, y, opts...)
		require.NoError(t, err)

		w := []float64{0.3, -0.2, 0.1, 0.05}[:model.IterateSize[float64](m)]
		got := make([]float64, len(w))
		m.Grad(w, got)
		require.InDeltaSlice(t, referenceGrad(x, y.Data(), w, intercept), got, 1e-12)
	}
}

// TestGradIMeanEqualsGrad checks the full gradient is the mean of GradI.
func TestGradIMeanEqualsGrad(t *testing.T) {
	x, y := fixture(t)
	m, err := logreg.New[float64](x, y, logreg.WithIntercept())
	require.NoError(t, err)

	w := []float64{0.5, 0.5, -0.5, 0.2}
	mean := make([]float64, 4)
	gi := make([]float64, 4)
	for i := 0; i < m.NSamples(); i++ {
		m.GradI(i, w, gi)
		floats.Add(mean, gi)
	}
	floats.Scale(1/float64(m.NSamples()), mean)

	full := make([]float64, 4)
	m.Grad(w, full)
	require.InDeltaSlice(t, mean, full, 1e-12)
}

// TestSparseAndParallelAgree checks storage kind and worker count do not change results.
func TestSparseAndParallelAgree(t *testing.T) {
	x, y := fixture(t)
	dense, err := logreg.New[float64](x, y)
	require.NoError(t, err)
	sparse, err := logreg.New[float64](array.SparseFromDense(x), y, logreg.WithWorkers(3))
	require.NoError(t, err)

	w := []float64{0.1, 0.2, 0.3}
	gd, gs := make([]float64, 3), make([]float64, 3)
	dense.Grad(w, gd)
	sparse.Grad(w, gs)
	require.InDeltaSlice(t, gd, gs, 1e-12)
	require.InDelta(t, dense.Loss(w), sparse.Loss(w), 1e-12)
}

// TestLossAndLipschitz checks loss at the origin and the Lipschitz constants.
func TestLossAndLipschitz(t *testing.T) {
	x, y := fixture(t)
	m, err := logreg.New[float64](x, y, logreg.WithIntercept())
	require.NoError(t, err)

	require.InDelta(t, math.Ln2, m.Loss(make([]float64, 4)), 1e-12)

	lip := m.Lipschitz()
	require.True(t, lip.Ready())
	require.InDelta(t, (5.0+1)/4, lip.Const(0), 1e-12)
	require.InDelta(t, (10.0+1)/4, lip.Max(), 1e-12)
}

// TestLossLargeMargin ensures no overflow for extreme margins.
func TestLossLargeMargin(t *testing.T) {
	x, y := fixture(t)
	m, err := logreg.New[float64](x, y)
	require.NoError(t, err)

	w := []float64{1e4, -1e4, 1e4}
	l := m.Loss(w)
	require.False(t, math.IsInf(l, 0) || math.IsNaN(l))
	require.Greater(t, l, 0.0)
}
