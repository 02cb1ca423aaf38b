// SPDX-License-Identifier: MIT

// Package logreg is the logistic-regression model DAO and kernel.
//
// For labels y_i in {-1, +1} and z_i = <x_i, w> (+ b):
//
//	loss(w)      = (1/n) * sum_i log(1 + exp(-y_i z_i))
//	factor_i(w)  = -y_i * sigma(-y_i z_i)
//	grad_i(w)    = factor_i(w) * [x_i, 1]
//	L_i          = (||x_i||² + intercept) / 4
//
// Features may be dense or sparse; only the array.Matrix row capability is used.
package logreg

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/statick/array"
	"github.com/katalvlaran/statick/model"
)

var (
	// ErrNilFeatures is returned when no feature matrix is supplied.
	ErrNilFeatures = errors.New("logreg: nil features or labels")

	// ErrSampleCount signals that labels and feature rows disagree in count.
	ErrSampleCount = errors.New("logreg: features and labels differ in length")

	// ErrEmpty signals a dataset without samples.
	ErrEmpty = errors.New("logreg: no samples")

	// ErrBadLabel signals a label outside {-1, +1}.
	ErrBadLabel = errors.New("logreg: labels must be -1 or +1")
)

// Model is an immutable logistic-regression DAO.
type Model[T array.Float] struct {
	features  array.Matrix[T]
	labels    []T
	intercept bool
	workers   int
	lip       *model.Lipschitz[T]
}

var (
	_ model.GLM[float64] = (*Model[float64])(nil)
	_ model.GLM[float32] = (*Model[float32])(nil)
)

// New validates the dataset and precomputes Lipschitz constants.
func New[T array.Float](features array.Matrix[T], labels *array.Vector[T], opts ...Option) (*Model[T], error) {
	if features == nil || labels == nil {
		return nil, ErrNilFeatures
	}
	o := gatherOptions(opts...)
	n := features.Rows()
	if n == 0 {
		return nil, ErrEmpty
	}
	if labels.Len() != n {
		return nil, fmt.Errorf("logreg.New: %d rows, %d labels: %w", n, labels.Len(), ErrSampleCount)
	}
	for i, y := range labels.Data() {
		if y != 1 && y != -1 {
			return nil, fmt.Errorf("logreg.New: label %d = %v: %w", i, y, ErrBadLabel)
		}
	}

	m := &Model[T]{
		features:  features,
		labels:    labels.Data(),
		intercept: o.intercept,
		workers:   o.workers,
	}
	consts := make([]T, n)
	var b T
	if m.intercept {
		b = 1
	}
	for i := range consts {
		consts[i] = (features.RowNormSq(i) + b) / 4
	}
	m.lip = model.NewLipschitz(consts)

	return m, nil
}

// NSamples returns the number of samples.
func (m *Model[T]) NSamples() int { return m.features.Rows() }

// NFeatures returns the number of feature columns.
func (m *Model[T]) NFeatures() int { return m.features.Cols() }

// Intercept reports whether the iterate carries an intercept slot.
func (m *Model[T]) Intercept() bool { return m.intercept }

// Features returns the design matrix.
func (m *Model[T]) Features() array.Matrix[T] { return m.features }

// Lipschitz returns the per-sample smoothness constants.
func (m *Model[T]) Lipschitz() *model.Lipschitz[T] { return m.lip }

// z returns <x_i, w> plus the intercept when enabled.
func (m *Model[T]) z(i int, w []T) T {
	z := m.features.RowDot(i, w)
	if m.intercept {
		z += w[m.NFeatures()]
	}

	return z
}

// GradIFactor returns -y_i * sigma(-y_i z_i).
func (m *Model[T]) GradIFactor(i int, w []T) T {
	y := float64(m.labels[i])

	return T(-y * sigmoid(-y*float64(m.z(i, w))))
}

// GradI writes factor_i * [x_i, 1] into out (len(out) == IterateSize).
func (m *Model[T]) GradI(i int, w, out []T) {
	array.Fill(out, 0)
	m.addGradI(i, m.GradIFactor(i, w), out)
}

func (m *Model[T]) addGradI(i int, f T, out []T) {
	m.features.RowAxpy(i, f, out)
	if m.intercept {
		out[m.NFeatures()] += f
	}
}

// Grad writes the mean of all per-sample gradients into out, fanning the
// sample loop out over the configured workers.
func (m *Model[T]) Grad(w, out []T) {
	n := m.NSamples()
	sum := model.ReduceSamples(n, len(out), m.workers, func(lo, hi int, partial []T) {
		for i := lo; i < hi; i++ {
			m.addGradI(i, m.GradIFactor(i, w), partial)
		}
	})
	array.Scale(1/T(n), sum)
	copy(out, sum)
}

// Loss returns the mean logistic loss, computed without overflow.
func (m *Model[T]) Loss(w []T) T {
	n := m.NSamples()
	sum := model.ReduceSamples(n, 1, m.workers, func(lo, hi int, partial []T) {
		for i := lo; i < hi; i++ {
			yz := float64(m.labels[i]) * float64(m.z(i, w))
			partial[0] += T(logOnePlusExp(-yz))
		}
	})

	return sum[0] / T(n)
}

// sigmoid is 1/(1+exp(-x)) evaluated on the stable branch.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}

// logOnePlusExp is log(1+exp(x)) without overflow for large x.
func logOnePlusExp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}

	return math.Log1p(math.Exp(x))
}
