// SPDX-License-Identifier: MIT

package model

import "github.com/katalvlaran/statick/array"

// Model is a loss/gradient kernel over an immutable dataset.
//
// Weight vectors have IterateSize(m) elements: NFeatures() coefficients,
// followed by one intercept slot when Intercept() is true.
type Model[T array.Float] interface {
	// NSamples returns the number of samples.
	NSamples() int

	// NFeatures returns the number of coefficients, excluding the intercept.
	NFeatures() int

	// Intercept reports whether weight vectors carry a trailing intercept slot.
	Intercept() bool

	// Grad writes the full-batch gradient at w into out.
	Grad(w, out []T)

	// GradI writes the gradient of sample i's loss at w into out.
	GradI(i int, w, out []T)

	// Loss returns the mean loss at w.
	Loss(w []T) T
}

// GLM is a generalized linear model: each per-sample gradient is a scalar
// factor times the sample's feature row (plus the factor in the intercept slot).
type GLM[T array.Float] interface {
	Model[T]

	// Features returns the design matrix, one row per sample.
	Features() array.Matrix[T]

	// GradIFactor returns the scalar derivative of sample i's loss w.r.t. <x_i, w>.
	GradIFactor(i int, w []T) T

	// Lipschitz returns the per-sample smoothness constants.
	Lipschitz() *Lipschitz[T]
}

// IterateSize returns NFeatures plus one when the model has an intercept.
func IterateSize[T array.Float](m Model[T]) int {
	if m.Intercept() {
		return m.NFeatures() + 1
	}

	return m.NFeatures()
}
