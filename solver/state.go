// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/statick/array"
	"github.com/katalvlaran/statick/model"
)

// State is the SVRG solver DAO.
//
// All slices have IterateSize(m) elements once the first epoch is prepared.
// GradI and GradIFixedW are scratch buffers for the per-sample gradients.
type State[T array.Float] struct {
	Iterate      []T
	FixedW       []T
	FullGradient []T
	GradI        []T
	GradIFixedW  []T
	NextIterate  []T
	Step         T
	RandIndex    int

	// Epoch counts prepared epochs, starting at 1 with the first Prepare.
	Epoch int

	inEpoch bool
	steps   int
}

// NewState returns a state with a zero iterate sized for m and the given step.
func NewState[T array.Float](m model.Model[T], step T) *State[T] {
	return &State[T]{
		Iterate: make([]T, model.IterateSize(m)),
		Step:    step,
	}
}

// InEpoch reports whether an epoch has been prepared but not finished.
func (s *State[T]) InEpoch() bool { return s.inEpoch }

// SAGAState is the SAGA solver DAO.
type SAGAState[T array.Float] struct {
	Iterate []T

	// GradientsMemory holds the last gradient factor seen for each sample.
	GradientsMemory []T

	// GradientsAverage is the mean of the stored per-sample gradients.
	GradientsAverage []T

	Step  T
	Epoch int
}
