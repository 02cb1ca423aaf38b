// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilState indicates a nil solver state.
	ErrNilState = errors.New("solver: state is nil")

	// ErrNilModel indicates a nil model was handed to a constructor.
	ErrNilModel = errors.New("solver: model is nil")

	// ErrNoSamples indicates a model without samples; no epoch can run.
	ErrNoSamples = errors.New("solver: model has no samples")

	// ErrDimensionMismatch indicates a state whose iterate does not match the model.
	ErrDimensionMismatch = errors.New("solver: iterate dimension mismatch")

	// ErrNotPrepared indicates Step or Finish outside of a prepared epoch.
	ErrNotPrepared = errors.New("solver: epoch not prepared")

	// ErrIncompleteEpoch indicates Finish before the steps the reduction
	// strategy needs have run.
	ErrIncompleteEpoch = errors.New("solver: epoch incomplete")

	// ErrMidEpoch indicates an attempt to checkpoint a state inside an epoch.
	ErrMidEpoch = errors.New("solver: state is mid-epoch")

	// ErrBadCheckpoint indicates a malformed checkpoint.
	ErrBadCheckpoint = errors.New("solver: malformed checkpoint")

	// ErrNoStep indicates that no step was given and none could be derived
	// from the model's Lipschitz constants.
	ErrNoStep = errors.New("solver: no step size available")
)

// VarianceReduction selects how the next snapshot iterate is formed.
type VarianceReduction int

const (
	// Last uses the final iterate of the epoch.
	Last VarianceReduction = iota + 1

	// Average uses the mean iterate across the epoch.
	Average

	// Random uses the iterate reached at one drawn step of the epoch.
	Random
)

// String implements fmt.Stringer.
func (v VarianceReduction) String() string {
	switch v {
	case Last:
		return "last"
	case Average:
		return "average"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("VarianceReduction(%d)", int(v))
	}
}

// StepType selects the step-size strategy.
type StepType int

const (
	// Fixed keeps the caller's step.
	Fixed StepType = iota + 1

	// BarzilaiBorwein recomputes the step from consecutive snapshots.
	BarzilaiBorwein
)

// String implements fmt.Stringer.
func (t StepType) String() string {
	switch t {
	case Fixed:
		return "fixed"
	case BarzilaiBorwein:
		return "barzilai-borwein"
	default:
		return fmt.Sprintf("StepType(%d)", int(t))
	}
}
