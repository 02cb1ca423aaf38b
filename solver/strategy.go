// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/statick/array"
)

// reducer forms the next iterate of an epoch.
type reducer[T array.Float] interface {
	// pick returns the RandIndex of the coming epoch of n steps. It runs
	// before Prepare touches the state.
	pick(n int) (int, error)

	// begin resets NextIterate and installs idx as RandIndex during Prepare.
	begin(s *State[T], idx int)

	// observe runs after step j of an epoch of n steps.
	observe(s *State[T], j, n int)

	// finish installs the reduced iterate after s.steps of n steps, or
	// returns ErrIncompleteEpoch and leaves Iterate untouched.
	finish(s *State[T], n int) error
}

// stepper updates the step at the end of Prepare, given the previous
// snapshot (nil on the first epoch).
type stepper[T array.Float] interface {
	update(s *State[T], prevW, prevG []T, n int)
	needsHistory() bool
}

type lastReducer[T array.Float] struct{}

func (lastReducer[T]) pick(int) (int, error) { return 0, nil }
func (lastReducer[T]) begin(s *State[T], _ int) { s.RandIndex = 0 }
func (lastReducer[T]) observe(*State[T], int, int) {}
func (lastReducer[T]) finish(*State[T], int) error { return nil }

type averageReducer[T array.Float] struct{}

func (averageReducer[T]) pick(int) (int, error) { return 0, nil }

func (averageReducer[T]) begin(s *State[T], _ int) {
	array.Fill(s.NextIterate, 0)
	s.RandIndex = 0
}

func (averageReducer[T]) observe(s *State[T], _, n int) {
	array.Axpy(1/T(n), s.Iterate, s.NextIterate)
}

// finish requires all n steps; a partial sum is not the epoch average.
func (averageReducer[T]) finish(s *State[T], n int) error {
	if s.steps < n {
		return fmt.Errorf("solver.Finish: %d of %d steps: %w", s.steps, n, ErrIncompleteEpoch)
	}
	copy(s.Iterate, s.NextIterate)

	return nil
}

type randomReducer[T array.Float] struct {
	draw func() int
}

func (r randomReducer[T]) pick(n int) (int, error) {
	idx := r.draw()
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("solver.Prepare: rand index %d, n_samples %d: %w", idx, n, array.ErrOutOfRange)
	}

	return idx, nil
}

func (randomReducer[T]) begin(s *State[T], idx int) {
	array.Fill(s.NextIterate, 0)
	s.RandIndex = idx
}

func (randomReducer[T]) observe(s *State[T], j, _ int) {
	if j == s.RandIndex {
		copy(s.NextIterate, s.Iterate)
	}
}

// finish requires step RandIndex to have run.
func (randomReducer[T]) finish(s *State[T], _ int) error {
	if s.steps <= s.RandIndex {
		return fmt.Errorf("solver.Finish: %d steps, rand index %d: %w", s.steps, s.RandIndex, ErrIncompleteEpoch)
	}
	copy(s.Iterate, s.NextIterate)

	return nil
}

func newReducer[T array.Float](v VarianceReduction, draw func() int) reducer[T] {
	switch v {
	case Average:
		return averageReducer[T]{}
	case Random:
		return randomReducer[T]{draw: draw}
	default:
		return lastReducer[T]{}
	}
}

type fixedStep[T array.Float] struct{}

func (fixedStep[T]) update(*State[T], []T, []T, int) {}
func (fixedStep[T]) needsHistory() bool { return false }

// bbStep sets step = ||dw||² / <dw, dg> / n with dw, dg the snapshot and
// full-gradient displacements.
type bbStep[T array.Float] struct {
	tol    float64
	logger *slog.Logger
}

func (bbStep[T]) needsHistory() bool { return true }

func (b bbStep[T]) update(s *State[T], prevW, prevG []T, n int) {
	if s.Epoch <= 1 {
		return
	}
	if len(prevW) != len(s.FixedW) || len(prevG) != len(s.FullGradient) {
		b.logger.Warn("solver: no previous snapshot, keeping step",
			slog.Int("epoch", s.Epoch), slog.Float64("step", float64(s.Step)))
		return
	}
	dw := array.SubTo(make([]T, len(prevW)), s.FixedW, prevW)
	dg := array.SubTo(make([]T, len(prevG)), s.FullGradient, prevG)
	den := float64(array.Dot(dw, dg))
	if math.Abs(den) <= b.tol {
		b.logger.Warn("solver: Barzilai-Borwein denominator below tolerance, keeping step",
			slog.Int("epoch", s.Epoch), slog.Float64("denominator", den), slog.Float64("step", float64(s.Step)))
		return
	}
	step := float64(array.NormSq(dw)) / den / float64(n)
	if !(step > 0) || math.IsInf(step, 0) {
		b.logger.Warn("solver: Barzilai-Borwein step rejected, keeping step",
			slog.Int("epoch", s.Epoch), slog.Float64("candidate", step), slog.Float64("step", float64(s.Step)))
		return
	}
	s.Step = T(step)
	b.logger.Debug("solver: Barzilai-Borwein step", slog.Int("epoch", s.Epoch), slog.Float64("step", step))
}

func newStepper[T array.Float](t StepType, tol float64, logger *slog.Logger) stepper[T] {
	if t == BarzilaiBorwein {
		return bbStep[T]{tol: tol, logger: logger}
	}

	return fixedStep[T]{}
}
