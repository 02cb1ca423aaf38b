// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/statick/array"
	"github.com/katalvlaran/statick/model"
	"github.com/katalvlaran/statick/prox"
)

// SAGA is a stochastic average gradient solver for generalized linear models.
//
// Each per-sample gradient of a GLM is factor_i * x_i, so the gradient memory
// stores one scalar per sample and every update touches one feature row.
type SAGA[T array.Float] struct {
	m         model.GLM[T]
	prox      prox.Prox[T]
	step      float64
	nextIndex func() int
	logger    *slog.Logger
}

// NewSAGA binds a solver to m and p. A nil p means no penalty.
func NewSAGA[T array.Float](m model.GLM[T], p prox.Prox[T], opts ...Option) (*SAGA[T], error) {
	if m == nil {
		return nil, ErrNilModel
	}
	n := m.NSamples()
	if n < 1 {
		return nil, ErrNoSamples
	}
	if p == nil {
		p = prox.Zero[T]{}
	}
	o := gatherOptions(n, opts...)

	return &SAGA[T]{m: m, prox: p, step: o.step, nextIndex: o.nextIndex, logger: o.logger}, nil
}

// NewState returns a zero state. The step is the WithStep value, else
// 1/(3*L_max) from the model's Lipschitz constants.
func (v *SAGA[T]) NewState() (*SAGAState[T], error) {
	step := v.step
	if step == 0 {
		lip := v.m.Lipschitz()
		if lip == nil || !lip.Ready() || lip.Max() <= 0 {
			return nil, ErrNoStep
		}
		step = 1 / (3 * float64(lip.Max()))
	}
	dim := model.IterateSize[T](v.m)

	return &SAGAState[T]{
		Iterate:          make([]T, dim),
		GradientsMemory:  make([]T, v.m.NSamples()),
		GradientsAverage: make([]T, dim),
		Step:             T(step),
	}, nil
}

// Step performs one SAGA update with sample i.
//
// Implementation:
//   - Stage 1: delta = factor_i(w) - memory[i]; memory[i] = factor_i(w).
//   - Stage 2: w -= step * (delta * x_i + average), intercept slot included.
//   - Stage 3: average += delta/n * x_i.
//   - Stage 4: prox on the non-intercept coordinates.
func (v *SAGA[T]) Step(s *SAGAState[T], i int) error {
	if err := v.check(s); err != nil {
		return err
	}
	n := v.m.NSamples()
	if i < 0 || i >= n {
		return fmt.Errorf("solver.SAGA.Step(%d): %w", i, array.ErrOutOfRange)
	}
	x := v.m.Features()
	d := v.m.NFeatures()
	w, avg := s.Iterate, s.GradientsAverage

	factor := v.m.GradIFactor(i, w)
	delta := factor - s.GradientsMemory[i]
	s.GradientsMemory[i] = factor

	array.Axpy(-s.Step, avg, w)
	x.RowAxpy(i, -s.Step*delta, w[:d])
	x.RowAxpy(i, delta/T(n), avg[:d])
	if v.m.Intercept() {
		w[d] -= s.Step * delta
		avg[d] += delta / T(n)
	}
	v.prox.Call(w[:d], s.Step, w[:d])

	return nil
}

// Solve runs one epoch of n_samples updates.
func (v *SAGA[T]) Solve(s *SAGAState[T]) error {
	if err := v.check(s); err != nil {
		return err
	}
	s.Epoch++
	for j := 0; j < v.m.NSamples(); j++ {
		if err := v.Step(s, v.nextIndex()); err != nil {
			return err
		}
	}
	v.logger.Debug("solver: SAGA epoch done",
		slog.Int("epoch", s.Epoch), slog.Float64("step", float64(s.Step)))

	return nil
}

// Objective returns the model loss plus the penalty on the non-intercept
// coordinates of w.
func (v *SAGA[T]) Objective(w []T) T {
	return v.m.Loss(w) + v.prox.Value(w[:v.m.NFeatures()])
}

func (v *SAGA[T]) check(s *SAGAState[T]) error {
	if s == nil {
		return ErrNilState
	}
	dim := model.IterateSize[T](v.m)
	if len(s.Iterate) != dim || len(s.GradientsAverage) != dim || len(s.GradientsMemory) != v.m.NSamples() {
		return fmt.Errorf("solver.SAGA: state sized %d/%d/%d, model needs %d/%d/%d: %w",
			len(s.Iterate), len(s.GradientsAverage), len(s.GradientsMemory),
			dim, dim, v.m.NSamples(), ErrDimensionMismatch)
	}

	return nil
}
