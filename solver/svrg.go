// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/statick/array"
	"github.com/katalvlaran/statick/model"
	"github.com/katalvlaran/statick/prox"
)

// SVRG is a stochastic variance-reduced gradient solver bound to one model,
// one proximal operator and one pair of strategies.
// It holds no per-run state; one SVRG may drive several States in turn.
type SVRG[T array.Float] struct {
	m         model.Model[T]
	prox      prox.Prox[T]
	reduce    reducer[T]
	step      stepper[T]
	nextIndex func() int
	logger    *slog.Logger
}

// NewSVRG binds a solver to m and p. A nil p means no penalty.
func NewSVRG[T array.Float](m model.Model[T], p prox.Prox[T], opts ...Option) (*SVRG[T], error) {
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

	return &SVRG[T]{
		m:         m,
		prox:      p,
		reduce:    newReducer[T](o.vr, o.randIndex),
		step:      newStepper[T](o.stepType, o.bbTol, o.logger),
		nextIndex: o.nextIndex,
		logger:    o.logger,
	}, nil
}

// Prepare opens a new epoch.
//
// Implementation:
//   - Stage 0: draw RandIndex (Random) and reject it outside [0, n_samples)
//     with array.ErrOutOfRange before the state is touched.
//   - Stage 1: bump Epoch; with Barzilai-Borwein keep the previous FixedW
//     and FullGradient for differencing.
//   - Stage 2: copy Iterate into fresh NextIterate and FixedW buffers.
//   - Stage 3: FullGradient = Grad(FixedW), the one full pass of the epoch.
//   - Stage 4: let the step strategy update Step (Barzilai-Borwein from epoch 2).
//   - Stage 5: allocate zeroed GradI and GradIFixedW.
//   - Stage 6: let the reduction strategy zero NextIterate (Average, Random)
//     and install RandIndex (zero unless Random).
func (v *SVRG[T]) Prepare(s *State[T]) error {
	if s == nil {
		return ErrNilState
	}
	dim := model.IterateSize(v.m)
	if len(s.Iterate) != dim {
		return fmt.Errorf("solver.Prepare: iterate has %d elements, model needs %d: %w",
			len(s.Iterate), dim, ErrDimensionMismatch)
	}

	idx, err := v.reduce.pick(v.m.NSamples())
	if err != nil {
		return err
	}

	s.Epoch++
	var prevW, prevG []T
	if v.step.needsHistory() && s.Epoch > 1 {
		prevW, prevG = s.FixedW, s.FullGradient
	}

	s.NextIterate = append(make([]T, 0, dim), s.Iterate...)
	s.FixedW = append(make([]T, 0, dim), s.Iterate...)

	s.FullGradient = make([]T, dim)
	v.m.Grad(s.FixedW, s.FullGradient)

	v.step.update(s, prevW, prevG, v.m.NSamples())

	s.GradI = make([]T, dim)
	s.GradIFixedW = make([]T, dim)

	v.reduce.begin(s, idx)
	s.inEpoch = true
	s.steps = 0

	return nil
}

// Step performs one variance-reduced update with sample i:
// w -= step * (grad_i(w) - grad_i(fixed_w) + full_gradient), then prox.
func (v *SVRG[T]) Step(s *State[T], i int) error {
	if s == nil {
		return ErrNilState
	}
	if !s.inEpoch {
		return ErrNotPrepared
	}
	n := v.m.NSamples()
	if i < 0 || i >= n {
		return fmt.Errorf("solver.Step(%d): %w", i, array.ErrOutOfRange)
	}

	v.m.GradI(i, s.Iterate, s.GradI)
	v.m.GradI(i, s.FixedW, s.GradIFixedW)
	w := s.Iterate
	for k := range w {
		w[k] -= s.Step * (s.GradI[k] - s.GradIFixedW[k] + s.FullGradient[k])
	}
	d := v.m.NFeatures()
	v.prox.Call(w[:d], s.Step, w[:d])

	v.reduce.observe(s, s.steps, n)
	s.steps++

	return nil
}

// Finish closes the epoch and installs the reduced iterate.
// Average needs all n_samples steps and Random needs step RandIndex; before
// that Finish returns ErrIncompleteEpoch, keeps Iterate and stays in the epoch.
func (v *SVRG[T]) Finish(s *State[T]) error {
	if s == nil {
		return ErrNilState
	}
	if !s.inEpoch {
		return ErrNotPrepared
	}
	if err := v.reduce.finish(s, v.m.NSamples()); err != nil {
		return err
	}
	s.inEpoch = false
	s.steps = 0

	return nil
}

// Solve runs one epoch: Prepare, n_samples steps drawn from the index
// generator, Finish.
func (v *SVRG[T]) Solve(s *State[T]) error {
	if err := v.Prepare(s); err != nil {
		return err
	}
	n := v.m.NSamples()
	for j := 0; j < n; j++ {
		if err := v.Step(s, v.nextIndex()); err != nil {
			return err
		}
	}
	if err := v.Finish(s); err != nil {
		return err
	}
	v.logger.Debug("solver: SVRG epoch done",
		slog.Int("epoch", s.Epoch), slog.Float64("step", float64(s.Step)))

	return nil
}

// Objective returns the model loss plus the penalty on the non-intercept
// coordinates of w.
func (v *SVRG[T]) Objective(w []T) T {
	return v.m.Loss(w) + v.prox.Value(w[:v.m.NFeatures()])
}
