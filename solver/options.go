// SPDX-License-Identifier: MIT

package solver

import (
	"io"
	"log/slog"
	"math"
)

const (
	// DefaultVarianceReduction keeps the last iterate of each epoch.
	DefaultVarianceReduction = Last

	// DefaultStepType keeps the caller's step.
	DefaultStepType = Fixed

	// DefaultSeed draws index streams from system entropy.
	DefaultSeed int64 = -1

	// DefaultBBTolerance is the smallest |<dw, dg>| a Barzilai-Borwein update accepts.
	DefaultBBTolerance = 1e-12
)

const (
	panicBadVarianceReduction = "solver: WithVarianceReduction: unknown method"
	panicBadStepType          = "solver: WithStepType: unknown step type"
	panicBadStep              = "solver: WithStep: step must be finite and positive"
	panicBadTolerance         = "solver: WithBBTolerance: tolerance must be finite and non-negative"
	panicNilGenerator         = "solver: index generator must not be nil"
	panicNilLogger            = "solver: WithLogger: logger must not be nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective solver configuration.
type Options struct {
	vr        VarianceReduction
	stepType  StepType
	step      float64 // 0 means "derive" (SAGA only)
	seed      int64
	bbTol     float64
	nextIndex func() int
	randIndex func() int
	logger    *slog.Logger
}

// WithVarianceReduction selects the snapshot rule. Panics on unknown values.
func WithVarianceReduction(v VarianceReduction) Option {
	if v < Last || v > Random {
		panic(panicBadVarianceReduction)
	}

	return func(o *Options) { o.vr = v }
}

// WithStepType selects the step strategy. Panics on unknown values.
func WithStepType(t StepType) Option {
	if t < Fixed || t > BarzilaiBorwein {
		panic(panicBadStepType)
	}

	return func(o *Options) { o.stepType = t }
}

// WithStep sets the SAGA step, overriding 1/(3*L_max).
// Panics unless step is finite and positive.
func WithStep(step float64) Option {
	if !(step > 0) || math.IsInf(step, 0) {
		panic(panicBadStep)
	}

	return func(o *Options) { o.step = step }
}

// WithSeed seeds the default index generators. A negative seed uses entropy.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithBBTolerance sets the Barzilai-Borwein denominator guard.
func WithBBTolerance(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic(panicBadTolerance)
	}

	return func(o *Options) { o.bbTol = tol }
}

// WithIndexGenerator supplies the sample index of every step.
// fn must return values in [0, n_samples).
func WithIndexGenerator(fn func() int) Option {
	if fn == nil {
		panic(panicNilGenerator)
	}

	return func(o *Options) { o.nextIndex = fn }
}

// WithRandIndexGenerator supplies the per-epoch draw of Random reduction.
// fn must return values in [0, n_samples).
func WithRandIndexGenerator(fn func() int) Option {
	if fn == nil {
		panic(panicNilGenerator)
	}

	return func(o *Options) { o.randIndex = fn }
}

// WithLogger routes epoch diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts and fills index generators for n samples.
func gatherOptions(n int, opts ...Option) Options {
	o := Options{
		vr:       DefaultVarianceReduction,
		stepType: DefaultStepType,
		seed:     DefaultSeed,
		bbTol:    DefaultBBTolerance,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.nextIndex == nil {
		o.nextIndex = UniformIndex(n, o.seed)
	}
	if o.randIndex == nil {
		o.randIndex = o.nextIndex
	}

	return o
}
