// SPDX-License-Identifier: MIT

package logreg

// DefaultWorkers keeps full-gradient evaluation single-threaded.
const DefaultWorkers = 1

const panicWorkersInvalid = "logreg: WithWorkers: n must be >= 1"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective model configuration.
type Options struct {
	intercept bool
	workers   int
}

// WithIntercept appends an intercept slot to the iterate.
func WithIntercept() Option {
	return func(o *Options) { o.intercept = true }
}

// WithWorkers sets the fan-out of full-gradient and loss evaluation.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
