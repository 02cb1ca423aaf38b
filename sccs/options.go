// SPDX-License-Identifier: MIT

package sccs

// DefaultCensoring is the censoring flag given to every sample when none is supplied.
const DefaultCensoring uint64 = 1

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective construction inputs.
type Options struct {
	nLags     []uint64
	censoring []uint64
}

// WithLags sets the per-feature lag windows. The slice is copied.
// Without it every lag is zero and n_features equals the feature matrices' width.
func WithLags(lags []uint64) Option {
	cp := append([]uint64(nil), lags...)

	return func(o *Options) { o.nLags = cp }
}

// WithCensoring sets the per-sample censoring flags. The slice is copied.
func WithCensoring(c []uint64) Option {
	cp := append([]uint64(nil), c...)

	return func(o *Options) { o.censoring = cp }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
