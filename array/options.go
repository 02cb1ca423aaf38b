// SPDX-License-Identifier: MIT

// Package array: functional configuration for collection loading.

package array

import (
	"io"
	"log/slog"
)

const panicNilLogger = "array: WithLogger: logger must not be nil"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger *slog.Logger
}

// WithLogger routes collection-loading diagnostics to l.
// Panics on nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
