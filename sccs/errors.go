// SPDX-License-Identifier: MIT
// Package sccs: sentinel error set.
// Validation errors are returned by Load; format errors by Decode.

package sccs

import "errors"

var (
	// ErrEmpty is returned when features or labels are empty (or hold nil entries).
	ErrEmpty = errors.New("sccs: features or labels is empty")

	// ErrLagOutOfRange signals n_lags[i] >= n_intervals.
	ErrLagOutOfRange = errors.New("sccs: n_lags elements must be between 0 and n_intervals-1")

	// ErrSampleCount signals features, labels and censoring of unequal length.
	ErrSampleCount = errors.New("sccs: features, labels and censoring should have equal length")

	// ErrIntervalShape signals a feature matrix whose row count is not n_intervals.
	ErrIntervalShape = errors.New("sccs: feature matrix rows differ from n_intervals")

	// ErrLaggedShape signals a feature matrix whose column count is not n_lagged_features.
	ErrLaggedShape = errors.New("sccs: feature matrix cols differ from n_lagged_features")

	// ErrLabelShape signals a label vector whose length is not n_intervals.
	ErrLabelShape = errors.New("sccs: label length differs from n_intervals")

	// ErrFeatureKind signals dense features where sparse were expected, or the reverse.
	ErrFeatureKind = errors.New("sccs: feature storage kind mismatch")

	// ErrCorruptHeader signals persisted dimensions or offsets that disagree with the data.
	ErrCorruptHeader = errors.New("sccs: persisted dimensions disagree with data")
)
