// SPDX-License-Identifier: MIT

// Package sccs is the data access object of the self-controlled case series
// survival model.
//
// A DAO bundles, per sample, an n_intervals × n_lagged_features matrix and an
// n_intervals label vector, plus the lag table, its column offsets, a
// censoring vector and a Lipschitz sub-DAO. Load derives five dimensions
// once:
//
//	n_intervals       rows of every feature matrix
//	n_samples         number of feature matrices
//	n_observations    n_intervals * n_samples
//	n_lagged_features sum(n_lags) + len(n_lags)
//	n_features        len(n_lags)
//
// After Load the DAO is read-only and may be shared by concurrent solver runs.
//
// Archive layout (order is part of the format):
//
//	Lipschitz record | bool sparse_features |
//	uint64 n_samples, n_features, n_observations, n_lagged_features, n_intervals |
//	n_lags vector | col_offset vector |
//	n_samples label vectors | n_samples feature records | censoring vector
package sccs
