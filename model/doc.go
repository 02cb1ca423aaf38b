// SPDX-License-Identifier: MIT

// Package model defines the collaborator boundary between model DAOs and the
// solvers: the gradient/loss kernel contract, the Lipschitz sub-DAO that feeds
// step-size defaults, and the data-parallel full-gradient reduction.
//
// Concrete kernels live in sub-packages (see model/logreg). A model is
// read-only while a solver runs, so one model may back several concurrent
// solver states.
package model
