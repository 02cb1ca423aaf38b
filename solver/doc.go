// SPDX-License-Identifier: MIT

// Package solver provides variance-reduced stochastic solvers (SVRG and SAGA)
// over the models of package model.
//
// Overview:
//
//   - SVRG alternates a PREPARE phase (refresh the snapshot weights and the
//     full-batch gradient at them) with n_samples cheap per-sample STEPs that
//     correct each stochastic gradient with the snapshot gradient.
//   - SAGA keeps one scalar gradient factor per sample for a GLM and updates a
//     running gradient average instead of taking full-batch snapshots.
//   - The proximal operator of the penalty is applied after every step, on the
//     non-intercept coordinates only.
//
// Strategies (chosen once per solver, never switched in the per-sample loop):
//
//   - VarianceReduction: Last keeps the final iterate of the epoch, Average
//     installs the mean iterate across the epoch, Random installs the iterate
//     seen at one drawn step.
//   - StepType: Fixed keeps the step supplied by the caller, BarzilaiBorwein
//     recomputes it from consecutive snapshots starting with the second epoch.
//
// State and ownership:
//
//   - State is the solver DAO. It is exclusively owned by one solve loop; the
//     model is read-only and may be shared by many States.
//   - An epoch is Prepare, n_samples calls to Step, then Finish. Solve runs all
//     three. A State may be checkpointed (MarshalState) only between epochs.
//
// Numerical guard:
//
//   - When |<dw, dg>| is at or below the tolerance, or the Barzilai-Borwein
//     step is not finite and positive, the previous step is kept and a warning
//     is logged.
//
// Errors (sentinel):
//
//   - ErrNilState, ErrNilModel, ErrNoSamples, ErrDimensionMismatch,
//     ErrNotPrepared, ErrMidEpoch, ErrBadCheckpoint, ErrNoStep.
//
// Example usage:
//
//	svrg, err := solver.NewSVRG[float64](m, prox.NewL2Sq(1e-3),
//	    solver.WithStepType(solver.BarzilaiBorwein),
//	    solver.WithVarianceReduction(solver.Average),
//	    solver.WithSeed(42),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s := solver.NewState[float64](m, 0.1)
//	for epoch := 0; epoch < 20; epoch++ {
//	    if err := svrg.Solve(s); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package solver
