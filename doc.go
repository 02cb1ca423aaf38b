// Package statick is an in-memory toolkit for fitting statistical models with
// variance-reduced stochastic solvers, from portable array storage up to
// SVRG and SAGA.
//
// 🚀 What is statick?
//
//	A generic, pure-Go library that brings together:
//		• Arrays: dense, view and CSR sparse storage behind one Matrix interface
//		• Archives: a portable binary format for arrays, collections and DAOs
//		• Collections: many per-sample matrices in one flat buffer with an index table
//		• Models: logistic regression and the SCCS data access object
//		• Proximal operators: ridge (L2Sq) and identity
//		• Solvers: SVRG (Last/Average/Random, Fixed/Barzilai-Borwein) and SAGA
//
// ✨ Why choose statick?
//
//   - One code path for float32 and float64 through Go generics
//   - Storage-agnostic models and solvers: dense and sparse rows share kernels
//   - Full-gradient passes fan out over workers; per-sample steps stay sequential
//   - Solver states checkpoint between epochs and resume exactly
//
// Packages:
//
//	array/        - Dense, View, Sparse, Vector, List, SharedList and the binary archive
//	model/        - Model/GLM capabilities, Lipschitz sub-DAO, parallel reductions
//	model/logreg/ - logistic regression over any array.Matrix
//	prox/         - proximal operators applied after each stochastic step
//	sccs/         - self-controlled case series DAO with lagged features
//	solver/       - SVRG, SAGA, index generators and protowire checkpoints
//
// Quick ride:
//
//	x, _ := array.Random[float64](1000, 20, 42)
//	m, _ := logreg.New[float64](x, labels, logreg.WithIntercept())
//	svrg, _ := solver.NewSVRG[float64](m, prox.NewL2Sq(1e-3))
//	s := solver.NewState[float64](m, 0.1)
//	for e := 0; e < 10; e++ {
//		_ = svrg.Solve(s)
//	}
//
// See examples/ for complete programs.
package statick
