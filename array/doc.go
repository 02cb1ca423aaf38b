// SPDX-License-Identifier: MIT

// Package array holds the numeric storage consumed by models and solvers.
//
// The package provides:
//
//   - Dense: an owning, row-major 2D buffer with a [cols, rows, size] shape record.
//   - View: a non-owning alias over somebody else's buffer with the same shape contract.
//   - Sparse: a CSR matrix implementing the same row capability as Dense.
//   - Vector: a 1D buffer for labels, lag tables and censoring flags.
//   - List: many variable-shaped dense matrices packed back to back in one buffer
//     with a side table of [cols, rows, size, offset] per entry.
//   - SharedList: position-indexed handles to matrices owned elsewhere.
//   - Encoder/Decoder: the portable binary archive every record is persisted in.
//
// All 2D types satisfy Matrix, which exposes only read operations. Arrays are
// immutable once built; only decoding writes into them.
//
// Archive layout of a dense record:
//
//	bool is_sparse (false) | uint64 cols | uint64 rows | uint64 size | size*sizeof(T) payload
//
// Complexity: row operations are O(cols) for dense rows and O(nnz(row)) for
// sparse rows. List.At and View construction are O(1).
package array
