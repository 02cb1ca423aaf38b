// SPDX-License-Identifier: MIT

// Package array - CSR sparse storage.
//
// Record layout:
//
//	bool is_sparse (true) | uint64 cols | uint64 rows |
//	uint64 nnz | nnz*sizeof(T) values |
//	uint64 nnz | nnz uint64 column indices |
//	uint64 rows+1 | rows+1 uint64 row pointers

package array

import "fmt"

const ctxDecodeSparse = "DecodeSparse"

// Sparse is an immutable CSR matrix. Row i holds values[rowPtr[i]:rowPtr[i+1]]
// at columns indices[rowPtr[i]:rowPtr[i+1]].
type Sparse[T Float] struct {
	rows, cols int
	values     []T
	indices    []int
	rowPtr     []int
}

// NewSparse validates a CSR triple and takes ownership of the slices.
//
// Checks: len(rowPtr) == rows+1, rowPtr[0] == 0, rowPtr non-decreasing,
// rowPtr[rows] == len(values) == len(indices), 0 <= indices[k] < cols.
func NewSparse[T Float](rows, cols int, values []T, indices, rowPtr []int) (*Sparse[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, arrayErrorf("NewSparse", err)
	}
	if len(rowPtr) != rows+1 || rowPtr[0] != 0 {
		return nil, fmt.Errorf("NewSparse: row pointers: %w", ErrBadSparse)
	}
	for i := 1; i <= rows; i++ {
		if rowPtr[i] < rowPtr[i-1] {
			return nil, fmt.Errorf("NewSparse: row %d pointer decreases: %w", i-1, ErrBadSparse)
		}
	}
	if rowPtr[rows] != len(values) || len(values) != len(indices) {
		return nil, fmt.Errorf("NewSparse: nnz: %w", ErrBadSparse)
	}
	for k, j := range indices {
		if j < 0 || j >= cols {
			return nil, fmt.Errorf("NewSparse: index %d (col %d): %w", k, j, ErrBadSparse)
		}
	}

	return &Sparse[T]{rows: rows, cols: cols, values: values, indices: indices, rowPtr: rowPtr}, nil
}

// SparseFromDense keeps the non-zero entries of a dense array.
func SparseFromDense[T Float](m *Dense[T]) *Sparse[T] {
	rowPtr := make([]int, m.Rows()+1)
	var values []T
	var indices []int
	for i := 0; i < m.Rows(); i++ {
		for j, v := range m.Row(i) {
			if v != 0 {
				values = append(values, v)
				indices = append(indices, j)
			}
		}
		rowPtr[i+1] = len(values)
	}

	return &Sparse[T]{rows: m.Rows(), cols: m.Cols(), values: values, indices: indices, rowPtr: rowPtr}
}

// Rows returns the row count.
func (s *Sparse[T]) Rows() int { return s.rows }

// Cols returns the column count.
func (s *Sparse[T]) Cols() int { return s.cols }

// Size returns the number of stored non-zeros.
func (s *Sparse[T]) Size() int { return len(s.values) }

// IsSparse is always true.
func (s *Sparse[T]) IsSparse() bool { return true }

// Row returns the non-owning values and column indices of row i.
func (s *Sparse[T]) Row(i int) ([]T, []int) {
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]

	return s.values[lo:hi:hi], s.indices[lo:hi:hi]
}

// RowDot returns sum_k values[k] * w[indices[k]].
func (s *Sparse[T]) RowDot(i int, w []T) T {
	vals, idx := s.Row(i)
	var r T
	for k, v := range vals {
		r += v * w[idx[k]]
	}

	return r
}

// RowAxpy scatters a*x_i into y.
func (s *Sparse[T]) RowAxpy(i int, a T, y []T) {
	vals, idx := s.Row(i)
	for k, v := range vals {
		y[idx[k]] += a * v
	}
}

// RowNormSq returns the squared norm of the stored row values.
func (s *Sparse[T]) RowNormSq(i int) T {
	vals, _ := s.Row(i)

	return NormSq(vals)
}

// Encode writes the sparse record.
func (s *Sparse[T]) Encode(enc *Encoder) error {
	if err := enc.Bool(true); err != nil {
		return err
	}
	if err := enc.Uint64(uint64(s.cols)); err != nil {
		return err
	}
	if err := enc.Uint64(uint64(s.rows)); err != nil {
		return err
	}
	if err := writeVectorRecord(enc, s.values); err != nil {
		return err
	}
	if err := writeVectorRecord(enc, toUint64(s.indices)); err != nil {
		return err
	}

	return writeVectorRecord(enc, toUint64(s.rowPtr))
}

// DecodeSparse reads one sparse record; a dense discriminant is ErrSparseMismatch.
func DecodeSparse[T Float](dec *Decoder) (*Sparse[T], error) {
	sparse, err := dec.Bool()
	if err != nil {
		return nil, arrayErrorf(ctxDecodeSparse, err)
	}
	if !sparse {
		return nil, arrayErrorf(ctxDecodeSparse, ErrSparseMismatch)
	}
	cols, err := dec.Int()
	if err != nil {
		return nil, arrayErrorf(ctxDecodeSparse, err)
	}
	rows, err := dec.Int()
	if err != nil {
		return nil, arrayErrorf(ctxDecodeSparse, err)
	}
	values, err := readVectorRecord[T](dec)
	if err != nil {
		return nil, arrayErrorf(ctxDecodeSparse, err)
	}
	indices, err := readVectorRecord[uint64](dec)
	if err != nil {
		return nil, arrayErrorf(ctxDecodeSparse, err)
	}
	rowPtr, err := readVectorRecord[uint64](dec)
	if err != nil {
		return nil, arrayErrorf(ctxDecodeSparse, err)
	}
	return NewSparse(rows, cols, values, toInt(indices), toInt(rowPtr))
}

func toUint64(x []int) []uint64 {
	out := make([]uint64, len(x))
	for i, v := range x {
		out[i] = uint64(v)
	}

	return out
}

func toInt(x []uint64) []int {
	out := make([]int, len(x))
	for i, v := range x {
		out[i] = int(v)
	}

	return out
}
