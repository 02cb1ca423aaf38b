// SPDX-License-Identifier: MIT

package array

// Float is the scalar type parameterizing every numeric container.
// Serialized payload widths are sizeof(T).
type Float interface {
	~float32 | ~float64
}

// Element is any fixed-width value a Vector may hold: floats for weights and
// Lipschitz constants, int32 for labels, uint64 for size_t tables.
type Element interface {
	Float | ~int32 | ~int64 | ~uint64
}

// Kind is the storage discriminant written as the is_sparse flag of a record.
type Kind uint8

const (
	// KindDense marks row-major dense storage.
	KindDense Kind = iota
	// KindSparse marks CSR storage.
	KindSparse
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindSparse {
		return "sparse"
	}

	return "dense"
}

// Matrix is the read-only row capability shared by dense, view and sparse storage.
// Solvers and models depend on this contract only, so they never special-case
// the storage kind.
//
// Row methods take a row index the caller guarantees to be < Rows(); w and y
// must hold at least Cols() elements. Extra trailing elements (an intercept slot)
// are ignored.
type Matrix[T Float] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Size returns the number of stored elements: rows*cols for dense storage,
	// the non-zero count for sparse storage.
	Size() int

	// IsSparse reports the storage discriminant.
	IsSparse() bool

	// RowDot returns <x_i, w>.
	RowDot(i int, w []T) T

	// RowAxpy performs y += a * x_i.
	RowAxpy(i int, a T, y []T)

	// RowNormSq returns ||x_i||².
	RowNormSq(i int) T

	// Encode writes the record into an archive.
	Encode(enc *Encoder) error
}

// Compile-time conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[float64] = (*View[float64])(nil)
	_ Matrix[float64] = (*Sparse[float64])(nil)
	_ Matrix[float32] = (*Dense[float32])(nil)
)

// IsNil reports whether m is nil or a typed-nil *Dense, *View or *Sparse.
func IsNil[T Float](m Matrix[T]) bool {
	switch x := m.(type) {
	case nil:
		return true
	case *Dense[T]:
		return x == nil
	case *View[T]:
		return x == nil
	case *Sparse[T]:
		return x == nil
	default:
		return false
	}
}
