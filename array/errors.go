// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// Every message is prefixed with "array: ...". Call sites wrap with
// fmt.Errorf("<ctx>: %w", ErrX) so callers can keep matching via errors.Is.

package array

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("array: invalid shape")

	// ErrSizeMismatch signals that a declared element count does not equal cols*rows,
	// or that a supplied buffer has the wrong length for its shape.
	ErrSizeMismatch = errors.New("array: size does not match shape")

	// ErrSparseMismatch signals that a record's is_sparse discriminant does not
	// match the storage kind the reader expects.
	ErrSparseMismatch = errors.New("array: sparse discriminant mismatch")

	// ErrBadHeader is returned when an archive starts with an unknown endianness byte.
	ErrBadHeader = errors.New("array: unknown archive header")

	// ErrOutOfRange indicates an entry, row or element index outside valid bounds.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrBadSparse indicates an inconsistent CSR structure (row pointers, column indices).
	ErrBadSparse = errors.New("array: malformed sparse structure")

	// ErrNilArray indicates that a nil array was passed where one is required.
	ErrNilArray = errors.New("array: nil array")
)

// arrayErrorf attaches a "<Type>.<Method>" tag to a sentinel.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
