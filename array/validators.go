// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - One canonical place for shape/length checks used by constructors,
//     decoders and the collection loader.
//   - Validators return plain sentinels; call sites add context.

package array

// ValidateShape ensures rows and cols are non-negative.
// Zero-sized arrays are legal (an empty record round-trips).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}

	return nil
}

// ValidateSize enforces the record invariant size == cols*rows.
func ValidateSize(cols, rows, size int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return err
	}
	if cols*rows != size {
		return ErrSizeMismatch
	}

	return nil
}

// ValidateLen ensures x holds exactly n elements.
func ValidateLen[E Element](x []E, n int) error {
	if len(x) != n {
		return ErrSizeMismatch
	}

	return nil
}
