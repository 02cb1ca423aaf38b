// SPDX-License-Identifier: MIT

package array

import "fmt"

// View is a non-owning alias over a dense buffer owned by someone else,
// typically a List. It rebuilds its own [cols, rows, size] record and never
// copies the data. The owner must outlive every use of the view.
type View[T Float] struct {
	denseCore[T]
}

// NewView aliases the first cols*rows elements of data.
// data may be longer (a window into a larger buffer); it may not be shorter.
// The aliased slice is capacity-limited so appends can never spill into a
// neighbouring entry.
func NewView[T Float](data []T, rows, cols int) (*View[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewView(%d,%d): %w", rows, cols, err)
	}
	size := rows * cols
	if len(data) < size {
		return nil, fmt.Errorf("NewView(%d,%d) len=%d: %w", rows, cols, len(data), ErrSizeMismatch)
	}

	return &View[T]{newCore(rows, cols, data[:size:size])}, nil
}

// Clone copies the viewed elements into an owning Dense.
func (v *View[T]) Clone() *Dense[T] {
	cp := make([]T, len(v.data))
	copy(cp, v.data)

	return &Dense[T]{newCore(v.Rows(), v.Cols(), cp)}
}
