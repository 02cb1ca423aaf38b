// SPDX-License-Identifier: MIT

package array

import "fmt"

// SharedList is the Shared Array Registry: position-indexed handles to
// matrices owned elsewhere (dense, view or sparse). Handles are shared, not
// copied; several DAOs may hold the same matrix.
type SharedList[T Float] struct {
	items []Matrix[T]
}

// NewSharedList returns a registry with n empty slots to be filled with Set.
func NewSharedList[T Float](n int) *SharedList[T] {
	return &SharedList[T]{items: make([]Matrix[T], n)}
}

// Len returns the number of slots.
func (s *SharedList[T]) Len() int { return len(s.items) }

// Empty reports whether the registry has no slots.
func (s *SharedList[T]) Empty() bool { return len(s.items) == 0 }

// Append adds a handle at the end.
func (s *SharedList[T]) Append(m Matrix[T]) { s.items = append(s.items, m) }

// Set replaces the handle at position i.
func (s *SharedList[T]) Set(i int, m Matrix[T]) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("SharedList.Set(%d): %w", i, ErrOutOfRange)
	}
	s.items[i] = m

	return nil
}

// At returns the handle at position i; an unfilled slot is ErrNilArray.
func (s *SharedList[T]) At(i int) (Matrix[T], error) {
	if i < 0 || i >= len(s.items) {
		return nil, fmt.Errorf("SharedList.At(%d): %w", i, ErrOutOfRange)
	}
	if s.items[i] == nil {
		return nil, fmt.Errorf("SharedList.At(%d): %w", i, ErrNilArray)
	}

	return s.items[i], nil
}

// Matrices returns a copy of the handle slice (the matrices are shared).
func (s *SharedList[T]) Matrices() []Matrix[T] {
	out := make([]Matrix[T], len(s.items))
	copy(out, s.items)

	return out
}
