// SPDX-License-Identifier: MIT

package array

import "fmt"

// Vector is an owning 1D array: labels, lag tables, censoring flags, weights.
//
// Record layout: bool is_sparse (false) | uint64 n | n*sizeof(E) payload.
type Vector[E Element] struct {
	data []E
}

// NewVector returns a zero vector of length n.
func NewVector[E Element](n int) (*Vector[E], error) {
	if n < 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", n, ErrBadShape)
	}

	return &Vector[E]{data: make([]E, n)}, nil
}

// NewVectorFrom wraps data and takes ownership of it.
func NewVectorFrom[E Element](data []E) *Vector[E] {
	return &Vector[E]{data: data}
}

// Filled returns a vector of length n with every element set to v.
func Filled[E Element](n int, v E) *Vector[E] {
	data := make([]E, n)
	Fill(data, v)

	return &Vector[E]{data: data}
}

// Len returns the element count.
func (v *Vector[E]) Len() int { return len(v.data) }

// Data returns the backing slice. Callers must not write into it.
func (v *Vector[E]) Data() []E { return v.data }

// At returns element i or ErrOutOfRange.
func (v *Vector[E]) At(i int) (E, error) {
	if i < 0 || i >= len(v.data) {
		var zero E
		return zero, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Encode writes the vector record.
func (v *Vector[E]) Encode(enc *Encoder) error {
	if err := enc.Bool(false); err != nil {
		return err
	}

	return writeVectorRecord(enc, v.data)
}

// DecodeVector reads one vector record; a sparse discriminant is ErrSparseMismatch.
func DecodeVector[E Element](dec *Decoder) (*Vector[E], error) {
	sparse, err := dec.Bool()
	if err != nil {
		return nil, arrayErrorf("DecodeVector", err)
	}
	if sparse {
		return nil, arrayErrorf("DecodeVector", ErrSparseMismatch)
	}
	data, err := readVectorRecord[E](dec)
	if err != nil {
		return nil, arrayErrorf("DecodeVector", err)
	}

	return &Vector[E]{data: data}, nil
}
