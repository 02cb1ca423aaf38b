// SPDX-License-Identifier: MIT

// Package array - Dense storage (row-major) and the shared dense core.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Keep the shape record as [cols, rows, size], the order it is persisted in.
//   - Enforce size == rows*cols on every construction path, including decoding.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; Row: O(1); RowDot/RowAxpy: O(c); Encode/Decode: O(r*c).

package array

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxNewDense    = "NewDense"
	ctxDenseFrom   = "NewDenseFrom"
	ctxDecodeDense = "DecodeDense"
	ctxDenseAt     = "Dense.At"
)

// Shape record slots.
const (
	infoCols = iota
	infoRows
	infoSize
)

// denseCore is the storage shared by Dense (owning) and View (aliasing).
//   - info holds [cols, rows, size] with size == cols*rows.
//   - data is a flat row-major buffer of exactly size elements.
type denseCore[T Float] struct {
	info [3]int
	data []T
}

func newCore[T Float](rows, cols int, data []T) denseCore[T] {
	return denseCore[T]{info: [3]int{cols, rows, rows * cols}, data: data}
}

// Rows returns the row count.
func (m *denseCore[T]) Rows() int { return m.info[infoRows] }

// Cols returns the column count.
func (m *denseCore[T]) Cols() int { return m.info[infoCols] }

// Size returns rows*cols.
func (m *denseCore[T]) Size() int { return m.info[infoSize] }

// Info returns the [cols, rows, size] shape record.
func (m *denseCore[T]) Info() [3]int { return m.info }

// IsSparse is always false for dense storage.
func (m *denseCore[T]) IsSparse() bool { return false }

// Data returns the flat buffer. Callers must not write into it.
func (m *denseCore[T]) Data() []T { return m.data }

// Row returns a non-owning slice of cols elements starting at i*cols.
// The caller must ensure i < Rows().
func (m *denseCore[T]) Row(i int) []T {
	c := m.info[infoCols]

	return m.data[i*c : (i+1)*c : (i+1)*c]
}

// At returns the element at (row, col) or ErrOutOfRange.
func (m *denseCore[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxDenseAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.Cols()+col], nil
}

// RowDot returns <x_i, w[:cols]>.
func (m *denseCore[T]) RowDot(i int, w []T) T { return Dot(m.Row(i), w) }

// RowAxpy performs y[:cols] += a * x_i.
func (m *denseCore[T]) RowAxpy(i int, a T, y []T) { Axpy(a, m.Row(i), y) }

// RowNormSq returns ||x_i||².
func (m *denseCore[T]) RowNormSq(i int) T { return NormSq(m.Row(i)) }

// Encode writes the dense record: false, cols, rows, size tag, payload.
func (m *denseCore[T]) Encode(enc *Encoder) error {
	if err := enc.Bool(false); err != nil {
		return err
	}
	if err := enc.Uint64(uint64(m.Cols())); err != nil {
		return err
	}
	if err := enc.Uint64(uint64(m.Rows())); err != nil {
		return err
	}
	if err := enc.SizeTag(m.Size()); err != nil {
		return err
	}

	return WritePayload(enc, m.data)
}

// String renders rows for diagnostics; not for hot paths.
func (m *denseCore[T]) String() string {
	s := ""
	for i := 0; i < m.Rows(); i++ {
		s += fmt.Sprintf("%v\n", m.Row(i))
	}

	return s
}

// Dense is an owning row-major 2D array.
// It is immutable after construction; only decoding fills it.
type Dense[T Float] struct {
	denseCore[T]
}

// NewDense creates a rows×cols zero array.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled flat buffer of rows*cols elements.
//
// Complexity: O(rows*cols) time and memory.
func NewDense[T Float](rows, cols int) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDense, rows, cols, err)
	}

	return &Dense[T]{newCore(rows, cols, make([]T, rows*cols))}, nil
}

// NewDenseFrom wraps data as a rows×cols array and takes ownership of it.
// len(data) must equal rows*cols, otherwise ErrSizeMismatch.
func NewDenseFrom[T Float](rows, cols int, data []T) (*Dense[T], error) {
	if err := ValidateSize(cols, rows, len(data)); err != nil {
		return nil, fmt.Errorf("%s(%d,%d) len=%d: %w", ctxDenseFrom, rows, cols, len(data), err)
	}

	return &Dense[T]{newCore(rows, cols, data)}, nil
}

// DecodeDense reads one dense record.
//
// Implementation:
//   - Stage 1: read is_sparse; true is ErrSparseMismatch.
//   - Stage 2: read cols, rows and the size tag; size != cols*rows is ErrSizeMismatch.
//   - Stage 3: read size*sizeof(T) payload bytes.
//
// Behavior highlights:
//   - No partial object is returned on failure.
func DecodeDense[T Float](dec *Decoder) (*Dense[T], error) {
	cols, rows, size, err := decodeDenseHeader(dec)
	if err != nil {
		return nil, arrayErrorf(ctxDecodeDense, err)
	}
	data, err := ReadPayload(dec, size, make([]T, 0, min(size, payloadChunk)))
	if err != nil {
		return nil, arrayErrorf(ctxDecodeDense, err)
	}

	return &Dense[T]{newCore(rows, cols, data)}, nil
}

// decodeDenseHeader reads and validates everything before a dense payload.
func decodeDenseHeader(dec *Decoder) (cols, rows, size int, err error) {
	sparse, err := dec.Bool()
	if err != nil {
		return 0, 0, 0, err
	}
	if sparse {
		return 0, 0, 0, ErrSparseMismatch
	}
	if cols, err = dec.Int(); err != nil {
		return 0, 0, 0, err
	}
	if rows, err = dec.Int(); err != nil {
		return 0, 0, 0, err
	}
	if size, err = dec.SizeTag(); err != nil {
		return 0, 0, 0, err
	}
	if cols != 0 && rows > size/cols || cols*rows != size {
		return 0, 0, 0, fmt.Errorf("cols=%d rows=%d size=%d: %w", cols, rows, size, ErrSizeMismatch)
	}

	return cols, rows, size, nil
}
