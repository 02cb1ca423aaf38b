// SPDX-License-Identifier: MIT

// Package array - List: an arena of dense matrices with an index table.
//
// Purpose:
//   - Store N variable-shaped dense matrices back to back in one flat buffer,
//     avoiding one heap allocation per sample when a dataset is naturally
//     "one matrix per sample".
//   - Keep a side table of four ints per entry: [cols, rows, size, offset].
//     Entry i's data is data[offset : offset+size] and offset is the sum of
//     the sizes of entries 0..i-1.
//
// Behavior highlights:
//   - Appends are atomic: a rejected record leaves buffer and table untouched.
//   - At returns a View aliasing the shared buffer; no copy.
//   - Views taken before a later append may point at a stale buffer after the
//     buffer grows; take views once loading is finished.

package array

import (
	"fmt"
	"log/slog"
)

// infoStride is the number of ints recorded per entry.
const infoStride = 4

// List is the Array Collection.
type List[T Float] struct {
	data   []T
	info   []int
	logger *slog.Logger
}

// NewList returns an empty collection.
func NewList[T Float](opts ...Option) *List[T] {
	o := gatherOptions(opts...)

	return &List[T]{logger: o.logger}
}

// ListFromFiles builds a collection from one archive per file, in order.
// The first rejected file aborts the load: it returns nil and the error.
func ListFromFiles[T Float](paths []string, opts ...Option) (*List[T], error) {
	l := NewList[T](opts...)
	for _, p := range paths {
		if err := l.AddFile(p); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Len returns the number of entries.
func (l *List[T]) Len() int { return len(l.info) / infoStride }

// Size returns the total number of elements across all entries.
func (l *List[T]) Size() int { return len(l.data) }

// Data returns the flat buffer. Callers must not write into it.
func (l *List[T]) Data() []T { return l.data }

// Info returns a copy of the index table (four ints per entry).
func (l *List[T]) Info() []int {
	out := make([]int, len(l.info))
	copy(out, l.info)

	return out
}

// Entry returns the [cols, rows, size, offset] record of entry i.
func (l *List[T]) Entry(i int) ([infoStride]int, error) {
	var e [infoStride]int
	if i < 0 || i >= l.Len() {
		return e, fmt.Errorf("List.Entry(%d): %w", i, ErrOutOfRange)
	}
	copy(e[:], l.info[i*infoStride:(i+1)*infoStride])

	return e, nil
}

// At returns a View over entry i.
// Complexity: O(1), no copy.
func (l *List[T]) At(i int) (*View[T], error) {
	e, err := l.Entry(i)
	if err != nil {
		return nil, fmt.Errorf("List.At: %w", err)
	}
	cols, rows, size, off := e[0], e[1], e[2], e[3]

	return NewView(l.data[off:off+size], rows, cols)
}

// Views returns one View per entry, in order, typed as Matrix so the result
// can be handed straight to a model DAO.
func (l *List[T]) Views() []Matrix[T] {
	out := make([]Matrix[T], l.Len())
	for i := range out {
		v, _ := l.At(i) // indices are in range by construction
		out[i] = v
	}

	return out
}

// Append copies a dense matrix (or view) in as a new entry.
func (l *List[T]) Append(m interface {
	Rows() int
	Cols() int
	Data() []T
}) error {
	if m == nil {
		return arrayErrorf("List.Append", ErrNilArray)
	}
	rows, cols, data := m.Rows(), m.Cols(), m.Data()
	if err := ValidateSize(cols, rows, len(data)); err != nil {
		return arrayErrorf("List.Append", err)
	}
	l.push(cols, rows, len(data), len(l.data))
	l.data = append(l.data, data...)

	return nil
}

// AppendFrom decodes one dense record straight into the shared buffer.
// A sparse discriminant, a size mismatch or a short payload rejects the
// record and leaves the list unchanged.
func (l *List[T]) AppendFrom(dec *Decoder) error {
	cols, rows, size, err := decodeDenseHeader(dec)
	if err != nil {
		return arrayErrorf("List.AppendFrom", err)
	}
	off := len(l.data)
	grown, err := ReadPayload(dec, size, l.data)
	if err != nil {
		l.data = grown // truncated back to off
		return arrayErrorf("List.AppendFrom", err)
	}
	l.data = grown
	l.push(cols, rows, size, off)

	return nil
}

// AddFile appends the record stored in path.
func (l *List[T]) AddFile(path string) error {
	err := ReadFile(path, l.AppendFrom)
	if err != nil {
		l.logger.Warn("array: rejected collection entry", slog.String("path", path), slog.Any("err", err))
	}

	return err
}

// push records a new entry starting at element offset off.
func (l *List[T]) push(cols, rows, size, off int) {
	l.info = append(l.info, cols, rows, size, off)
}
