// SPDX-License-Identifier: MIT

// Package array - portable binary archive.
//
// Purpose:
//   - Reproduce the portable binary layout of persisted arrays and DAOs byte for byte.
//   - An archive starts with one header byte giving the writer's endianness
//     (1 = little endian, 0 = big endian). Readers honor either; writers always
//     emit little endian.
//   - bool is one byte; size_t values and size tags are uint64; payloads are raw
//     element bytes in the archive's byte order.
//
// Notes:
//   - Payload reads grow in bounded chunks so a corrupt size tag fails with
//     io.ErrUnexpectedEOF instead of a giant allocation.

package array

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	headerLittleEndian byte = 1
	headerBigEndian    byte = 0

	// payloadChunk bounds a single payload allocation step (elements).
	payloadChunk = 1 << 16
)

// Encoder writes values into a portable binary archive.
type Encoder struct {
	w     io.Writer
	order binary.ByteOrder
	buf   [8]byte
}

// NewEncoder writes the archive header to w and returns an Encoder positioned
// after it.
func NewEncoder(w io.Writer) (*Encoder, error) {
	if _, err := w.Write([]byte{headerLittleEndian}); err != nil {
		return nil, arrayErrorf("NewEncoder", err)
	}

	return &Encoder{w: w, order: binary.LittleEndian}, nil
}

// Bool writes a one-byte boolean.
func (e *Encoder) Bool(v bool) error {
	e.buf[0] = 0
	if v {
		e.buf[0] = 1
	}
	_, err := e.w.Write(e.buf[:1])

	return err
}

// Uint64 writes a size_t value.
func (e *Encoder) Uint64(v uint64) error {
	e.order.PutUint64(e.buf[:], v)
	_, err := e.w.Write(e.buf[:8])

	return err
}

// SizeTag writes an element count preceding a payload.
func (e *Encoder) SizeTag(n int) error {
	if n < 0 {
		return arrayErrorf("Encoder.SizeTag", ErrBadShape)
	}

	return e.Uint64(uint64(n))
}

// Decoder reads values from a portable binary archive.
type Decoder struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

// NewDecoder consumes the archive header from r and returns a Decoder that
// reads in the writer's byte order.
func NewDecoder(r io.Reader) (*Decoder, error) {
	var hdr [1]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, arrayErrorf("NewDecoder", err)
	}
	d := &Decoder{r: r}
	switch hdr[0] {
	case headerLittleEndian:
		d.order = binary.LittleEndian
	case headerBigEndian:
		d.order = binary.BigEndian
	default:
		return nil, fmt.Errorf("NewDecoder: header %#x: %w", hdr[0], ErrBadHeader)
	}

	return d, nil
}

// Bool reads a one-byte boolean; any non-zero byte is true.
func (d *Decoder) Bool() (bool, error) {
	if _, err := io.ReadFull(d.r, d.buf[:1]); err != nil {
		return false, err
	}

	return d.buf[0] != 0, nil
}

// Uint64 reads a size_t value.
func (d *Decoder) Uint64() (uint64, error) {
	if _, err := io.ReadFull(d.r, d.buf[:8]); err != nil {
		return 0, err
	}

	return d.order.Uint64(d.buf[:8]), nil
}

// Int reads a size_t value that must fit in an int.
func (d *Decoder) Int() (int, error) {
	v, err := d.Uint64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt {
		return 0, fmt.Errorf("Decoder.Int: %d: %w", v, ErrSizeMismatch)
	}

	return int(v), nil
}

// SizeTag reads an element count.
func (d *Decoder) SizeTag() (int, error) { return d.Int() }

// WritePayload writes len(data) raw elements without a size tag.
func WritePayload[E Element](e *Encoder, data []E) error {
	if len(data) == 0 {
		return nil
	}

	return binary.Write(e.w, e.order, data)
}

// WriteValue writes a single raw element.
func WriteValue[E Element](e *Encoder, v E) error {
	return binary.Write(e.w, e.order, v)
}

// ReadPayload appends n raw elements to dst and returns the extended slice.
// On failure dst is returned truncated to its original length.
func ReadPayload[E Element](d *Decoder, n int, dst []E) ([]E, error) {
	base := len(dst)
	for remaining := n; remaining > 0; {
		step := min(remaining, payloadChunk)
		start := len(dst)
		dst = append(dst, make([]E, step)...)
		if err := binary.Read(d.r, d.order, dst[start:start+step]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}

			return dst[:base], err
		}
		remaining -= step
	}

	return dst, nil
}

// ReadValue reads a single raw element.
func ReadValue[E Element](d *Decoder) (E, error) {
	var v E
	err := binary.Read(d.r, d.order, &v)

	return v, err
}

// readVectorRecord reads a size tag followed by that many elements.
func readVectorRecord[E Element](d *Decoder) ([]E, error) {
	n, err := d.SizeTag()
	if err != nil {
		return nil, err
	}

	return ReadPayload(d, n, make([]E, 0, min(n, payloadChunk)))
}

// writeVectorRecord writes a size tag followed by the elements.
func writeVectorRecord[E Element](e *Encoder, data []E) error {
	if err := e.SizeTag(len(data)); err != nil {
		return err
	}

	return WritePayload(e, data)
}
