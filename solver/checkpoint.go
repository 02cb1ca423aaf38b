// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/katalvlaran/statick/array"
)

// Checkpoint field numbers. Vectors are packed fixed64 doubles.
const (
	fieldEpoch        protowire.Number = 1
	fieldStep         protowire.Number = 2
	fieldIterate      protowire.Number = 3
	fieldFixedW       protowire.Number = 4
	fieldFullGradient protowire.Number = 5
	fieldNextIterate  protowire.Number = 6
	fieldRandIndex    protowire.Number = 7
)

// MarshalState encodes an SVRG state between epochs.
// GradI and GradIFixedW are scratch and are not persisted.
func MarshalState[T array.Float](s *State[T]) ([]byte, error) {
	if s == nil {
		return nil, ErrNilState
	}
	if s.inEpoch {
		return nil, fmt.Errorf("solver.MarshalState: epoch %d: %w", s.Epoch, ErrMidEpoch)
	}

	var b []byte
	b = protowire.AppendTag(b, fieldEpoch, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(s.Epoch))
	b = protowire.AppendTag(b, fieldStep, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(float64(s.Step)))
	b = appendPacked(b, fieldIterate, s.Iterate)
	b = appendPacked(b, fieldFixedW, s.FixedW)
	b = appendPacked(b, fieldFullGradient, s.FullGradient)
	b = appendPacked(b, fieldNextIterate, s.NextIterate)
	b = protowire.AppendTag(b, fieldRandIndex, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(s.RandIndex))

	return b, nil
}

// UnmarshalState decodes a checkpoint written by MarshalState.
// Unknown fields are skipped. Vectors must be empty or match the iterate length;
// epoch and rand index must fit in a non-negative int.
func UnmarshalState[T array.Float](b []byte) (*State[T], error) {
	s := &State[T]{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, badCheckpoint(protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case (num == fieldEpoch || num == fieldRandIndex) && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			if n >= 0 && v > math.MaxInt {
				return nil, fmt.Errorf("solver.UnmarshalState: field %d = %d: %w", num, v, ErrBadCheckpoint)
			}
			if num == fieldEpoch {
				s.Epoch = int(v)
			} else {
				s.RandIndex = int(v)
			}
		case num == fieldStep && typ == protowire.Fixed64Type:
			var v uint64
			v, n = protowire.ConsumeFixed64(b)
			s.Step = T(math.Float64frombits(v))
		case num >= fieldIterate && num <= fieldNextIterate && typ == protowire.BytesType:
			var raw []byte
			raw, n = protowire.ConsumeBytes(b)
			if n >= 0 {
				vec, err := unpack[T](raw)
				if err != nil {
					return nil, err
				}
				*s.vector(num) = vec
			}
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return nil, badCheckpoint(protowire.ParseError(n))
		}
		b = b[n:]
	}

	dim := len(s.Iterate)
	if dim == 0 {
		return nil, fmt.Errorf("solver.UnmarshalState: no iterate: %w", ErrBadCheckpoint)
	}
	for _, v := range [][]T{s.FixedW, s.FullGradient, s.NextIterate} {
		if len(v) != 0 && len(v) != dim {
			return nil, fmt.Errorf("solver.UnmarshalState: vector of %d, iterate of %d: %w",
				len(v), dim, ErrBadCheckpoint)
		}
	}

	return s, nil
}

// vector maps a packed field number to its slice.
func (s *State[T]) vector(num protowire.Number) *[]T {
	switch num {
	case fieldFixedW:
		return &s.FixedW
	case fieldFullGradient:
		return &s.FullGradient
	case fieldNextIterate:
		return &s.NextIterate
	default:
		return &s.Iterate
	}
}

func appendPacked[T array.Float](b []byte, num protowire.Number, v []T) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(8*len(v)))
	for _, x := range v {
		b = protowire.AppendFixed64(b, math.Float64bits(float64(x)))
	}

	return b
}

func unpack[T array.Float](raw []byte) ([]T, error) {
	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("solver.UnmarshalState: packed length %d: %w", len(raw), ErrBadCheckpoint)
	}
	out := make([]T, 0, len(raw)/8)
	for len(raw) > 0 {
		v, n := protowire.ConsumeFixed64(raw)
		if n < 0 {
			return nil, badCheckpoint(protowire.ParseError(n))
		}
		out = append(out, T(math.Float64frombits(v)))
		raw = raw[n:]
	}

	return out, nil
}

func badCheckpoint(err error) error {
	return fmt.Errorf("solver.UnmarshalState: %v: %w", err, ErrBadCheckpoint)
}
