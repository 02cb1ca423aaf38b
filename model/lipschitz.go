// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/katalvlaran/statick/array"
)

// Lipschitz is the numeric-stability sub-DAO embedded in model DAOs.
// It holds one smoothness constant per sample and their maximum, which
// solvers use to pick a default step.
//
// Record layout: bool ready | T max | Vector[T] consts.
type Lipschitz[T array.Float] struct {
	ready  bool
	max    T
	consts []T
}

// NewLipschitz returns a ready sub-DAO over consts (ownership is taken).
func NewLipschitz[T array.Float](consts []T) *Lipschitz[T] {
	l := &Lipschitz[T]{}
	l.set(consts)

	return l
}

func (l *Lipschitz[T]) set(consts []T) {
	l.consts = consts
	l.max = 0
	for _, c := range consts {
		l.max = max(l.max, c)
	}
	l.ready = true
}

// Ready reports whether constants have been computed or loaded.
func (l *Lipschitz[T]) Ready() bool { return l.ready }

// Max returns the largest constant (0 when not ready).
func (l *Lipschitz[T]) Max() T { return l.max }

// Len returns the number of constants.
func (l *Lipschitz[T]) Len() int { return len(l.consts) }

// Const returns the constant of sample i.
func (l *Lipschitz[T]) Const(i int) T { return l.consts[i] }

// Encode writes the record.
func (l *Lipschitz[T]) Encode(enc *array.Encoder) error {
	if err := enc.Bool(l.ready); err != nil {
		return err
	}
	if err := array.WriteValue(enc, l.max); err != nil {
		return err
	}

	return array.NewVectorFrom(l.consts).Encode(enc)
}

// DecodeLipschitz reads one record.
func DecodeLipschitz[T array.Float](dec *array.Decoder) (*Lipschitz[T], error) {
	ready, err := dec.Bool()
	if err != nil {
		return nil, fmt.Errorf("DecodeLipschitz: %w", err)
	}
	mx, err := array.ReadValue[T](dec)
	if err != nil {
		return nil, fmt.Errorf("DecodeLipschitz: %w", err)
	}
	v, err := array.DecodeVector[T](dec)
	if err != nil {
		return nil, fmt.Errorf("DecodeLipschitz: %w", err)
	}

	return &Lipschitz[T]{ready: ready, max: mx, consts: v.Data()}, nil
}
