// SPDX-License-Identifier: MIT

// Package prox holds proximal operators applied by solvers after each
// stochastic update.
package prox

import (
	"fmt"
	"math"

	"github.com/katalvlaran/statick/array"
)

const panicStrengthInvalid = "prox: strength must be finite and non-negative"

// Prox is a proximal operator over the penalized coordinates of an iterate.
type Prox[T array.Float] interface {
	// Call writes prox_{step*g}(in) into out; in and out may alias.
	Call(in []T, step T, out []T)

	// Value returns the penalty g(w).
	Value(w []T) T
}

// L2Sq is the ridge penalty strength/2 * ||w||².
type L2Sq[T array.Float] struct {
	strength T
}

// NewL2Sq returns a ridge operator. Panics on negative or non-finite strength.
func NewL2Sq[T array.Float](strength T) L2Sq[T] {
	s := float64(strength)
	if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		panic(panicStrengthInvalid)
	}

	return L2Sq[T]{strength: strength}
}

// Strength returns the penalty weight.
func (p L2Sq[T]) Strength() T { return p.strength }

// Call scales in by 1/(1 + step*strength).
func (p L2Sq[T]) Call(in []T, step T, out []T) {
	if len(out) != len(in) {
		panic(fmt.Sprintf("prox: L2Sq.Call: len(out)=%d, len(in)=%d", len(out), len(in)))
	}
	copy(out, in)
	array.Scale(1/(1+step*p.strength), out)
}

// Value returns strength/2 * ||w||².
func (p L2Sq[T]) Value(w []T) T { return p.strength / 2 * array.NormSq(w) }

// Zero is the identity operator (no penalty).
type Zero[T array.Float] struct{}

// Call copies in to out.
func (Zero[T]) Call(in []T, _ T, out []T) { copy(out, in) }

// Value is always zero.
func (Zero[T]) Value([]T) T { return 0 }
