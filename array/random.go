// SPDX-License-Identifier: MIT

// Package array - random construction.
//
// A non-negative seed yields a reproducible PCG stream; a negative seed
// (the conventional "-1") draws the stream from system entropy.

package array

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// seedStream is the fixed PCG stream selector paired with user seeds.
const seedStream = 0x9e3779b97f4a7c15

// NewSource returns a PCG source for seed, or an entropy-seeded one when seed < 0.
func NewSource(seed int64) rand.Source {
	if seed < 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return rand.NewPCG(uint64(seed), seedStream)
}

// uniform draws from U[0,1).
func uniform(seed int64) distuv.Uniform {
	return distuv.Uniform{Min: 0, Max: 1, Src: NewSource(seed)}
}

// Random returns a rows×cols array of uniform [0,1) samples.
func Random[T Float](rows, cols int, seed int64) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	u := uniform(seed)
	for i := range m.data {
		m.data[i] = T(u.Rand())
	}

	return m, nil
}

// RandomVector returns n uniform [0,1) samples.
func RandomVector[T Float](n int, seed int64) (*Vector[T], error) {
	v, err := NewVector[T](n)
	if err != nil {
		return nil, err
	}
	u := uniform(seed)
	for i := range v.data {
		v.data[i] = T(u.Rand())
	}

	return v, nil
}
