// SPDX-License-Identifier: MIT

package solver

import (
	"math/rand/v2"

	"github.com/katalvlaran/statick/array"
)

const panicIndexRange = "solver: UniformIndex: n must be >= 1"

// UniformIndex returns a generator of uniform indices in [0, n).
// A non-negative seed makes the sequence reproducible. Panics when n < 1.
// The generator is not safe for concurrent use.
func UniformIndex(n int, seed int64) func() int {
	if n < 1 {
		panic(panicIndexRange)
	}
	r := rand.New(array.NewSource(seed))

	return func() int { return r.IntN(n) }
}
