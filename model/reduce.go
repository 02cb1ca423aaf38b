// SPDX-License-Identifier: MIT

package model

import (
	"github.com/katalvlaran/statick/array"
	"golang.org/x/sync/errgroup"
)

// ReduceSamples sums per-chunk partial vectors of length dim over samples [0, n).
//
// fn(lo, hi, partial) must add the contribution of samples lo..hi-1 into
// partial and touch nothing shared. With workers <= 1 the reduction runs
// inline; otherwise [0, n) is cut into at most workers contiguous chunks run
// on an errgroup. Partials are combined in chunk order, so the result is
// deterministic for a fixed worker count.
//
// Complexity: O(n * cost(fn per sample) / workers + workers * dim).
func ReduceSamples[T array.Float](n, dim, workers int, fn func(lo, hi int, partial []T)) []T {
	out := make([]T, dim)
	if workers <= 1 || n < 2 {
		fn(0, n, out)
		return out
	}
	workers = min(workers, n)
	chunk := (n + workers - 1) / workers
	partials := make([][]T, workers)

	var g errgroup.Group
	for k := 0; k < workers; k++ {
		lo, hi := k*chunk, min((k+1)*chunk, n)
		if lo >= hi {
			continue
		}
		partials[k] = make([]T, dim)
		g.Go(func() error {
			fn(lo, hi, partials[k])
			return nil
		})
	}
	_ = g.Wait() // fn cannot fail

	for _, p := range partials {
		if p != nil {
			array.Axpy(1, p, out)
		}
	}

	return out
}
