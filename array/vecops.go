// SPDX-License-Identifier: MIT

// Package array - vector kernels shared by rows, models and solvers.
//
// float64 slices go through gonum/floats; other widths use the plain loops.

package array

import "gonum.org/v1/gonum/floats"

// Dot returns <x, y> over len(x) elements; y must be at least as long.
func Dot[T Float](x, y []T) T {
	y = y[:len(x)]
	if xf, ok := any(x).([]float64); ok {
		return T(floats.Dot(xf, any(y).([]float64)))
	}
	var s T
	for i, v := range x {
		s += v * y[i]
	}

	return s
}

// Axpy performs y += a*x over len(x) elements.
func Axpy[T Float](a T, x, y []T) {
	y = y[:len(x)]
	if xf, ok := any(x).([]float64); ok {
		floats.AddScaled(any(y).([]float64), float64(a), xf)
		return
	}
	for i, v := range x {
		y[i] += a * v
	}
}

// NormSq returns ||x||².
func NormSq[T Float](x []T) T { return Dot(x, x) }

// SubTo writes dst = s - t and returns dst.
func SubTo[T Float](dst, s, t []T) []T {
	if df, ok := any(dst).([]float64); ok {
		floats.SubTo(df, any(s).([]float64), any(t).([]float64))
		return dst
	}
	for i := range dst {
		dst[i] = s[i] - t[i]
	}

	return dst
}

// Scale performs x *= a.
func Scale[T Float](a T, x []T) {
	if xf, ok := any(x).([]float64); ok {
		floats.Scale(float64(a), xf)
		return
	}
	for i := range x {
		x[i] *= a
	}
}

// Fill sets every element of x to v.
func Fill[E Element](x []E, v E) {
	for i := range x {
		x[i] = v
	}
}
