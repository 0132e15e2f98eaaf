// SPDX-License-Identifier: MIT

// Package number - flat-slice and scalar kernels shared by matrix and quaternion.

package number

import "gonum.org/v1/gonum/floats/scalar"

// Zero sets every element of dst to T's zero value.
// Complexity: O(len(dst)).
func Zero[T any](dst []T) {
	clear(dst)
}

// Copy copies min(len(dst), len(src)) elements and returns the count.
// Complexity: O(n).
func Copy[T any](dst, src []T) int {
	return copy(dst, src)
}

// Pow2 returns v*v.
func Pow2[T Real](v T) T { return v * v }

// PowInt returns v raised to the integer exponent e.
//
// Implementation:
//   - Stage 1: square-and-multiply on |e|.
//   - Stage 2: for e < 0, return 1 / v^|e|.
//
// Notes:
//   - PowInt(v, 0) == 1 for every v, including 0.
//   - For integer kinds a negative exponent truncates (0 unless |v| == 1)
//     and panics for v == 0.
//
// Complexity: O(log |e|).
func PowInt[T Real](v T, e int) T {
	neg := e < 0
	if neg {
		e = -e
	}
	var result T = 1
	base := v
	for e > 0 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
		e >>= 1
	}
	if neg {
		return 1 / result
	}

	return result
}

// IsPositive reports v >= 0 (zero counts as positive).
func IsPositive[T Real](v T) bool { return v >= 0 }

// EqualApprox reports whether a and b are equal within eps, either as an
// absolute difference or relative to the larger magnitude.
func EqualApprox[T Real](a, b T, eps float64) bool {
	return scalar.EqualWithinAbsOrRel(float64(a), float64(b), eps, eps)
}

// IsInteger reports whether T is an integer kind.
func IsInteger[T Real]() bool {
	var one T = 1
	return one/2 == 0
}
