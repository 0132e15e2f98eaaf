// SPDX-License-Identifier: MIT

// Package number - scalar wrapper.
//
// Purpose:
//   - Give a primitive number a distinct static type without losing arithmetic.
//   - Keep every operator as a named method; no hidden conversions.
//
// Notes:
//   - Division by zero keeps Go semantics (integer panic, float ±Inf/NaN).
//     It is a caller precondition and is not guarded here.

package number

import (
	"cmp"
	"fmt"
)

// Number wraps a value of kind T. The zero value holds T's zero.
type Number[T Real] struct {
	v T
}

// Of wraps v.
func Of[T Real](v T) Number[T] {
	return Number[T]{v: v}
}

// Value unwraps the primitive value.
func (n Number[T]) Value() T { return n.v }

// Add returns n + o.
func (n Number[T]) Add(o Number[T]) Number[T] { return Number[T]{v: n.v + o.v} }

// Sub returns n - o.
func (n Number[T]) Sub(o Number[T]) Number[T] { return Number[T]{v: n.v - o.v} }

// Mul returns n * o.
func (n Number[T]) Mul(o Number[T]) Number[T] { return Number[T]{v: n.v * o.v} }

// Div returns n / o. Integer division truncates toward zero.
func (n Number[T]) Div(o Number[T]) Number[T] { return Number[T]{v: n.v / o.v} }

// Neg returns -n. For unsigned kinds this wraps modulo 2^bits.
func (n Number[T]) Neg() Number[T] { return Number[T]{v: -n.v} }

// Pos returns +n.
func (n Number[T]) Pos() Number[T] { return n }

// Inc returns n + 1.
func (n Number[T]) Inc() Number[T] { return Number[T]{v: n.v + 1} }

// Dec returns n - 1.
func (n Number[T]) Dec() Number[T] { return Number[T]{v: n.v - 1} }

// Equal reports n == o.
func (n Number[T]) Equal(o Number[T]) bool { return n.v == o.v }

// Less reports n < o.
func (n Number[T]) Less(o Number[T]) bool { return n.v < o.v }

// LessEqual reports n <= o.
func (n Number[T]) LessEqual(o Number[T]) bool { return n.v <= o.v }

// Greater reports n > o.
func (n Number[T]) Greater(o Number[T]) bool { return n.v > o.v }

// GreaterEqual reports n >= o.
func (n Number[T]) GreaterEqual(o Number[T]) bool { return n.v >= o.v }

// Cmp returns -1, 0 or +1. NaN compares less than every other value.
func (n Number[T]) Cmp(o Number[T]) int { return cmp.Compare(n.v, o.v) }

// IsZero reports whether the wrapped value is zero (logical not).
func (n Number[T]) IsZero() bool { return n.v == 0 }

// And is the logical conjunction of both values' truthiness.
func (n Number[T]) And(o Number[T]) bool { return n.v != 0 && o.v != 0 }

// Or is the logical disjunction of both values' truthiness.
func (n Number[T]) Or(o Number[T]) bool { return n.v != 0 || o.v != 0 }

// String implements fmt.Stringer using the %v verb of the wrapped value.
func (n Number[T]) String() string { return fmt.Sprint(n.v) }
