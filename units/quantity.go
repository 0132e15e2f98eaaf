// SPDX-License-Identifier: MIT

package units

import (
	"fmt"

	"github.com/katalvlaran/ndmath/number"
	"github.com/katalvlaran/ndmath/ratio"
)

// Quantity is a value of kind T measured in a Unit.
type Quantity[T number.Real] struct {
	value T
	unit  Unit
}

// New stamps v with u.
func New[T number.Real](v T, u Unit) Quantity[T] {
	return Quantity[T]{value: v, unit: u}
}

// Value returns the raw value.
func (q Quantity[T]) Value() T { return q.value }

// Number returns the value as a number.Number.
func (q Quantity[T]) Number() number.Number[T] { return number.Of(q.value) }

// Unit returns the unit the value is expressed in.
func (q Quantity[T]) Unit() Unit { return q.unit }

// String renders "value symbol", e.g. "2 m".
func (q Quantity[T]) String() string {
	return fmt.Sprintf("%v %s", q.value, q.unit)
}

// Scale multiplies the value by k, keeping the unit.
func (q Quantity[T]) Scale(k T) Quantity[T] {
	return Quantity[T]{value: q.value * k, unit: q.unit}
}

// Add converts o into q's unit and adds it. The result is in q's unit.
// Returns ErrIncompatibleDimensions when the units differ in kind.
func (q Quantity[T]) Add(o Quantity[T]) (Quantity[T], error) {
	c, err := Cast(o, q.unit)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: q.value + c.value, unit: q.unit}, nil
}

// Sub converts o into q's unit and subtracts it. The result is in q's unit.
func (q Quantity[T]) Sub(o Quantity[T]) (Quantity[T], error) {
	c, err := Cast(o, q.unit)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: q.value - c.value, unit: q.unit}, nil
}

// Cast converts q into unit to, multiplying the value by the conversion
// ratio in T. Integer kinds are scaled through float64 and truncated, so
// int64 and uint64 values beyond 2⁵³ lose their low bits before the
// truncation; use a float or a narrower integer kind when that matters.
//
// Offsets are NOT applied: Cast(20 °C, K) is 20 K. That is correct for
// temperature differences; use CastAffine for absolute readings.
//
// Returns ErrIncompatibleDimensions when the exponents differ.
func Cast[T number.Real](q Quantity[T], to Unit) (Quantity[T], error) {
	c, err := ConversionRatio(q.unit, to)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: scaleBy(q.value, c.Ratio), unit: to}, nil
}

// Convert is Cast with a change of value kind: the source value is first
// converted to To, then scaled in To.
func Convert[To, From number.Real](q Quantity[From], to Unit) (Quantity[To], error) {
	return Cast(Quantity[To]{value: To(q.value), unit: q.unit}, to)
}

// CastAffine converts an absolute reading, honouring both units' offsets:
//
//	result = (v + from.offset) · ratio − to.offset
//
// where each offset is expressed in its own unit. The arithmetic runs in
// float64. For units without offsets it equals Cast up to rounding.
func CastAffine[T number.Real](q Quantity[T], to Unit) (Quantity[T], error) {
	c, err := ConversionRatio(q.unit, to)
	if err != nil {
		return Quantity[T]{}, err
	}
	v := (float64(q.value) + q.unit.Offset().Float64()) * c.Ratio.Float64()
	v -= to.Offset().Float64()
	return Quantity[T]{value: T(v), unit: to}, nil
}

// scaleBy returns v·num/den. Floats multiply by num/den formed in T;
// integers go through float64 so that num·v cannot wrap.
func scaleBy[T number.Real](v T, r ratio.Rational) T {
	if number.IsInteger[T]() {
		return T(float64(v) * float64(r.Num()) / float64(r.Den()))
	}
	return v * (T(r.Num()) / T(r.Den()))
}
