// SPDX-License-Identifier: MIT

package units

import (
	"fmt"

	"github.com/katalvlaran/ndmath/number"
	"github.com/katalvlaran/ndmath/ratio"
)

// Kind is a compile-time tag for a physical quantity. Its Exponents fix
// the dimension signature of every UnitOf[Kind].
type Kind interface {
	Exponents() Exponents
}

// Base kinds.
type (
	Length            struct{}
	Mass              struct{}
	Time              struct{}
	Current           struct{}
	Temperature       struct{}
	Substance         struct{}
	LuminousIntensity struct{}
	// Angle has no SI axis; angle units differ only in their factor.
	Angle struct{}
	// Scalar is a pure number (ratios, counts).
	Scalar struct{}
)

func (Length) Exponents() Exponents            { return Exponents{AxisLength: 1} }
func (Mass) Exponents() Exponents              { return Exponents{AxisMass: 1} }
func (Time) Exponents() Exponents              { return Exponents{AxisTime: 1} }
func (Current) Exponents() Exponents           { return Exponents{AxisCurrent: 1} }
func (Temperature) Exponents() Exponents       { return Exponents{AxisTemperature: 1} }
func (Substance) Exponents() Exponents         { return Exponents{AxisSubstance: 1} }
func (LuminousIntensity) Exponents() Exponents { return Exponents{AxisLuminousIntensity: 1} }
func (Angle) Exponents() Exponents             { return Exponents{} }
func (Scalar) Exponents() Exponents            { return Exponents{} }

// Derived kinds.
type (
	Area     struct{}
	Volume   struct{}
	Velocity struct{}
)

func (Area) Exponents() Exponents     { return Exponents{AxisLength: 2} }
func (Volume) Exponents() Exponents   { return Exponents{AxisLength: 3} }
func (Velocity) Exponents() Exponents { return Exponents{AxisLength: 1, AxisTime: -1} }

// UnitOf is a Unit whose dimension signature is fixed by K.
// The embedded Unit is the runtime view.
type UnitOf[K Kind] struct {
	Unit
}

// Untyped returns the runtime Unit.
func (u UnitOf[K]) Untyped() Unit { return u.Unit }

// NewUnitOf builds a unit of kind K.
//
// When K has exactly one non-zero axis, scale becomes that axis' ratio, so
// NewUnitOf[Area]("hectare", "ha", ratio.Hecto, ...) means (100 m)². For
// other kinds (Angle, Scalar, Velocity, ...) scale becomes the unit factor.
// offset is read as in NewUnit.
func NewUnitOf[K Kind](name, symbol string, scale, offset ratio.Rational) (UnitOf[K], error) {
	var k K
	exps := k.Exponents()

	axis, n := -1, 0
	for i, e := range exps {
		if e != 0 {
			axis, n = i, n+1
		}
	}

	var dims Dimensions
	for i, e := range exps {
		dims[i].Exponent = e
	}
	factor := scale
	if n == 1 {
		dims[axis].Ratio = scale
		factor = ratio.One()
	}
	u, err := NewUnit(name, symbol, dims, factor, offset)
	if err != nil {
		return UnitOf[K]{}, err
	}
	return UnitOf[K]{Unit: u}, nil
}

// mustUnitOf panics on error; used for the predefined tables.
func mustUnitOf[K Kind](name, symbol string, scale, offset ratio.Rational) UnitOf[K] {
	u, err := NewUnitOf[K](name, symbol, scale, offset)
	if err != nil {
		panic(err)
	}
	return u
}

// AsKind tags a runtime Unit with kind K.
// Returns ErrKindMismatch when u's exponents differ from K's.
func AsKind[K Kind](u Unit) (UnitOf[K], error) {
	var k K
	if u.Exponents() != k.Exponents() {
		return UnitOf[K]{}, unitsErrorf(opAsKind,
			fmt.Errorf("%s [%s] as %T [%s]: %w", u, u.Exponents(), k, k.Exponents(), ErrKindMismatch))
	}
	return UnitOf[K]{Unit: u}, nil
}

// QuantityOf is a Quantity whose unit is statically of kind K.
// The embedded Quantity is the runtime view.
type QuantityOf[K Kind, T number.Real] struct {
	Quantity[T]
}

// NewOf stamps v with u.
func NewOf[K Kind, T number.Real](v T, u UnitOf[K]) QuantityOf[K, T] {
	return QuantityOf[K, T]{Quantity: New(v, u.Unit)}
}

// Untyped returns the runtime Quantity.
func (q QuantityOf[K, T]) Untyped() Quantity[T] { return q.Quantity }

// TypedUnit returns the unit with its kind.
func (q QuantityOf[K, T]) TypedUnit() UnitOf[K] { return UnitOf[K]{Unit: q.unit} }

// Scale multiplies the value by k.
func (q QuantityOf[K, T]) Scale(k T) QuantityOf[K, T] {
	return QuantityOf[K, T]{Quantity: q.Quantity.Scale(k)}
}

// Add converts o into q's unit and adds it.
func (q QuantityOf[K, T]) Add(o QuantityOf[K, T]) QuantityOf[K, T] {
	c := CastOf(o, q.TypedUnit())
	return QuantityOf[K, T]{Quantity: New(q.value+c.value, q.unit)}
}

// Sub converts o into q's unit and subtracts it.
func (q QuantityOf[K, T]) Sub(o QuantityOf[K, T]) QuantityOf[K, T] {
	c := CastOf(o, q.TypedUnit())
	return QuantityOf[K, T]{Quantity: New(q.value-c.value, q.unit)}
}

// CastOf converts q into to. Both units share kind K, so the conversion
// cannot fail; offsets are ignored as in Cast.
func CastOf[K Kind, T number.Real](q QuantityOf[K, T], to UnitOf[K]) QuantityOf[K, T] {
	return QuantityOf[K, T]{Quantity: New(scaleBy(q.value, mustRatio(q.unit, to.Unit)), to.Unit)}
}

// ConvertOf is CastOf with a change of value kind.
func ConvertOf[To, From number.Real, K Kind](q QuantityOf[K, From], to UnitOf[K]) QuantityOf[K, To] {
	return CastOf(QuantityOf[K, To]{Quantity: New(To(q.value), q.unit)}, to)
}

// CastAffineOf is CastAffine for typed quantities.
func CastAffineOf[K Kind, T number.Real](q QuantityOf[K, T], to UnitOf[K]) QuantityOf[K, T] {
	r, err := CastAffine(q.Quantity, to.Unit)
	if err != nil {
		panic(err)
	}
	return QuantityOf[K, T]{Quantity: r}
}

// mustRatio is ConversionRatio for units already known to be compatible.
func mustRatio(from, to Unit) ratio.Rational {
	c, err := ConversionRatio(from, to)
	if err != nil {
		// Unreachable for UnitOf values of one kind.
		panic(err)
	}
	return c.Ratio
}
