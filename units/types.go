// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ndmath/ratio"
)

// Axis names one of the seven SI base dimensions.
type Axis int

// Axes in storage order.
const (
	AxisLength Axis = iota
	AxisMass
	AxisTime
	AxisCurrent
	AxisTemperature
	AxisSubstance
	AxisLuminousIntensity

	// NumAxes is the number of base dimensions every Unit carries.
	NumAxes = 7
)

var axisNames = [NumAxes]string{"length", "mass", "time", "current", "temperature", "substance", "luminous intensity"}

// String returns the lowercase axis name.
func (a Axis) String() string {
	if a < 0 || int(a) >= NumAxes {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// Dimension is one axis of a Unit: the axis base is Ratio × the SI base
// unit, raised to Exponent. The zero value behaves as Dimensionless().
type Dimension struct {
	Ratio    ratio.Rational
	Exponent int
}

// Dimensionless returns {1/1, 0}.
func Dimensionless() Dimension {
	return Dimension{Ratio: ratio.One()}
}

// NewDimension validates r and returns {r, e}.
// Returns ErrInvalidRatio for a zero or zero-denominator ratio.
func NewDimension(r ratio.Rational, e int) (Dimension, error) {
	if !r.IsValid() || r.IsZero() {
		return Dimension{}, unitsErrorf(opNewUnit, ErrInvalidRatio)
	}
	return Dimension{Ratio: r, Exponent: e}, nil
}

// scale is Ratio with the zero value read as one.
func (d Dimension) scale() ratio.Rational {
	if !d.Ratio.IsValid() {
		return ratio.One()
	}
	return d.Ratio
}

// String renders "Dimension<ratio, exponent>".
func (d Dimension) String() string {
	return fmt.Sprintf("Dimension<%s, %d>", d.scale(), d.Exponent)
}

// Dimensions holds one Dimension per Axis.
type Dimensions [NumAxes]Dimension

// Exponents holds one exponent per Axis.
type Exponents [NumAxes]int

// Exponents projects the exponents out of d.
func (d Dimensions) Exponents() Exponents {
	var e Exponents
	for i := range d {
		e[i] = d[i].Exponent
	}
	return e
}

// Base returns Dimensions with r^1 on axis and nothing elsewhere.
func Base(axis Axis, r ratio.Rational) Dimensions {
	var d Dimensions
	d[axis] = Dimension{Ratio: r, Exponent: 1}
	return d
}

// Unit is a named unit of measurement.
// The zero Unit is a nameless dimensionless unit with factor 1.
type Unit struct {
	name   string
	symbol string
	dims   Dimensions
	factor ratio.Rational
	offset ratio.Rational
}

// NewUnit builds a Unit. Zero-value ratios in dims and a zero-value factor
// read as 1/1, a zero-value offset as 0/1. Every ratio is normalized.
//
// Returns ErrInvalidRatio when a ratio that must scale (axis ratio, factor)
// is zero.
func NewUnit(name, symbol string, dims Dimensions, factor, offset ratio.Rational) (Unit, error) {
	u := Unit{name: name, symbol: symbol, factor: ratio.One(), offset: ratio.Zero()}
	for i, d := range dims {
		s := d.scale()
		if s.IsZero() {
			return Unit{}, unitsErrorf(opNewUnit, fmt.Errorf("%s axis of %q: %w", Axis(i), name, ErrInvalidRatio))
		}
		u.dims[i] = Dimension{Ratio: s.Normalize(), Exponent: d.Exponent}
	}
	if factor.IsValid() {
		if factor.IsZero() {
			return Unit{}, unitsErrorf(opNewUnit, fmt.Errorf("factor of %q: %w", name, ErrInvalidRatio))
		}
		u.factor = factor.Normalize()
	}
	if offset.IsValid() {
		u.offset = offset.Normalize()
	}
	return u, nil
}

// MustUnit is NewUnit that panics on error. Intended for package-level tables.
func MustUnit(name, symbol string, dims Dimensions, factor, offset ratio.Rational) Unit {
	u, err := NewUnit(name, symbol, dims, factor, offset)
	if err != nil {
		panic(err)
	}
	return u
}

// Name returns the long name, e.g. "millimetre".
func (u Unit) Name() string { return u.name }

// Symbol returns the short symbol, e.g. "mm".
func (u Unit) Symbol() string { return u.symbol }

// Dimensions returns a copy of the per-axis dimensions.
func (u Unit) Dimensions() Dimensions {
	d := u.dims
	for i := range d {
		d[i].Ratio = d[i].scale()
	}
	return d
}

// Exponents returns the per-axis exponents.
func (u Unit) Exponents() Exponents { return u.dims.Exponents() }

// Factor returns the overall scale factor.
func (u Unit) Factor() ratio.Rational {
	if !u.factor.IsValid() {
		return ratio.One()
	}
	return u.factor
}

// Offset returns the affine offset, expressed in this unit.
func (u Unit) Offset() ratio.Rational {
	if !u.offset.IsValid() {
		return ratio.Zero()
	}
	return u.offset
}

// Compatible reports whether u and o have identical exponents on every axis.
func (u Unit) Compatible(o Unit) bool {
	return u.Exponents() == o.Exponents()
}

// String returns the symbol, falling back to the name, then to the
// exponent signature (e.g. "L^1 T^-1").
func (u Unit) String() string {
	if u.symbol != "" {
		return u.symbol
	}
	if u.name != "" {
		return u.name
	}
	return u.Exponents().String()
}

var axisLetters = [NumAxes]string{"L", "M", "T", "I", "Θ", "N", "J"}

// String renders the non-zero exponents, e.g. "L^2", or "1" if none.
func (e Exponents) String() string {
	var b strings.Builder
	for i, x := range e {
		if x == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s^%d", axisLetters[i], x)
	}
	if b.Len() == 0 {
		return "1"
	}
	return b.String()
}
