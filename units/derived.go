// SPDX-License-Identifier: MIT

package units

import "github.com/katalvlaran/ndmath/ratio"

// Other base axes.
var (
	Ampere      = mustUnitOf[Current]("ampere", "A", ratio.One(), noOffset)
	Milliampere = mustUnitOf[Current]("milliampere", "mA", ratio.Milli, noOffset)
	Mole        = mustUnitOf[Substance]("mole", "mol", ratio.One(), noOffset)
	Candela     = mustUnitOf[LuminousIntensity]("candela", "cd", ratio.One(), noOffset)
)

// Areas and volumes; the scale is that of the underlying length.
var (
	SquareMillimeter = mustUnitOf[Area]("square millimetre", "mm²", ratio.Milli, noOffset)
	SquareMeter      = mustUnitOf[Area]("square metre", "m²", ratio.One(), noOffset)
	Hectare          = mustUnitOf[Area]("hectare", "ha", ratio.Hecto, noOffset)
	SquareKilometer  = mustUnitOf[Area]("square kilometre", "km²", ratio.Kilo, noOffset)

	Milliliter = mustUnitOf[Volume]("millilitre", "mL", ratio.Centi, noOffset)
	Liter      = mustUnitOf[Volume]("litre", "L", ratio.Deci, noOffset)
	CubicMeter = mustUnitOf[Volume]("cubic metre", "m³", ratio.One(), noOffset)
)

// Velocities, built per axis so the time exponent is -1.
var (
	MeterPerSecond   = mustKind[Velocity](MustUnit("metre per second", "m/s", velocity(ratio.One(), ratio.One()), ratio.One(), noOffset))
	KilometerPerHour = mustKind[Velocity](MustUnit("kilometre per hour", "km/h", velocity(ratio.Kilo, ratio.Int(3600)), ratio.One(), noOffset))
	Knot             = mustKind[Velocity](MustUnit("knot", "kn", velocity(ratio.Int(1852), ratio.Int(3600)), ratio.One(), noOffset))
)

func velocity(length, time ratio.Rational) Dimensions {
	var d Dimensions
	d[AxisLength] = Dimension{Ratio: length, Exponent: 1}
	d[AxisTime] = Dimension{Ratio: time, Exponent: -1}
	return d
}

func mustKind[K Kind](u Unit) UnitOf[K] {
	k, err := AsKind[K](u)
	if err != nil {
		panic(err)
	}
	return k
}
