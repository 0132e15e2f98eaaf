// SPDX-License-Identifier: MIT

package units

import "github.com/katalvlaran/ndmath/ratio"

var noOffset = ratio.Zero()

// Metric lengths.
var (
	Femtometer  = mustUnitOf[Length]("femtometre", "fm", ratio.Femto, noOffset)
	Picometer   = mustUnitOf[Length]("picometre", "pm", ratio.Pico, noOffset)
	Angstrom    = mustUnitOf[Length]("ångström", "Å", ratio.Deci.Mul(ratio.Nano), noOffset)
	Nanometer   = mustUnitOf[Length]("nanometre", "nm", ratio.Nano, noOffset)
	MilliMicron = mustUnitOf[Length]("millimicron", "mμ", ratio.Milli.Mul(ratio.Micro), noOffset)
	Micrometer  = mustUnitOf[Length]("micrometre", "μm", ratio.Micro, noOffset)
	Millimeter  = mustUnitOf[Length]("millimetre", "mm", ratio.Milli, noOffset)
	Centimeter  = mustUnitOf[Length]("centimetre", "cm", ratio.Centi, noOffset)
	Decimeter   = mustUnitOf[Length]("decimetre", "dm", ratio.Deci, noOffset)
	Meter       = mustUnitOf[Length]("metre", "m", ratio.One(), noOffset)
	Decameter   = mustUnitOf[Length]("decametre", "dam", ratio.Deca, noOffset)
	Hectometer  = mustUnitOf[Length]("hectometre", "hm", ratio.Hecto, noOffset)
	Kilometer   = mustUnitOf[Length]("kilometre", "km", ratio.Kilo, noOffset)

	// Fermi is the femtometre under its particle-physics name.
	Fermi = Femtometer
	// Micron is the micrometre under its older name.
	Micron = Micrometer
)

// Imperial and nautical lengths, defined through the international inch.
var (
	Inch         = mustUnitOf[Length]("inch", "in", ratio.MustNew(127, 5000), noOffset)
	Thou         = mustUnitOf[Length]("thou", "th", ratio.MustNew(127, 5_000_000), noOffset)
	Foot         = mustUnitOf[Length]("foot", "ft", ratio.MustNew(381, 1250), noOffset)
	Yard         = mustUnitOf[Length]("yard", "yd", ratio.MustNew(1143, 1250), noOffset)
	Mile         = mustUnitOf[Length]("mile", "mi", ratio.MustNew(201168, 125), noOffset)
	NauticalMile = mustUnitOf[Length]("nautical mile", "nmi", ratio.Int(1852), noOffset)

	// Mil is the thou under its US name.
	Mil = Thou
)
