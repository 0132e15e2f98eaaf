// Package units is a dimensional-analysis layer built on exact rational
// conversion ratios.
//
// 🚀 Model
//
//	A Unit carries seven Dimensions (length, mass, time, electric current,
//	temperature, amount of substance, luminous intensity). Each Dimension is
//	a (ratio, exponent) pair: "this axis' base is ratio × the SI unit, raised
//	to exponent". A millimetre is {1/1000, 1} on the length axis; a square
//	millimetre is {1/1000, 2}. A Unit also carries an overall factor (angles
//	have no SI axis, only a factor) and an affine offset (temperatures).
//
//	A Quantity[T] is a value of numeric kind T stamped with a Unit.
//
// ✨ Conversion
//
//	Two units are compatible when all seven exponents match; ratios may
//	differ, that is what makes metres and inches different units of length.
//	ConversionRatio computes one Rational:
//
//	  Π over axes of (from.ratio / to.ratio)^exponent × (from.factor / to.factor)
//
//	exactly when the result fits 64 bits, and with 64-bit rounding otherwise
//	(Conversion.Exact tells which). Cast multiplies the value by num/den in
//	the value's own type. Cast ignores offsets, which is right for
//	temperature differences; CastAffine honours them for absolute readings.
//
// 🛡 Two safety levels
//
//   - Runtime: Unit / Quantity[T] / Cast return ErrIncompatibleDimensions
//     when exponents differ.
//   - Compile time: UnitOf[K] / QuantityOf[K, T] / CastOf tag units with a
//     Kind (Length, Mass, Angle, ...). Casting a length into a mass unit does
//     not type-check. Every predefined unit is typed; the embedded Unit and
//     Quantity fields bridge back to the runtime layer.
//
// ⚙️ Usage:
//
//	q := units.NewOf(2.0, units.Meter)
//	mm := units.CastOf(q, units.Millimeter)
//	fmt.Println(mm) // 2000 mm
//
// Angle ratios are 64-bit approximations of π-based constants; conversions
// through them are accurate to float64 epsilon, not exact.
package units
