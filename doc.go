// Package ndmath is a small, dependency-light toolkit for dimensioned
// numerics: exact 64-bit rationals, physical units with compile-time
// dimension checking, shape-typed fixed-size matrices and quaternions.
//
// 🚀 What is inside?
//
//   - Rationals: normalized num/den pairs with exact (error-returning) and
//     rounded (always succeeding) arithmetic, SI prefixes, parsing
//   - Numbers: the Real/Float constraints and tolerance-based comparison
//   - Units: seven-axis dimensions, exact conversion ratios, typed kinds
//     (Length, Angle, Temperature, …), affine temperature conversion,
//     a symbol registry
//   - Matrices: Matrix[T, R, C] whose shape lives in the type, row-vector
//     helpers (Dot, Norm, Cross), pretty printing, a struct-of-arrays buffer
//   - Quaternions: Hamilton algebra, axis-angle construction, rotation of
//     vectors, conversion to and from 4×4 rotation matrices
//
// Layout:
//
//	ratio/      — Rational, exact/rounded Mul, Div, Pow, prefixes
//	number/     — numeric constraints, Number[T] wrapper, approximate equality
//	units/      — Dimension, Unit, Quantity, typed kinds, registry
//	matrix/     — Matrix, Vector, RowView, SoA
//	quaternion/ — Quaternion and rotation matrix conversion
//	cmd/ndconv  — command-line converter built on units and ratio
//
// Quick example:
//
//	d := units.NewOf(2.0, units.Meter)
//	fmt.Println(units.CastOf(d, units.Millimeter)) // 2000 mm
//
//	go get github.com/katalvlaran/ndmath
package ndmath
