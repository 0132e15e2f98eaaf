// Package ratio implements exact fractions of two unsigned 64-bit integers.
//
// 🚀 What is a Rational here?
//
//	A Rational is num/den with den ≠ 0 and both parts in [0, 2⁶⁴).
//	It is the scale of a unit relative to its SI base: a millimetre is
//	1/1000 of a metre, an inch is 127/5000 of a metre.
//
// ✨ Key properties:
//   - Every arithmetic result is normalized (num and den divided by their GCD).
//   - Multiplication cross-reduces before multiplying and forms the product
//     in 128 bits, so intermediate overflow never corrupts a result.
//   - Two flavours per operation:
//     MulExact / DivExact / PowExact / ProductExact return ErrOverflow when the
//     reduced result does not fit 64 bits;
//     Mul / Div / Pow / Product round such results to the nearest 64-bit
//     fraction instead, shifting both 128-bit parts right by the same amount
//     (relative error ≤ 2⁻ᵏ per rounding, k = bits kept in the smaller part).
//   - Pow(r, 0) is 1/1 for every r, 0/1 included.
//
// ⚙️ Usage:
//
//	mm := ratio.Milli                     // 1/1000
//	cubic, _ := mm.PowExact(3)            // 1/1000000000
//	back, _ := cubic.PowExact(-1)         // 1000000000/1
//
// Equality:
//
//	Equal is structural (compares num and den as stored). Two unreduced forms
//	of the same value are not Equal; use Normalize first, or Equivalent.
//
// Preconditions:
//
//	A zero denominator is rejected by New (ErrZeroDenominator), and an
//	operand carrying one (the 0/0 zero value) is rejected by every
//	arithmetic operation the same way: an error from the Exact API, a panic
//	from the rounding API. Dividing by a
//	zero Rational returns ErrDivisionByZero from the Exact API and panics in
//	the rounding API, the same contract as math/big.Rat.Quo.
package ratio
