// SPDX-License-Identifier: MIT

// Package ratio - arithmetic kernels.
//
// Purpose:
//   - Multiply, divide and exponentiate fractions without overflow-prone
//     intermediate states.
//
// Implementation (shared by every operation):
//   - Stage 1: normalize both operands.
//   - Stage 2: cross-reduce (gcd(a.num, b.den), gcd(b.num, a.den)); the
//     product of cross-reduced normalized fractions is already normalized.
//   - Stage 3: form both products in 128 bits (math/bits.Mul64).
//   - Stage 4: if both fit 64 bits the result is exact; otherwise the Exact
//     API reports ErrOverflow and the rounding API shifts both parts right by
//     the same amount, rounding half up, and renormalizes.
//
// Determinism:
//   - Fully deterministic; no floating point anywhere in this file.

package ratio

import (
	"math"
	"math/bits"
)

// gcd is Euclid's algorithm with gcd(0, d) = d.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Normalize divides num and den by their greatest common divisor.
// 0/d becomes 0/1. Complexity: O(log min(num, den)).
func (r Rational) Normalize() Rational {
	g := gcd(r.num, r.den)
	if g <= 1 {
		return r
	}

	return Rational{num: r.num / g, den: r.den / g}
}

// Reciprocal returns den/num. A zero numerator yields ErrDivisionByZero.
func (r Rational) Reciprocal() (Rational, error) {
	if r.num == 0 {
		return Rational{}, ratioErrorf(opInv, ErrDivisionByZero)
	}

	return Rational{num: r.den, den: r.num}.Normalize(), nil
}

// wide is an unrounded 128-bit fraction (hi:lo parts).
type wide struct {
	nHi, nLo uint64
	dHi, dLo uint64
}

// mulWide computes the normalized product of a and b in 128 bits.
func mulWide(a, b Rational) wide {
	a, b = a.Normalize(), b.Normalize()
	g1 := gcd(a.num, b.den)
	g2 := gcd(b.num, a.den)
	an, bd := a.num/g1, b.den/g1
	bn, ad := b.num/g2, a.den/g2

	var w wide
	w.nHi, w.nLo = bits.Mul64(an, bn)
	w.dHi, w.dLo = bits.Mul64(ad, bd)

	return w
}

// exact returns the 64-bit fraction when both halves fit.
func (w wide) exact() (Rational, bool) {
	if w.nHi != 0 || w.dHi != 0 {
		return Rational{}, false
	}

	return Rational{num: w.nLo, den: w.dLo}, true
}

// bitLen128 is the bit length of hi:lo.
func bitLen128(hi, lo uint64) int {
	if hi != 0 {
		return 64 + bits.Len64(hi)
	}

	return bits.Len64(lo)
}

// shr128 shifts hi:lo right by s (0 < s < 128).
func shr128(hi, lo uint64, s uint) (uint64, uint64) {
	if s >= 64 {
		return 0, hi >> (s - 64)
	}

	return hi >> s, lo>>s | hi<<(64-s)
}

// roundShift returns round-half-up(hi:lo / 2^s) and whether it fits 64 bits.
func roundShift(hi, lo uint64, s uint) (uint64, bool) {
	qHi, qLo := shr128(hi, lo, s)
	_, halfLo := shr128(hi, lo, s-1)
	qLo, carry := bits.Add64(qLo, halfLo&1, 0)
	qHi += carry

	return qLo, qHi == 0
}

// rounded maps w to the nearest representable 64-bit fraction.
//
// Behavior highlights:
//   - Values above 2⁶⁴ saturate to MaxUint64/1.
//   - Values that round to a zero numerator become 0/1.
//   - Otherwise the relative error is at most 2⁻ᵏ, where k is the bit
//     length of the smaller rounded part; for values within a factor 2¹¹ of
//     1 that is finer than float64 precision.
func (w wide) rounded() Rational {
	if r, ok := w.exact(); ok {
		return r
	}
	nBits := bitLen128(w.nHi, w.nLo)
	dBits := bitLen128(w.dHi, w.dLo)
	s := uint(max(nBits, dBits) - 64)

	var num, den uint64
	for {
		n, okN := roundShift(w.nHi, w.nLo, s)
		d, okD := roundShift(w.dHi, w.dLo, s)
		if okN && okD {
			num, den = n, d
			break
		}
		s++ // rounding carried into bit 64; give up one more bit
	}

	switch {
	case den == 0:
		return Rational{num: math.MaxUint64, den: 1}
	case num == 0:
		return Zero()
	}

	return Rational{num: num, den: den}.Normalize()
}

// checkValid reports ErrZeroDenominator when any operand has den == 0.
func checkValid(tag string, rs ...Rational) error {
	for _, r := range rs {
		if !r.IsValid() {
			return ratioErrorf(tag, ErrZeroDenominator)
		}
	}

	return nil
}

// mustValid is checkValid for the rounding API, which panics instead.
func mustValid(tag string, rs ...Rational) {
	if err := checkValid(tag, rs...); err != nil {
		panic(err)
	}
}

// MulExact returns r*o, or ErrOverflow when the normalized product does not
// fit 64 bits. Operands with a zero denominator yield ErrZeroDenominator.
// Complexity: O(log max) for the GCDs, O(1) otherwise.
func (r Rational) MulExact(o Rational) (Rational, error) {
	if err := checkValid(opMul, r, o); err != nil {
		return Rational{}, err
	}
	p, ok := mulWide(r, o).exact()
	if !ok {
		return Rational{}, ratioErrorf(opMul, ErrOverflow)
	}

	return p, nil
}

// Mul returns r*o, rounded to the nearest 64-bit fraction when the exact
// product does not fit. It panics when either operand has a zero denominator.
func (r Rational) Mul(o Rational) Rational {
	mustValid(opMul, r, o)
	return mulWide(r, o).rounded()
}

// DivExact returns r/o. Errors: ErrZeroDenominator, ErrDivisionByZero, ErrOverflow.
func (r Rational) DivExact(o Rational) (Rational, error) {
	if err := checkValid(opDiv, r, o); err != nil {
		return Rational{}, err
	}
	if o.num == 0 {
		return Rational{}, ratioErrorf(opDiv, ErrDivisionByZero)
	}
	q, ok := mulWide(r, Rational{num: o.den, den: o.num}).exact()
	if !ok {
		return Rational{}, ratioErrorf(opDiv, ErrOverflow)
	}

	return q, nil
}

// Div returns r/o with rounding. It panics if o is zero or either operand
// has a zero denominator (precondition).
func (r Rational) Div(o Rational) Rational {
	mustValid(opDiv, r, o)
	if o.num == 0 {
		panic(ratioErrorf(opDiv, ErrDivisionByZero))
	}

	return mulWide(r, Rational{num: o.den, den: o.num}).rounded()
}

// magnitude returns |n| as uint64 without overflowing on math.MinInt.
func magnitude(n int) uint64 {
	if n >= 0 {
		return uint64(n)
	}

	return uint64(-(n + 1)) + 1
}

// PowExact returns r^n.
//
// Implementation:
//   - Stage 1: n == 0 → 1/1 (also for r == 0/1, by convention).
//   - Stage 2: n < 0 → replace the base by its reciprocal.
//   - Stage 3: square-and-multiply on |n| with MulExact. The base is only
//     squared while unconsumed exponent bits remain, so every squared base
//     is a factor of the final result and an overflow there means the
//     result overflows too.
//
// Errors:
//   - ErrZeroDenominator, ErrOverflow, ErrDivisionByZero (0 raised to a
//     negative power).
//
// Complexity: O(log |n|) multiplications.
func (r Rational) PowExact(n int) (Rational, error) {
	if err := checkValid(opPow, r); err != nil {
		return Rational{}, err
	}
	base := r.Normalize()
	if n < 0 {
		if base.num == 0 {
			return Rational{}, ratioErrorf(opPow, ErrDivisionByZero)
		}
		base = Rational{num: base.den, den: base.num}
	}
	result := One()
	e := magnitude(n)
	var err error
	for e > 0 {
		if e&1 == 1 {
			if result, err = result.MulExact(base); err != nil {
				return Rational{}, ratioErrorf(opPow, ErrOverflow)
			}
		}
		e >>= 1
		if e > 0 {
			if base, err = base.MulExact(base); err != nil {
				return Rational{}, ratioErrorf(opPow, ErrOverflow)
			}
		}
	}

	return result, nil
}

// Pow returns r^n with rounding. A negative exponent inverts the base first,
// so results too large for 64 bits saturate to MaxUint64/1 and results too
// small round to 0/1. It panics for 0 raised to a negative power and for a
// zero denominator.
func (r Rational) Pow(n int) Rational {
	mustValid(opPow, r)
	base := r.Normalize()
	if n < 0 {
		if base.num == 0 {
			panic(ratioErrorf(opPow, ErrDivisionByZero))
		}
		base = Rational{num: base.den, den: base.num}
	}
	result := One()
	e := magnitude(n)
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		e >>= 1
		if e > 0 {
			base = base.Mul(base)
		}
	}

	return result
}

// ProductExact folds MulExact over rs from the left. An empty list is 1/1.
func ProductExact(rs ...Rational) (Rational, error) {
	acc := One()
	var err error
	for _, r := range rs {
		if acc, err = acc.MulExact(r); err != nil {
			return Rational{}, err
		}
	}

	return acc, nil
}

// Product folds Mul over rs from the left. An empty list is 1/1.
func Product(rs ...Rational) Rational {
	acc := One()
	for _, r := range rs {
		acc = acc.Mul(r)
	}

	return acc
}
