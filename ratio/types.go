// SPDX-License-Identifier: MIT

package ratio

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Rational is an immutable fraction num/den of unsigned 64-bit integers.
// The zero value (0/0) is invalid; use One, Zero or New.
type Rational struct {
	num uint64 // numerator
	den uint64 // denominator, never 0 for a valid value
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Rational{}

// New builds num/den as given, without reducing it.
// Returns ErrZeroDenominator when den == 0.
// Complexity: O(1).
func New(num, den uint64) (Rational, error) {
	if den == 0 {
		return Rational{}, ratioErrorf(opNew, ErrZeroDenominator)
	}

	return Rational{num: num, den: den}, nil
}

// MustNew is New that panics on error. Intended for package-level tables.
func MustNew(num, den uint64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// Int returns n/1.
func Int(n uint64) Rational { return Rational{num: n, den: 1} }

// One returns 1/1, the default ratio.
func One() Rational { return Rational{num: 1, den: 1} }

// Zero returns 0/1.
func Zero() Rational { return Rational{num: 0, den: 1} }

// Num returns the numerator as stored.
func (r Rational) Num() uint64 { return r.num }

// Den returns the denominator as stored.
func (r Rational) Den() uint64 { return r.den }

// IsValid reports den != 0.
func (r Rational) IsValid() bool { return r.den != 0 }

// IsZero reports num == 0.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsOne reports whether r has the value 1 (num == den).
func (r Rational) IsOne() bool { return r.num == r.den && r.den != 0 }

// Equal is structural equality: 2/4 is not Equal to 1/2.
func (r Rational) Equal(o Rational) bool { return r.num == o.num && r.den == o.den }

// Equivalent reports value equality by comparing 128-bit cross products.
// Complexity: O(1).
func (r Rational) Equivalent(o Rational) bool { return r.Cmp(o) == 0 }

// Cmp compares values and returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) int {
	lh, ll := bits.Mul64(r.num, o.den)
	rh, rl := bits.Mul64(o.num, r.den)
	switch {
	case lh < rh || (lh == rh && ll < rl):
		return -1
	case lh > rh || (lh == rh && ll > rl):
		return 1
	default:
		return 0
	}
}

// Float64 returns num/den as a float64.
func (r Rational) Float64() float64 { return float64(r.num) / float64(r.den) }

// String renders "num/den".
func (r Rational) String() string {
	return strconv.FormatUint(r.num, 10) + "/" + strconv.FormatUint(r.den, 10)
}

// GoString renders the value as "Ratio<num, den>", which is handy in test
// failure output.
func (r Rational) GoString() string {
	return fmt.Sprintf("Ratio<%d, %d>", r.num, r.den)
}

// Parse reads "n/d" or "n". Surrounding spaces are ignored; the result is not reduced.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	numPart, denPart, hasSlash := strings.Cut(s, "/")
	num, err := strconv.ParseUint(strings.TrimSpace(numPart), 10, 64)
	if err != nil {
		return Rational{}, ratioErrorf(opParse, fmt.Errorf("%q: %w", s, ErrSyntax))
	}
	if !hasSlash {
		return Int(num), nil
	}
	den, err := strconv.ParseUint(strings.TrimSpace(denPart), 10, 64)
	if err != nil {
		return Rational{}, ratioErrorf(opParse, fmt.Errorf("%q: %w", s, ErrSyntax))
	}

	return New(num, den)
}
