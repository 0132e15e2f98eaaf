package ratio_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/ndmath/ratio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bigOf converts r into a math/big oracle value.
func bigOf(r ratio.Rational) *big.Rat {
	n := new(big.Int).SetUint64(r.Num())
	d := new(big.Int).SetUint64(r.Den())

	return new(big.Rat).SetFrac(n, d)
}

// relErr returns |got-want|/want computed exactly, as a float64.
func relErr(got ratio.Rational, want *big.Rat) float64 {
	diff := new(big.Rat).Sub(bigOf(got), want)
	diff.Abs(diff)
	diff.Quo(diff, want)
	f, _ := diff.Float64()

	return f
}

// TestNew_ZeroDenominator ensures a zero denominator is rejected up front.
func TestNew_ZeroDenominator(t *testing.T) {
	_, err := ratio.New(1, 0)
	assert.ErrorIs(t, err, ratio.ErrZeroDenominator)
	assert.Panics(t, func() { ratio.MustNew(3, 0) }, "MustNew must fail fast")

	r, err := ratio.New(6, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), r.Num(), "construction does not reduce")
	assert.Equal(t, uint64(4), r.Den())
}

// TestDefaults covers One, Zero and the zero-value validity flag.
func TestDefaults(t *testing.T) {
	assert.True(t, ratio.One().IsOne())
	assert.True(t, ratio.Zero().IsZero())
	assert.False(t, ratio.Rational{}.IsValid(), "0/0 zero value is invalid")
	assert.True(t, ratio.One().IsValid())
}

// TestNormalize covers GCD reduction including the gcd(0, d) = d convention.
func TestNormalize(t *testing.T) {
	assert.Equal(t, ratio.MustNew(3, 2), ratio.MustNew(6, 4).Normalize())
	assert.Equal(t, ratio.MustNew(0, 1), ratio.MustNew(0, 7).Normalize(), "0/d → 0/1")
	assert.Equal(t, ratio.MustNew(5, 1), ratio.MustNew(5, 1).Normalize())
}

// TestNormalize_RoundTrip: normalize(n*k / d*k) == n/d for coprime n, d.
func TestNormalize_RoundTrip(t *testing.T) {
	pairs := [][2]uint64{{1, 2}, {3, 7}, {127, 5000}, {0, 1}, {1_000_003, 999_983}}
	for _, p := range pairs {
		for _, k := range []uint64{1, 2, 9, 1_000, 65_537} {
			got := ratio.MustNew(p[0]*k, p[1]*k).Normalize()
			assert.Equal(t, ratio.MustNew(p[0], p[1]), got, "n=%d d=%d k=%d", p[0], p[1], k)
		}
	}
}

// TestEqual_StructuralVsValue documents that Equal does not reduce.
func TestEqual_StructuralVsValue(t *testing.T) {
	a := ratio.MustNew(1, 2)
	b := ratio.MustNew(2, 4)

	assert.False(t, a.Equal(b), "structural equality")
	assert.True(t, a.Equivalent(b), "value equality")
	assert.True(t, a.Equal(b.Normalize()))
	assert.Equal(t, -1, ratio.MustNew(1, 3).Cmp(a))
	assert.Equal(t, 1, ratio.MustNew(2, 3).Cmp(a))
}

// TestMulExact_CrossReduction checks that operands whose naive products
// overflow still multiply exactly when the result is representable.
func TestMulExact_CrossReduction(t *testing.T) {
	a := ratio.MustNew(1<<62, 3)
	b := ratio.MustNew(3, 1<<62)

	p, err := a.MulExact(b)
	require.NoError(t, err)
	assert.Equal(t, ratio.One(), p)

	p, err = ratio.Milli.MulExact(ratio.Milli)
	require.NoError(t, err)
	assert.Equal(t, ratio.Micro, p)

	p, err = ratio.MustNew(4, 6).MulExact(ratio.MustNew(9, 2))
	require.NoError(t, err)
	assert.Equal(t, ratio.MustNew(3, 1), p, "result is normalized")
}

// TestMulExact_Overflow ensures unrepresentable products are reported.
func TestMulExact_Overflow(t *testing.T) {
	_, err := ratio.Exa.MulExact(ratio.Exa)
	assert.ErrorIs(t, err, ratio.ErrOverflow)

	_, err = ratio.Atto.MulExact(ratio.Atto)
	assert.ErrorIs(t, err, ratio.ErrOverflow)
}

// TestMul_Rounding compares the rounding path against math/big.
func TestMul_Rounding(t *testing.T) {
	deg := ratio.MustNew(321_956_420_358_983_237, 18_446_744_073_709_551_600)
	rev := ratio.MustNew(18_446_744_073_709_551_612, 2_935_890_503_282_001_226)

	_, err := deg.DivExact(rev)
	require.ErrorIs(t, err, ratio.ErrOverflow, "precondition: exact quotient is too wide")

	got := deg.Div(rev)
	want := new(big.Rat).Quo(bigOf(deg), bigOf(rev))
	assert.Less(t, relErr(got, want), math.Ldexp(1, -55), "rounded quotient well below float64 epsilon")
	assert.Equal(t, got, got.Normalize(), "rounded result is normalized")
}

// TestMul_Saturation covers the saturating and underflow corners.
func TestMul_Saturation(t *testing.T) {
	assert.Equal(t, ratio.MustNew(math.MaxUint64, 1), ratio.Exa.Mul(ratio.Exa))
	assert.Equal(t, ratio.Zero(), ratio.Atto.Mul(ratio.Atto))
}

// TestDiv covers exact division and the zero-divisor contract.
func TestDiv(t *testing.T) {
	q, err := ratio.Kilo.DivExact(ratio.Milli)
	require.NoError(t, err)
	assert.Equal(t, ratio.Mega, q)

	_, err = ratio.One().DivExact(ratio.Zero())
	assert.ErrorIs(t, err, ratio.ErrDivisionByZero)
	assert.Panics(t, func() { ratio.One().Div(ratio.Zero()) })

	_, err = ratio.Zero().Reciprocal()
	assert.ErrorIs(t, err, ratio.ErrDivisionByZero)

	inv, err := ratio.MustNew(10, 4).Reciprocal()
	require.NoError(t, err)
	assert.Equal(t, ratio.MustNew(2, 5), inv)
}

// TestPowExact_Table sweeps positive and negative exponents of small bases.
func TestPowExact_Table(t *testing.T) {
	milli := ratio.MustNew(1, 1000)
	kilo := ratio.MustNew(1000, 1)
	cases := []struct {
		base ratio.Rational
		exp  int
		want ratio.Rational
	}{
		{milli, -3, ratio.MustNew(1_000_000_000, 1)},
		{kilo, -3, ratio.MustNew(1, 1_000_000_000)},
		{milli, -2, ratio.MustNew(1_000_000, 1)},
		{kilo, -2, ratio.MustNew(1, 1_000_000)},
		{milli, -1, ratio.MustNew(1000, 1)},
		{kilo, -1, ratio.MustNew(1, 1000)},
		{milli, 0, ratio.One()},
		{kilo, 0, ratio.One()},
		{milli, 1, milli},
		{kilo, 1, kilo},
		{milli, 2, ratio.MustNew(1, 1_000_000)},
		{kilo, 2, ratio.MustNew(1_000_000, 1)},
		{milli, 3, ratio.MustNew(1, 1_000_000_000)},
		{kilo, 3, ratio.MustNew(1_000_000_000, 1)},
	}
	for _, tc := range cases {
		got, err := tc.base.PowExact(tc.exp)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s^%d", tc.base, tc.exp)
		assert.Equal(t, tc.want, tc.base.Pow(tc.exp), "rounding API agrees when exact")
	}
}

// TestPow_ZeroExponent: r^0 == 1/1 for all r, including 0/1.
func TestPow_ZeroExponent(t *testing.T) {
	for _, r := range []ratio.Rational{ratio.Zero(), ratio.One(), ratio.Exa, ratio.MustNew(6, 4)} {
		got, err := r.PowExact(0)
		require.NoError(t, err)
		assert.Equal(t, ratio.One(), got)
		assert.Equal(t, ratio.One(), r.Pow(0))
	}
}

// TestPow_Identity: r^(a+b) == r^a * r^b for exponents of matching sign.
func TestPow_Identity(t *testing.T) {
	r := ratio.MustNew(2, 3)
	for a := -6; a <= 6; a++ {
		for b := -6; b <= 6; b++ {
			if (a < 0) != (b < 0) {
				continue
			}
			lhs, err := r.PowExact(a + b)
			require.NoError(t, err)
			pa, err := r.PowExact(a)
			require.NoError(t, err)
			pb, err := r.PowExact(b)
			require.NoError(t, err)
			rhs, err := pa.MulExact(pb)
			require.NoError(t, err)
			assert.Equal(t, lhs, rhs, "a=%d b=%d", a, b)
		}
	}
}

// TestPow_Errors covers overflow and zero to a negative power.
// TestPow_NegativeExponentSaturates: a tiny base raised to a negative power
// overflows upward and saturates instead of dividing by a rounded-off zero.
func TestPow_NegativeExponentSaturates(t *testing.T) {
	tiny := ratio.MustNew(1, 1<<32)
	var got ratio.Rational
	require.NotPanics(t, func() { got = tiny.Pow(-3) })
	assert.Equal(t, ratio.MustNew(math.MaxUint64, 1), got)

	_, err := tiny.PowExact(-3)
	assert.ErrorIs(t, err, ratio.ErrOverflow)

	p, err := tiny.PowExact(-1)
	require.NoError(t, err)
	assert.Equal(t, ratio.Int(1<<32), p)

	// A huge base to a negative power rounds down to zero without panicking.
	assert.Equal(t, ratio.Zero(), ratio.Int(1<<32).Pow(-3))
	assert.Equal(t, ratio.MustNew(1, 1000), ratio.Int(10).Pow(-3))
}

// TestZeroDenominatorOperands: 0/0 operands fail fast in both APIs.
func TestZeroDenominatorOperands(t *testing.T) {
	var invalid ratio.Rational
	half := ratio.MustNew(1, 2)

	_, err := invalid.MulExact(half)
	assert.ErrorIs(t, err, ratio.ErrZeroDenominator)
	_, err = half.MulExact(invalid)
	assert.ErrorIs(t, err, ratio.ErrZeroDenominator)
	_, err = half.DivExact(invalid)
	assert.ErrorIs(t, err, ratio.ErrZeroDenominator)
	_, err = invalid.PowExact(2)
	assert.ErrorIs(t, err, ratio.ErrZeroDenominator)
	_, err = ratio.ProductExact(half, invalid)
	assert.ErrorIs(t, err, ratio.ErrZeroDenominator)

	assert.Panics(t, func() { invalid.Mul(half) })
	assert.Panics(t, func() { half.Div(invalid) })
	assert.Panics(t, func() { invalid.Pow(3) })
	assert.Panics(t, func() { ratio.Product(invalid, half) })
}

func TestPow_Errors(t *testing.T) {
	_, err := ratio.Int(10).PowExact(20)
	assert.ErrorIs(t, err, ratio.ErrOverflow)

	p, err := ratio.Int(10).PowExact(19)
	require.NoError(t, err)
	assert.Equal(t, ratio.Int(10_000_000_000_000_000_000), p)

	// Squaring 2^32 would overflow, but the last square is never taken.
	p, err = ratio.Int(1 << 32).PowExact(1)
	require.NoError(t, err)
	assert.Equal(t, ratio.Int(1<<32), p)
	p, err = ratio.Int(1 << 21).PowExact(3)
	require.NoError(t, err)
	assert.Equal(t, ratio.Int(1<<63), p)

	_, err = ratio.Zero().PowExact(-1)
	assert.ErrorIs(t, err, ratio.ErrDivisionByZero)
	assert.Panics(t, func() { ratio.Zero().Pow(-2) })
}

// TestProduct covers the left fold and its identity.
func TestProduct(t *testing.T) {
	assert.Equal(t, ratio.One(), ratio.Product())

	p, err := ratio.ProductExact(ratio.Milli, ratio.Kilo, ratio.Centi)
	require.NoError(t, err)
	assert.Equal(t, ratio.Centi, p)

	_, err = ratio.ProductExact(ratio.Exa, ratio.Kilo, ratio.Kilo)
	assert.ErrorIs(t, err, ratio.ErrOverflow)
	assert.Equal(t, ratio.Centi, ratio.Product(ratio.Milli, ratio.Kilo, ratio.Centi))
}

// TestPrefixes sanity-checks the prefix tables.
func TestPrefixes(t *testing.T) {
	assert.Equal(t, 10.0, ratio.Deca.Float64(), "deca is ten")
	assert.Equal(t, uint64(1)<<60, ratio.Exbi.Num())
	assert.True(t, ratio.Kilo.Mul(ratio.Milli).IsOne())
	assert.True(t, ratio.Exa.Mul(ratio.Atto).IsOne())
	assert.True(t, ratio.Kibi.Mul(ratio.Kibi).Equal(ratio.Mebi))
}

// TestParse covers the accepted forms and syntax errors.
func TestParse(t *testing.T) {
	r, err := ratio.Parse(" 3/4 ")
	require.NoError(t, err)
	assert.Equal(t, ratio.MustNew(3, 4), r)

	r, err = ratio.Parse("5")
	require.NoError(t, err)
	assert.Equal(t, ratio.Int(5), r)

	_, err = ratio.Parse("1/0")
	assert.ErrorIs(t, err, ratio.ErrZeroDenominator)

	_, err = ratio.Parse("x/2")
	assert.ErrorIs(t, err, ratio.ErrSyntax)

	_, err = ratio.Parse("-1/2")
	assert.ErrorIs(t, err, ratio.ErrSyntax, "negative fractions are not representable")
}

// TestString covers both renderings.
func TestString(t *testing.T) {
	r := ratio.MustNew(127, 5000)
	assert.Equal(t, "127/5000", r.String())
	assert.Equal(t, "Ratio<127, 5000>", r.GoString())
}
