package number_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndmath/number"
	"github.com/stretchr/testify/assert"
)

// TestNumber_Arithmetic verifies that every arithmetic method forwards to the wrapped value.
func TestNumber_Arithmetic(t *testing.T) {
	a := number.Of[int64](12)
	b := number.Of[int64](5)

	assert.Equal(t, int64(17), a.Add(b).Value(), "12+5")
	assert.Equal(t, int64(7), a.Sub(b).Value(), "12-5")
	assert.Equal(t, int64(60), a.Mul(b).Value(), "12*5")
	assert.Equal(t, int64(2), a.Div(b).Value(), "integer division truncates")
	assert.Equal(t, int64(-12), a.Neg().Value(), "negation")
	assert.Equal(t, a, a.Pos(), "unary plus is identity")
	assert.Equal(t, int64(13), a.Inc().Value())
	assert.Equal(t, int64(11), a.Dec().Value())
	assert.Equal(t, int64(12), a.Value(), "receiver is never mutated")
}

// TestNumber_Comparison covers the ordering predicates and Cmp.
func TestNumber_Comparison(t *testing.T) {
	a := number.Of(1.5)
	b := number.Of(2.5)

	assert.True(t, a.Less(b))
	assert.True(t, a.LessEqual(a))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterEqual(b))
	assert.False(t, a.Equal(b))
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 0, a.Cmp(a))
	assert.Equal(t, 1, b.Cmp(a))
}

// TestNumber_Logical covers truthiness helpers.
func TestNumber_Logical(t *testing.T) {
	zero := number.Of(0)
	one := number.Of(1)

	assert.True(t, zero.IsZero())
	assert.False(t, one.IsZero())
	assert.True(t, one.And(one))
	assert.False(t, one.And(zero))
	assert.True(t, zero.Or(one))
	assert.False(t, zero.Or(zero))
}

// TestBitwise checks the integer-only operators, including a right shift
// that really shifts right.
func TestBitwise(t *testing.T) {
	a := number.Of[uint8](0b1100)
	b := number.Of[uint8](0b1010)

	assert.Equal(t, uint8(0b1000), number.BitAnd(a, b).Value())
	assert.Equal(t, uint8(0b1110), number.BitOr(a, b).Value())
	assert.Equal(t, uint8(0b0110), number.BitXor(a, b).Value())
	assert.Equal(t, uint8(0b11110011), number.BitNot(a).Value())
	assert.Equal(t, uint8(0b110000), number.Shl(a, 2).Value())
	assert.Equal(t, uint8(0b11), number.Shr(a, 2).Value(), "Shr must shift right")
	assert.Equal(t, uint8(2), number.Rem(a, b).Value(), "12 % 10")

	s := number.Of[int32](-8)
	assert.Equal(t, int32(-2), number.Shr(s, 2).Value(), "signed shift is arithmetic")
}

// TestNumber_String formats through the wrapped value.
func TestNumber_String(t *testing.T) {
	assert.Equal(t, "42", number.Of(42).String())
	assert.Equal(t, "0.5", number.Of(0.5).String())
}

// TestPowInt covers positive, zero and negative exponents.
func TestPowInt(t *testing.T) {
	assert.Equal(t, 1024.0, number.PowInt(2.0, 10))
	assert.Equal(t, 1.0, number.PowInt(0.0, 0), "0^0 is defined as 1")
	assert.Equal(t, 0.125, number.PowInt(2.0, -3))
	assert.Equal(t, int64(-27), number.PowInt(int64(-3), 3))
	assert.Equal(t, 0, number.PowInt(2, -1), "integer reciprocal truncates")
}

// TestKernels covers Zero, Copy, Pow2, IsPositive.
func TestKernels(t *testing.T) {
	buf := []float32{1, 2, 3}
	number.Zero(buf)
	assert.Equal(t, []float32{0, 0, 0}, buf)

	dst := make([]int, 2)
	n := number.Copy(dst, []int{7, 8, 9})
	assert.Equal(t, 2, n, "copy is bounded by the shorter slice")
	assert.Equal(t, []int{7, 8}, dst)

	assert.Equal(t, 9, number.Pow2(-3))
	assert.True(t, number.IsPositive(0))
	assert.False(t, number.IsPositive(-1e-300))
}

// TestIsInteger tells integer kinds from float kinds, named types included.
func TestIsInteger(t *testing.T) {
	type celsius float32
	assert.True(t, number.IsInteger[int]())
	assert.True(t, number.IsInteger[uint8]())
	assert.False(t, number.IsInteger[float64]())
	assert.False(t, number.IsInteger[celsius]())
}

// TestEqualApprox checks both the absolute and relative branches.
func TestEqualApprox(t *testing.T) {
	assert.True(t, number.EqualApprox(1.0, 1.0+1e-12, 1e-9))
	assert.True(t, number.EqualApprox(1e12, 1e12+1, 1e-9), "relative tolerance for large magnitudes")
	assert.False(t, number.EqualApprox(1.0, 1.1, 1e-9))
	assert.False(t, number.EqualApprox(math.NaN(), math.NaN(), 1e-9))
}
