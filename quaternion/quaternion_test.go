// SPDX-License-Identifier: MIT
// Package quaternion_test contains unit tests for quaternion algebra and rotations.
package quaternion_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndmath/matrix"
	"github.com/katalvlaran/ndmath/quaternion"
	"github.com/katalvlaran/ndmath/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec3(x, y, z float64) matrix.Vector3d {
	return matrix.MustNew[matrix.One, matrix.Three](x, y, z)
}

// TestConstructors covers New, Zero, Identity and the vector bridges.
func TestConstructors(t *testing.T) {
	q := quaternion.New(1.0, 2, 3, 4)
	assert.Equal(t, 1.0, q.W())
	assert.Equal(t, 2.0, q.X())
	assert.Equal(t, 3.0, q.Y())
	assert.Equal(t, 4.0, q.Z())
	assert.Equal(t, []float64{1, 2, 3, 4}, q.Vector4().Data())
	assert.Equal(t, []float64{2, 3, 4}, q.Vector3().Data())

	assert.True(t, quaternion.Zero[float64]().Equal(quaternion.Quaternion[float64]{}), "zero value is the zero quaternion")
	assert.Equal(t, 1.0, quaternion.Identity[float64]().Norm())

	p := quaternion.FromVector3(vec3(5, 6, 7))
	assert.Equal(t, []float64{0, 5, 6, 7}, p.Vector4().Data())

	v4 := matrix.MustNew[matrix.One, matrix.Four](9.0, 8, 7, 6)
	f := quaternion.FromVector4(v4)
	require.NoError(t, v4.SetElem(0, -1))
	assert.Equal(t, 9.0, f.W(), "FromVector4 copies its input")
}

// TestMul_Hamilton checks the product table and a worked example.
func TestMul_Hamilton(t *testing.T) {
	i := quaternion.New(0.0, 1, 0, 0)
	j := quaternion.New(0.0, 0, 1, 0)
	k := quaternion.New(0.0, 0, 0, 1)
	minusOne := quaternion.New(-1.0, 0, 0, 0)

	assert.True(t, i.Mul(j).Equal(k), "ij = k")
	assert.True(t, j.Mul(i).Equal(k.Scale(-1)), "ji = -k")
	assert.True(t, i.Mul(i).Equal(minusOne))
	assert.True(t, i.Mul(j).Mul(k).Equal(minusOne), "ijk = -1")

	got := quaternion.New[float32](1, 2, 3, 4).Mul(quaternion.New[float32](5, 6, 7, 8))
	assert.True(t, got.Equal(quaternion.New[float32](-60, 12, 30, 24)))
}

// TestAlgebra covers Add, Sub, DivScalar, Conjugated and norms.
func TestAlgebra(t *testing.T) {
	a := quaternion.New(1.0, 2, 3, 4)
	b := quaternion.New(0.5, -1, 0, 2)
	assert.True(t, a.Add(b).Equal(quaternion.New(1.5, 1, 3, 6)))
	assert.True(t, a.Sub(b).Equal(quaternion.New(0.5, 3, 3, 2)))
	assert.True(t, a.DivScalar(2).Equal(quaternion.New(0.5, 1, 1.5, 2)))
	assert.True(t, a.Conjugated().Equal(quaternion.New(1.0, -2, -3, -4)))

	assert.Equal(t, 30.0, a.SquareNorm())
	assert.InDelta(t, math.Sqrt(30), a.Norm(), 1e-15)
	assert.False(t, a.IsNormalized())

	n, err := a.Normalized()
	require.NoError(t, err)
	assert.True(t, n.IsNormalized())
}

// TestInverted: q·q⁻¹ = q⁻¹·q = 1, also for non-unit q.
func TestInverted(t *testing.T) {
	q := quaternion.New(1.0, 2, 3, 4)
	inv, err := q.Inverted()
	require.NoError(t, err)
	assert.True(t, q.Mul(inv).ApproxEqual(quaternion.Identity[float64](), quaternion.WithTolerance(1e-12)))
	assert.True(t, inv.Mul(q).ApproxEqual(quaternion.Identity[float64](), quaternion.WithTolerance(1e-12)))
}

// TestZeroNorm: the zero quaternion cannot be normalized, inverted or rotate.
func TestZeroNorm(t *testing.T) {
	z := quaternion.Zero[float64]()
	_, err := z.Normalized()
	assert.ErrorIs(t, err, quaternion.ErrZeroNorm)
	_, err = z.Inverted()
	assert.ErrorIs(t, err, quaternion.ErrZeroNorm)
	_, err = z.Rotate(vec3(1, 0, 0))
	assert.ErrorIs(t, err, quaternion.ErrZeroNorm)
}

// TestFromAxisAngle rotates +z a quarter turn about +x onto -y, whatever
// the angle unit.
func TestFromAxisAngle(t *testing.T) {
	angles := []units.QuantityOf[units.Angle, float64]{
		units.NewOf(math.Pi/2, units.Radians),
		units.NewOf(90.0, units.Degrees),
		units.NewOf(100.0, units.Gons),
		units.NewOf(0.25, units.Revolutions),
	}
	for _, angle := range angles {
		q, err := quaternion.FromAxisAngle(angle, vec3(2, 0, 0))
		require.NoError(t, err)
		assert.True(t, q.IsNormalized(), "axis is normalized first")

		r, err := q.Rotate(vec3(0, 0, 1))
		require.NoError(t, err)
		assert.True(t, r.ApproxEqual(vec3(0, -1, 0), matrix.WithEpsilon(1e-12)), "%s: got %v", angle, r)
	}

	_, err := quaternion.FromAxisAngle(units.NewOf(1.0, units.Radians), vec3(0, 0, 0))
	assert.ErrorIs(t, err, quaternion.ErrZeroAxis)
}

// TestRotate_RoundTrip: rotating by q then by q⁻¹ restores the vector.
func TestRotate_RoundTrip(t *testing.T) {
	q, err := quaternion.FromAxisAngle(units.NewOf(37.0, units.Degrees), vec3(1, -2, 0.5))
	require.NoError(t, err)
	inv, err := q.Inverted()
	require.NoError(t, err)

	for _, v := range []matrix.Vector3d{vec3(1, 0, 0), vec3(0.3, -4, 2), vec3(-7, 7, 7)} {
		r, err := q.Rotate(v)
		require.NoError(t, err)
		assert.InDelta(t, matrix.Norm(v), matrix.Norm(r), 1e-12, "rotation preserves length")

		back, err := inv.Rotate(r)
		require.NoError(t, err)
		assert.True(t, back.ApproxEqual(v, matrix.WithEpsilon(1e-12)))
	}
}

// TestToRotationMatrix agrees with Rotate and rejects non-unit input.
func TestToRotationMatrix(t *testing.T) {
	q, err := quaternion.FromAxisAngle(units.NewOf(1.1, units.Radians), vec3(0.2, 1, -0.4))
	require.NoError(t, err)
	m, err := q.ToRotationMatrix()
	require.NoError(t, err)

	v := vec3(1.5, -0.5, 2)
	want, err := q.Rotate(v)
	require.NoError(t, err)
	got := matrix.Mul(matrix.Resize[matrix.Three, matrix.Three](m), v.Transposed()).Transposed()
	assert.True(t, got.ApproxEqual(want, matrix.WithEpsilon(1e-12)))

	last, _ := m.At(3, 3)
	assert.Equal(t, 1.0, last)

	id, err := quaternion.Identity[float64]().ToRotationMatrix()
	require.NoError(t, err)
	assert.True(t, id.Equal(matrix.Identity[float64, matrix.Four]()))

	_, err = quaternion.New(1.0, 1, 0, 0).ToRotationMatrix()
	assert.ErrorIs(t, err, quaternion.ErrNotUnit)
	_, err = quaternion.New(1.0+1e-4, 0, 0, 0).ToRotationMatrix(quaternion.WithTolerance(1e-3))
	assert.NoError(t, err)
}

// TestFromRotationMatrix round-trips through every branch of the extraction.
func TestFromRotationMatrix(t *testing.T) {
	cases := []struct {
		name  string
		angle float64
		axis  matrix.Vector3d
	}{
		{"positive trace", 0.7, vec3(1, 2, 3)},
		{"half turn x", math.Pi, vec3(1, 0, 0)},
		{"half turn y", math.Pi, vec3(0, 1, 0)},
		{"half turn z", math.Pi, vec3(0, 0, 1)},
		{"large angle", 3.0, vec3(-1, 0.5, 0.2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := quaternion.FromAxisAngle(units.NewOf(tc.angle, units.Radians), tc.axis)
			require.NoError(t, err)
			m, err := q.ToRotationMatrix()
			require.NoError(t, err)

			back := quaternion.FromRotationMatrix(m)
			assert.True(t, back.IsNormalized())
			same := back.ApproxEqual(q, quaternion.WithTolerance(1e-9)) ||
				back.ApproxEqual(q.Scale(-1), quaternion.WithTolerance(1e-9))
			assert.True(t, same, "q=%s back=%s", q, back)
		})
	}
}

// TestString uses six decimals per component.
func TestString(t *testing.T) {
	assert.Equal(t, "1.000000 + 2.000000i + 3.000000j + 4.000000k", quaternion.New(1.0, 2, 3, 4).String())
	assert.Equal(t, "0.000000 + 0.000000i + 0.000000j + 0.000000k", quaternion.Quaternion[float32]{}.String())
}

// TestWithTolerance_Panics: nonsensical tolerances fail fast.
func TestWithTolerance_Panics(t *testing.T) {
	assert.Panics(t, func() { quaternion.WithTolerance(-1) })
	assert.Panics(t, func() { quaternion.WithTolerance(math.NaN()) })
}
