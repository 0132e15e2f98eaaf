// SPDX-License-Identifier: MIT

package quaternion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ndmath/matrix"
	"github.com/katalvlaran/ndmath/number"
	"github.com/katalvlaran/ndmath/units"
)

// Quaternion is w + xi + yj + zk. The zero value is the zero quaternion.
type Quaternion[T number.Float] struct {
	data matrix.Vector4[T]
}

// New returns w + xi + yj + zk.
func New[T number.Float](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{data: matrix.MustNew[matrix.One, matrix.Four](w, x, y, z)}
}

// Zero returns 0 + 0i + 0j + 0k.
func Zero[T number.Float]() Quaternion[T] { return New[T](0, 0, 0, 0) }

// Identity returns 1 + 0i + 0j + 0k, the rotation that does nothing.
func Identity[T number.Float]() Quaternion[T] { return New[T](1, 0, 0, 0) }

// FromVector3 returns the pure quaternion 0 + v₀i + v₁j + v₂k.
func FromVector3[T number.Float](v matrix.Vector3[T]) Quaternion[T] {
	// Prepend cannot fail: 3+1 = 4 is fixed by the types.
	d, _ := matrix.Prepend[matrix.Four](T(0), v)
	return Quaternion[T]{data: d}
}

// FromVector4 reads (w, x, y, z) from v. v is copied.
func FromVector4[T number.Float](v matrix.Vector4[T]) Quaternion[T] {
	return Quaternion[T]{data: v.Clone()}
}

// FromAxisAngle returns the unit quaternion rotating by angle about axis:
// cos(θ/2) + sin(θ/2)·â, with θ in radians and â the normalized axis.
// Returns ErrZeroAxis for a zero axis.
func FromAxisAngle[T number.Float](angle units.QuantityOf[units.Angle, T], axis matrix.Vector3[T]) (Quaternion[T], error) {
	a, err := matrix.Normalized(axis)
	if err != nil {
		return Quaternion[T]{}, quaternionErrorf(opFromAxisAngle, ErrZeroAxis)
	}
	half := float64(units.CastOf(angle, units.Radians).Value()) / 2
	d, _ := matrix.Prepend[matrix.Four](T(math.Cos(half)), a.Scale(T(math.Sin(half))))

	return Quaternion[T]{data: d}, nil
}

// wxyz unpacks the components; the zero value unpacks to zeros.
func (q Quaternion[T]) wxyz() (w, x, y, z T) {
	d := q.data.Data()
	if d == nil {
		return
	}

	return d[0], d[1], d[2], d[3]
}

// W returns the real part.
func (q Quaternion[T]) W() T { w, _, _, _ := q.wxyz(); return w }

// X returns the i coefficient.
func (q Quaternion[T]) X() T { _, x, _, _ := q.wxyz(); return x }

// Y returns the j coefficient.
func (q Quaternion[T]) Y() T { _, _, y, _ := q.wxyz(); return y }

// Z returns the k coefficient.
func (q Quaternion[T]) Z() T { _, _, _, z := q.wxyz(); return z }

// Vector4 returns (w, x, y, z) as an owning row vector.
func (q Quaternion[T]) Vector4() matrix.Vector4[T] {
	w, x, y, z := q.wxyz()
	return matrix.MustNew[matrix.One, matrix.Four](w, x, y, z)
}

// Vector3 returns the vector part (x, y, z).
func (q Quaternion[T]) Vector3() matrix.Vector3[T] {
	_, x, y, z := q.wxyz()
	return matrix.MustNew[matrix.One, matrix.Three](x, y, z)
}

// Add returns q + o.
func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{data: q.Vector4().Add(o.Vector4())}
}

// Sub returns q - o.
func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{data: q.Vector4().Sub(o.Vector4())}
}

// Scale returns k·q.
func (q Quaternion[T]) Scale(k T) Quaternion[T] {
	return Quaternion[T]{data: q.Vector4().Scale(k)}
}

// DivScalar returns q / k.
func (q Quaternion[T]) DivScalar(k T) Quaternion[T] {
	return Quaternion[T]{data: q.Vector4().DivScalar(k)}
}

// Mul returns the Hamilton product q·o. Mul is not commutative.
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] {
	a0, a1, a2, a3 := q.wxyz()
	b0, b1, b2, b3 := o.wxyz()

	return New(
		a0*b0-a1*b1-a2*b2-a3*b3,
		a0*b1+a1*b0+a2*b3-a3*b2,
		a0*b2-a1*b3+a2*b0+a3*b1,
		a0*b3+a1*b2-a2*b1+a3*b0,
	)
}

// Conjugated returns w - xi - yj - zk.
func (q Quaternion[T]) Conjugated() Quaternion[T] {
	w, x, y, z := q.wxyz()
	return New(w, -x, -y, -z)
}

// SquareNorm returns w² + x² + y² + z².
func (q Quaternion[T]) SquareNorm() T { return matrix.SquareNorm(q.Vector4()) }

// Norm returns the Euclidean norm.
func (q Quaternion[T]) Norm() T { return matrix.Norm(q.Vector4()) }

// Normalized returns q / Norm(q).
// Returns ErrZeroNorm for the zero quaternion.
func (q Quaternion[T]) Normalized() (Quaternion[T], error) {
	v, err := matrix.Normalized(q.Vector4())
	if err != nil {
		return Quaternion[T]{}, quaternionErrorf(opNormalized, ErrZeroNorm)
	}

	return Quaternion[T]{data: v}, nil
}

// IsNormalized reports whether Norm(q) is 1 within tolerance.
func (q Quaternion[T]) IsNormalized(opts ...Option) bool {
	cfg := gatherOptions(opts...)
	return number.EqualApprox(q.Norm(), 1, cfg.tol)
}

// Inverted returns q⁻¹ = Conjugated / SquareNorm, so q·q⁻¹ = 1.
// Returns ErrZeroNorm for the zero quaternion.
func (q Quaternion[T]) Inverted() (Quaternion[T], error) {
	sq := q.SquareNorm()
	if sq == 0 {
		return Quaternion[T]{}, quaternionErrorf(opInverted, ErrZeroNorm)
	}

	return q.Conjugated().DivScalar(sq), nil
}

// Rotate returns the vector part of q·(0, v)·q⁻¹. For a unit q this is v
// rotated by q; a non-unit q rotates the same way since the scale cancels.
// Returns ErrZeroNorm for the zero quaternion.
func (q Quaternion[T]) Rotate(v matrix.Vector3[T]) (matrix.Vector3[T], error) {
	inv, err := q.Inverted()
	if err != nil {
		return matrix.Vector3[T]{}, quaternionErrorf(opRotate, ErrZeroNorm)
	}

	return q.Mul(FromVector3(v)).Mul(inv).Vector3(), nil
}

// Equal reports exact component-wise equality.
func (q Quaternion[T]) Equal(o Quaternion[T]) bool {
	return q.Vector4().Equal(o.Vector4())
}

// ApproxEqual reports component-wise equality within tolerance.
func (q Quaternion[T]) ApproxEqual(o Quaternion[T], opts ...Option) bool {
	cfg := gatherOptions(opts...)
	return q.Vector4().ApproxEqual(o.Vector4(), matrix.WithEpsilon(cfg.tol))
}

// String renders "w + xi + yj + zk" with six decimals.
func (q Quaternion[T]) String() string {
	w, x, y, z := q.wxyz()
	return fmt.Sprintf("%f + %fi + %fj + %fk", w, x, y, z)
}
