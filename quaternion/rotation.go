// SPDX-License-Identifier: MIT

package quaternion

import (
	"math"

	"github.com/katalvlaran/ndmath/matrix"
	"github.com/katalvlaran/ndmath/number"
)

// ToRotationMatrix returns the homogeneous 4×4 rotation matrix of a unit
// quaternion (rotation in the top-left 3×3 block, 1 at (3,3)).
//
// Errors:
//   - ErrNotUnit when Norm(q) differs from 1 beyond the tolerance.
func (q Quaternion[T]) ToRotationMatrix(opts ...Option) (matrix.Matrix4x4[T], error) {
	if !q.IsNormalized(opts...) {
		return matrix.Matrix4x4[T]{}, quaternionErrorf(opToRotation, ErrNotUnit)
	}
	w, x, y, z := q.wxyz()

	return matrix.MustNew[matrix.Four, matrix.Four](
		1-2*(number.Pow2(y)+number.Pow2(z)), 2*(x*y-z*w), 2*(x*z+y*w), 0,
		2*(x*y+z*w), 1-2*(number.Pow2(x)+number.Pow2(z)), 2*(y*z-x*w), 0,
		2*(x*z-y*w), 2*(y*z+x*w), 1-2*(number.Pow2(x)+number.Pow2(y)), 0,
		0, 0, 0, 1,
	), nil
}

// FromRotationMatrix recovers the unit quaternion of the rotation held in
// the top-left 3×3 block of m. q and -q describe the same rotation; which
// one is returned depends on the largest diagonal term.
//
// Implementation:
//   - Stage 1: pick the largest of trace, m00, m11, m22 to keep the
//     square root away from zero.
//   - Stage 2: read the other three components from the off-diagonal
//     sums and differences.
//   - Stage 3: normalize to absorb rounding.
func FromRotationMatrix[T number.Float](m matrix.Matrix4x4[T]) Quaternion[T] {
	at := func(i, j int) float64 {
		v, _ := m.At(i, j)
		return float64(v)
	}
	m00, m01, m02 := at(0, 0), at(0, 1), at(0, 2)
	m10, m11, m12 := at(1, 0), at(1, 1), at(1, 2)
	m20, m21, m22 := at(2, 0), at(2, 1), at(2, 2)

	var w, x, y, z float64
	switch trace := m00 + m11 + m22; {
	case trace > 0:
		s := 2 * math.Sqrt(trace+1)
		w, x, y, z = s/4, (m21-m12)/s, (m02-m20)/s, (m10-m01)/s
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		w, x, y, z = (m21-m12)/s, s/4, (m01+m10)/s, (m02+m20)/s
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		w, x, y, z = (m02-m20)/s, (m01+m10)/s, s/4, (m12+m21)/s
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		w, x, y, z = (m10-m01)/s, (m02+m20)/s, (m12+m21)/s, s/4
	}

	q := New(T(w), T(x), T(y), T(z))
	if n, err := q.Normalized(); err == nil {
		return n
	}

	return q
}
