// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/ndmath/number"
)

// SquareNorm returns Σ vᵢ².
func SquareNorm[T number.Real, N Dim](v Vector[T, N]) T {
	return Dot(v, v)
}

// Dot returns Σ aᵢ·bᵢ.
func Dot[T number.Real, N Dim](a, b Vector[T, N]) T {
	av, bv := a.values(), b.values()
	var sum T
	for i := range av {
		sum += av[i] * bv[i]
	}

	return sum
}

// Norm returns the Euclidean length.
func Norm[T number.Float, N Dim](v Vector[T, N]) T {
	return T(math.Sqrt(float64(SquareNorm(v))))
}

// Normalized returns v / Norm(v).
// Returns ErrZeroNorm for the zero vector.
func Normalized[T number.Float, N Dim](v Vector[T, N]) (Vector[T, N], error) {
	n := Norm(v)
	if n == 0 {
		return Vector[T, N]{}, matrixErrorf(opNormalize, ErrZeroNorm)
	}

	return v.DivScalar(n), nil
}

// Cross returns the cross product of two 3-vectors.
func Cross[T number.Real](a, b Vector3[T]) Vector3[T] {
	x, y := a.values(), b.values()
	out := Zero[T, One, Three]()
	out.data[0] = x[1]*y[2] - x[2]*y[1]
	out.data[1] = x[2]*y[0] - x[0]*y[2]
	out.data[2] = x[0]*y[1] - x[1]*y[0]

	return out
}

// Scalar unwraps a 1×1 matrix, e.g. the product of a row and a column.
func Scalar[T number.Real](m Matrix[T, One, One]) T {
	return m.values()[0]
}

// Prepend builds an M-vector from s followed by the N elements of v.
// Returns ErrDimensionMismatch unless M = N+1.
//
//	v4, err := matrix.Prepend[matrix.Four](0.0, v3)
func Prepend[M Dim, T number.Real, N Dim](s T, v Vector[T, N]) (Vector[T, M], error) {
	out := Zero[T, One, M]()
	if err := prependInto(out.data, s, v.values()); err != nil {
		return Vector[T, M]{}, err
	}

	return out, nil
}

// PrependColumn is Prepend for column vectors.
func PrependColumn[M Dim, T number.Real, N Dim](s T, v ColumnVector[T, N]) (ColumnVector[T, M], error) {
	out := Zero[T, M, One]()
	if err := prependInto(out.data, s, v.values()); err != nil {
		return ColumnVector[T, M]{}, err
	}

	return out, nil
}

func prependInto[T number.Real](dst []T, s T, src []T) error {
	if err := validateLen(opPrepend, len(src)+1, len(dst)); err != nil {
		return err
	}
	dst[0] = s
	copy(dst[1:], src)

	return nil
}

// Resize returns an R2×C2 matrix holding the overlapping top-left block of
// m; cells outside m are zero. Only the target shape needs spelling out:
//
//	m4 := matrix.Resize[matrix.Four, matrix.Four](m3)
func Resize[R2, C2 Dim, T number.Real, R, C Dim](m Matrix[T, R, C]) Matrix[T, R2, C2] {
	out := Zero[T, R2, C2]()
	r, c := m.Shape()
	r2, c2 := out.Shape()
	src := m.values()
	for i := 0; i < min(r, r2); i++ {
		copy(out.data[i*c2:i*c2+min(c, c2)], src[i*c:i*c+min(c, c2)])
	}

	return out
}
