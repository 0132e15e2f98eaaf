// SPDX-License-Identifier: MIT

// Package matrix - element-wise algebra, transposition and the product.
//
// Determinism:
//   - Fixed loop orders; Mul accumulates in i→k→j order into a zeroed buffer.

package matrix

import "github.com/katalvlaran/ndmath/number"

// Add returns m + o.
func (m Matrix[T, R, C]) Add(o Matrix[T, R, C]) Matrix[T, R, C] {
	out := m.Clone()
	out.AddInPlace(o)

	return out
}

// Sub returns m - o.
func (m Matrix[T, R, C]) Sub(o Matrix[T, R, C]) Matrix[T, R, C] {
	out := m.Clone()
	out.SubInPlace(o)

	return out
}

// Scale returns k·m.
func (m Matrix[T, R, C]) Scale(k T) Matrix[T, R, C] {
	out := m.Clone()
	out.ScaleInPlace(k)

	return out
}

// DivScalar returns m / k. Integer kinds divide per element and truncate.
func (m Matrix[T, R, C]) DivScalar(k T) Matrix[T, R, C] {
	out := m.Clone()
	out.DivScalarInPlace(k)

	return out
}

// Neg returns -m. For unsigned kinds this wraps modulo 2ⁿ.
func (m Matrix[T, R, C]) Neg() Matrix[T, R, C] {
	out := m.Clone()
	for i := range out.data {
		out.data[i] = -out.data[i]
	}

	return out
}

// AddInPlace sets m = m + o.
func (m *Matrix[T, R, C]) AddInPlace(o Matrix[T, R, C]) {
	m.ensure()
	if o.data == nil {
		return
	}
	for i := range m.data {
		m.data[i] += o.data[i]
	}
}

// SubInPlace sets m = m - o.
func (m *Matrix[T, R, C]) SubInPlace(o Matrix[T, R, C]) {
	m.ensure()
	if o.data == nil {
		return
	}
	for i := range m.data {
		m.data[i] -= o.data[i]
	}
}

// ScaleInPlace sets m = k·m.
func (m *Matrix[T, R, C]) ScaleInPlace(k T) {
	m.ensure()
	for i := range m.data {
		m.data[i] *= k
	}
}

// DivScalarInPlace sets m = m / k.
func (m *Matrix[T, R, C]) DivScalarInPlace(k T) {
	m.ensure()
	for i := range m.data {
		m.data[i] /= k
	}
}

// Transposed returns the C×R transpose.
// Complexity: O(R*C).
func (m Matrix[T, R, C]) Transposed() Matrix[T, C, R] {
	r, c := m.Shape()
	src := m.values()
	out := Zero[T, C, R]()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[j*r+i] = src[i*c+j]
		}
	}

	return out
}

// Equal reports exact element-wise equality.
func (m Matrix[T, R, C]) Equal(o Matrix[T, R, C]) bool {
	a, b := m.values(), o.values()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports element-wise equality within the configured
// epsilon (absolute or relative, DefaultEpsilon unless WithEpsilon).
func (m Matrix[T, R, C]) ApproxEqual(o Matrix[T, R, C], opts ...Option) bool {
	cfg := gatherOptions(opts...)
	a, b := m.values(), o.values()
	for i := range a {
		if !number.EqualApprox(a[i], b[i], cfg.eps) {
			return false
		}
	}

	return true
}

// Mul returns the L×N product of an L×M and an M×N matrix. Operands whose
// inner sizes disagree do not type-check.
//
// Implementation:
//   - Stage 1: allocate a zeroed L×N accumulator.
//   - Stage 2: for i, for k, for j: out[i][j] += a[i][k]·b[k][j].
//
// Complexity: O(L*M*N) time, O(L*N) space.
func Mul[T number.Real, L, M, N Dim](a Matrix[T, L, M], b Matrix[T, M, N]) Matrix[T, L, N] {
	out := Zero[T, L, N]()
	mulKernel(out.data, a.values(), b.values(), sizeOf[L](), sizeOf[M](), sizeOf[N]())

	return out
}

// MulInto writes a·b into dst, reusing dst's buffer when it has one.
// dst may alias a or b (m = m·o is fine): the product is then formed in a
// scratch buffer and copied back.
func MulInto[T number.Real, L, M, N Dim](dst *Matrix[T, L, N], a Matrix[T, L, M], b Matrix[T, M, N]) {
	dst.ensure()
	av, bv := a.values(), b.values()
	target := dst.data
	if overlaps(target, av) || overlaps(target, bv) {
		target = make([]T, len(dst.data))
	} else {
		number.Zero(target)
	}
	mulKernel(target, av, bv, sizeOf[L](), sizeOf[M](), sizeOf[N]())
	if &target[0] != &dst.data[0] {
		copy(dst.data, target)
	}
}

// mulKernel accumulates a(l×m)·b(m×n) into the zeroed out(l×n).
func mulKernel[T number.Real](out, a, b []T, l, m, n int) {
	for i := 0; i < l; i++ {
		row := out[i*n : (i+1)*n]
		for k := 0; k < m; k++ {
			aik := a[i*m+k]
			bk := b[k*n : (k+1)*n]
			for j := range row {
				row[j] += aik * bk[j]
			}
		}
	}
}

// overlaps reports whether two non-empty slices share their first element.
// Matrix buffers are only ever shared whole, so this is sufficient.
func overlaps[T any](x, y []T) bool {
	return len(x) > 0 && len(y) > 0 && &x[0] == &y[0]
}
