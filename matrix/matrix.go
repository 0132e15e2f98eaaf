// SPDX-License-Identifier: MIT

// Package matrix - constructors and safe accessors.
//
// Purpose:
//   - Allocate row-major buffers sized from the static shape.
//   - At/Set/Elem/Row return errors instead of panicking.

package matrix

import "github.com/katalvlaran/ndmath/number"

// Zero returns an R×C matrix of zeros.
// Complexity: O(R*C).
func Zero[T number.Real, R, C Dim]() Matrix[T, R, C] {
	return Matrix[T, R, C]{data: make([]T, sizeOf[R]()*sizeOf[C]())}
}

// Identity returns the N×N identity. Non-square identities do not type-check.
func Identity[T number.Real, N Dim]() Matrix[T, N, N] {
	m := Zero[T, N, N]()
	n := sizeOf[N]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// FromSlice copies vals, in row-major order, into a new R×C matrix.
// Returns ErrDimensionMismatch unless len(vals) == R*C.
func FromSlice[T number.Real, R, C Dim](vals []T) (Matrix[T, R, C], error) {
	m := Zero[T, R, C]()
	if err := validateLen(opFromSlice, len(vals), len(m.data)); err != nil {
		return Matrix[T, R, C]{}, err
	}
	copy(m.data, vals)

	return m, nil
}

// New is FromSlice with variadic values; T is inferred, so the shape is
// all a caller spells out:
//
//	m, err := matrix.New[matrix.Two, matrix.Two](1.0, 2, 3, 4)
func New[R, C Dim, T number.Real](vals ...T) (Matrix[T, R, C], error) {
	return FromSlice[T, R, C](vals)
}

// MustNew is New that panics on a length mismatch. Intended for literals.
func MustNew[R, C Dim, T number.Real](vals ...T) Matrix[T, R, C] {
	m, err := New[R, C](vals...)
	if err != nil {
		panic(err)
	}

	return m
}

// FromRows stacks R row vectors into a matrix.
// Returns ErrDimensionMismatch unless exactly R rows are given.
func FromRows[R Dim, T number.Real, C Dim](rows ...Vector[T, C]) (Matrix[T, R, C], error) {
	m := Zero[T, R, C]()
	if err := validateLen(opFromRows, len(rows), sizeOf[R]()); err != nil {
		return Matrix[T, R, C]{}, err
	}
	c := sizeOf[C]()
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row.values())
	}

	return m, nil
}

// Rows returns R's size.
func (m Matrix[T, R, C]) Rows() int { return sizeOf[R]() }

// Cols returns C's size.
func (m Matrix[T, R, C]) Cols() int { return sizeOf[C]() }

// Shape returns (Rows, Cols).
func (m Matrix[T, R, C]) Shape() (rows, cols int) { return sizeOf[R](), sizeOf[C]() }

// values returns the buffer, or a zero buffer for the zero value.
func (m Matrix[T, R, C]) values() []T {
	if m.data == nil {
		return make([]T, sizeOf[R]()*sizeOf[C]())
	}

	return m.data
}

// ensure allocates the buffer of a zero-value matrix. Only m sees the new
// buffer; earlier copies of the zero value keep reading zeros.
func (m *Matrix[T, R, C]) ensure() {
	if m.data == nil {
		m.data = make([]T, sizeOf[R]()*sizeOf[C]())
	}
}

// At returns the element at (i, j).
// Returns ErrOutOfRange for indices outside the shape.
func (m Matrix[T, R, C]) At(i, j int) (T, error) {
	r, c := m.Shape()
	if err := validateCell(opAt, i, j, r, c); err != nil {
		var zero T
		return zero, err
	}
	if m.data == nil {
		return 0, nil
	}

	return m.data[i*c+j], nil
}

// Set writes v at (i, j).
// Returns ErrOutOfRange for indices outside the shape.
func (m *Matrix[T, R, C]) Set(i, j int, v T) error {
	r, c := m.Shape()
	if err := validateCell(opSet, i, j, r, c); err != nil {
		return err
	}
	m.ensure()
	m.data[i*c+j] = v

	return nil
}

// vectorIndex maps a shape-collapsed index onto the flat buffer.
// Both orientations store element i at offset i.
func (m Matrix[T, R, C]) vectorIndex(tag string, i int) (int, error) {
	r, c := m.Shape()
	if r != 1 && c != 1 {
		return 0, matrixErrorf(tag, ErrNotVector)
	}
	if err := validateIndex(tag, i, r*c); err != nil {
		return 0, err
	}

	return i, nil
}

// Elem returns element i of a row or column vector: At(0, i) for a row,
// At(i, 0) for a column.
// Returns ErrNotVector when both dimensions exceed one, ErrOutOfRange for a
// bad index.
func (m Matrix[T, R, C]) Elem(i int) (T, error) {
	k, err := m.vectorIndex(opElem, i)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.values()[k], nil
}

// SetElem writes element i of a row or column vector.
func (m *Matrix[T, R, C]) SetElem(i int, v T) error {
	k, err := m.vectorIndex(opSetElem, i)
	if err != nil {
		return err
	}
	m.ensure()
	m.data[k] = v

	return nil
}

// Row returns a view of row i that aliases m's storage: writes through
// the view change m.
// Returns ErrOutOfRange for a bad row index.
func (m *Matrix[T, R, C]) Row(i int) (RowView[T, C], error) {
	if err := validateIndex(opRow, i, sizeOf[R]()); err != nil {
		return RowView[T, C]{}, err
	}
	m.ensure()
	c := sizeOf[C]()

	return RowView[T, C]{data: m.data[i*c : (i+1)*c : (i+1)*c]}, nil
}

// Data exposes the row-major buffer. Writes are visible to m; the slice
// is nil for a zero-value matrix that was never written.
func (m Matrix[T, R, C]) Data() []T { return m.data }

// Clone returns a deep copy.
func (m Matrix[T, R, C]) Clone() Matrix[T, R, C] {
	out := Zero[T, R, C]()
	copy(out.data, m.data)

	return out
}

// SetZero overwrites every element with zero.
func (m *Matrix[T, R, C]) SetZero() {
	m.ensure()
	number.Zero(m.data)
}
