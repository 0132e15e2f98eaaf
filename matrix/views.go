// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/ndmath/number"

// RowView is a non-owning window onto one row of a Matrix. It stays valid
// as long as the matrix buffer does and never reallocates it.
type RowView[T number.Real, C Dim] struct {
	data []T
}

// Len returns C's size.
func (v RowView[T, C]) Len() int { return sizeOf[C]() }

// At returns element j of the row.
func (v RowView[T, C]) At(j int) (T, error) {
	if err := validateIndex(opAt, j, len(v.data)); err != nil {
		var zero T
		return zero, err
	}

	return v.data[j], nil
}

// Set writes element j of the row, and so of the owning matrix.
func (v RowView[T, C]) Set(j int, x T) error {
	if err := validateIndex(opSet, j, len(v.data)); err != nil {
		return err
	}
	v.data[j] = x

	return nil
}

// Vector copies the row out as an owning row vector.
func (v RowView[T, C]) Vector() Vector[T, C] {
	out := Zero[T, One, C]()
	copy(out.data, v.data)

	return out
}

// Assign overwrites the row with src.
func (v RowView[T, C]) Assign(src Vector[T, C]) {
	copy(v.data, src.values())
}
