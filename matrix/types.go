// SPDX-License-Identifier: MIT

// Package matrix: shape types, the Matrix handle and its aliases.
// This file contains ONLY type declarations and shape helpers; constructors
// and accessors live in matrix.go, algebra in arith.go and vector.go.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/ndmath/number"
)

// Dim is a compile-time dimension. Size must return the same positive
// value for every value of the type; the empty structs below are the
// intended shape.
type Dim interface {
	Size() int
}

// Predefined dimensions.
type (
	One   struct{}
	Two   struct{}
	Three struct{}
	Four  struct{}
)

func (One) Size() int   { return 1 }
func (Two) Size() int   { return 2 }
func (Three) Size() int { return 3 }
func (Four) Size() int  { return 4 }

// sizeOf returns D's size, panicking on a non-positive one (a broken Dim
// implementation is a programmer error).
func sizeOf[D Dim]() int {
	var d D
	n := d.Size()
	if n <= 0 {
		panic(fmt.Sprintf("matrix: %T.Size() = %d, want > 0", d, n))
	}

	return n
}

// Matrix is an R×C matrix of T in row-major order.
// Assignment copies the handle, not the elements: copies of an allocated
// matrix share storage, copies of the zero value do not (see the package
// documentation). Use Clone for an independent copy.
type Matrix[T number.Real, R, C Dim] struct {
	data []T
}

// Vector is a row vector of N elements.
type Vector[T number.Real, N Dim] = Matrix[T, One, N]

// ColumnVector is a column vector of N elements.
type ColumnVector[T number.Real, N Dim] = Matrix[T, N, One]

// Fixed-size vectors.
type (
	Vector2[T number.Real]       = Vector[T, Two]
	Vector3[T number.Real]       = Vector[T, Three]
	Vector4[T number.Real]       = Vector[T, Four]
	ColumnVector2[T number.Real] = ColumnVector[T, Two]
	ColumnVector3[T number.Real] = ColumnVector[T, Three]
	ColumnVector4[T number.Real] = ColumnVector[T, Four]
)

// Square matrices.
type (
	Matrix2x2[T number.Real] = Matrix[T, Two, Two]
	Matrix3x3[T number.Real] = Matrix[T, Three, Three]
	Matrix4x4[T number.Real] = Matrix[T, Four, Four]
)

// Short aliases: f = float32, d = float64, i = int32.
type (
	Vector2f = Vector2[float32]
	Vector3f = Vector3[float32]
	Vector4f = Vector4[float32]
	Vector2d = Vector2[float64]
	Vector3d = Vector3[float64]
	Vector4d = Vector4[float64]
	Vector2i = Vector2[int32]
	Vector3i = Vector3[int32]
	Vector4i = Vector4[int32]

	Matrix2x2f = Matrix2x2[float32]
	Matrix3x3f = Matrix3x3[float32]
	Matrix4x4f = Matrix4x4[float32]
	Matrix2x2d = Matrix2x2[float64]
	Matrix3x3d = Matrix3x3[float64]
	Matrix4x4d = Matrix4x4[float64]
)
