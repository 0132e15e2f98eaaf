// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (possibly wrapped with an operation
// tag via matrixErrorf); callers match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that an index (row, column or element) is outside valid bounds.
	// Public indexers (At/Set/Elem/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that runtime-sized input (a slice, a row
	// list, a prepend target) does not match the static shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotVector is returned by Elem/SetElem on a matrix with more than one row and column.
	ErrNotVector = errors.New("matrix: not a vector")

	// ErrZeroNorm is returned when normalizing a vector of zero length.
	ErrZeroNorm = errors.New("matrix: zero norm")
)

// Operation tags for error wrapping.
const (
	opAt        = "At"
	opSet       = "Set"
	opElem      = "Elem"
	opSetElem   = "SetElem"
	opRow       = "Row"
	opFromSlice = "FromSlice"
	opFromRows  = "FromRows"
	opPrepend   = "Prepend"
	opNormalize = "Normalized"
	opSoA       = "SoA"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
