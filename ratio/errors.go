// SPDX-License-Identifier: MIT
// Package ratio: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with an
// operation tag); tests match them with errors.Is.

package ratio

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDenominator is returned when a Rational would be built with den == 0.
	ErrZeroDenominator = errors.New("ratio: zero denominator")

	// ErrDivisionByZero is returned when dividing by, or inverting, a zero Rational.
	ErrDivisionByZero = errors.New("ratio: division by zero")

	// ErrOverflow is returned by the Exact API when a normalized result does
	// not fit into 64-bit numerator/denominator.
	ErrOverflow = errors.New("ratio: 64-bit overflow")

	// ErrSyntax is returned by Parse for malformed input.
	ErrSyntax = errors.New("ratio: invalid syntax")
)

// Operation tags for error wrapping.
const (
	opNew   = "New"
	opMul   = "Mul"
	opDiv   = "Div"
	opPow   = "Pow"
	opInv   = "Reciprocal"
	opParse = "Parse"
)

// ratioErrorf wraps err with an operation tag, preserving it for errors.Is.
func ratioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
