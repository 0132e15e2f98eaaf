// SPDX-License-Identifier: MIT
// Package quaternion: sentinel error set.

package quaternion

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroNorm is returned when normalizing or inverting the zero quaternion.
	ErrZeroNorm = errors.New("quaternion: zero norm")

	// ErrZeroAxis is returned by FromAxisAngle for a zero rotation axis.
	ErrZeroAxis = errors.New("quaternion: zero rotation axis")

	// ErrNotUnit is returned by ToRotationMatrix for a quaternion whose norm is not 1 within tolerance.
	ErrNotUnit = errors.New("quaternion: not a unit quaternion")
)

// Operation tags for error wrapping.
const (
	opNormalized    = "Normalized"
	opInverted      = "Inverted"
	opRotate        = "Rotate"
	opFromAxisAngle = "FromAxisAngle"
	opToRotation    = "ToRotationMatrix"
)

// quaternionErrorf wraps err with an operation tag.
func quaternionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
