// SPDX-License-Identifier: MIT
// Package units: sentinel error set.
// Callers match with errors.Is; context is added with unitsErrorf.

package units

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleDimensions is returned when two units' exponents differ on any axis.
	ErrIncompatibleDimensions = errors.New("units: incompatible dimensions")

	// ErrInvalidRatio is returned when a unit would carry a zero or invalid scale ratio.
	ErrInvalidRatio = errors.New("units: invalid ratio")

	// ErrKindMismatch is returned by AsKind when a unit's exponents differ from the Kind's.
	ErrKindMismatch = errors.New("units: unit does not match kind")

	// ErrUnknownUnit is returned by Registry.Lookup for an unregistered symbol.
	ErrUnknownUnit = errors.New("units: unknown unit")

	// ErrDuplicateSymbol is returned when two registered units share a symbol.
	ErrDuplicateSymbol = errors.New("units: duplicate symbol")
)

// Operation tags for error wrapping.
const (
	opNewUnit    = "NewUnit"
	opConversion = "ConversionRatio"
	opAsKind     = "AsKind"
	opLookup     = "Lookup"
	opRegister   = "Register"
)

// unitsErrorf wraps err with an operation tag, preserving it for errors.Is.
func unitsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
