// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for index and length checks.
//   - Return wrapped sentinels so call sites stay one line.

package matrix

import "fmt"

// validateIndex checks 0 <= i < n.
func validateIndex(tag string, i, n int) error {
	if i < 0 || i >= n {
		return matrixErrorf(tag, fmt.Errorf("index %d not in [0,%d): %w", i, n, ErrOutOfRange))
	}

	return nil
}

// validateCell checks a (row, col) pair against an r×c shape.
func validateCell(tag string, i, j, r, c int) error {
	if i < 0 || i >= r || j < 0 || j >= c {
		return matrixErrorf(tag, fmt.Errorf("(%d,%d) not in %dx%d: %w", i, j, r, c, ErrOutOfRange))
	}

	return nil
}

// validateLen checks that runtime-sized input has exactly want elements.
func validateLen(tag string, got, want int) error {
	if got != want {
		return matrixErrorf(tag, fmt.Errorf("got %d values, want %d: %w", got, want, ErrDimensionMismatch))
	}

	return nil
}
