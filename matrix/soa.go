// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ndmath/number"
)

// SoA stores a sequence of N-component column vectors as N parallel
// slices (structure of arrays), so a loop over one component walks
// contiguous memory. The zero value is empty and ready to use.
type SoA[T number.Real, N Dim] struct {
	components [][]T
}

// NewSoA returns an empty SoA with room for capacity vectors.
func NewSoA[T number.Real, N Dim](capacity int) *SoA[T, N] {
	s := &SoA[T, N]{components: make([][]T, sizeOf[N]())}
	for k := range s.components {
		s.components[k] = make([]T, 0, capacity)
	}

	return s
}

func (s *SoA[T, N]) init() {
	if s.components == nil {
		s.components = make([][]T, sizeOf[N]())
	}
}

// Len returns the number of stored vectors.
func (s *SoA[T, N]) Len() int {
	if s.components == nil {
		return 0
	}

	return len(s.components[0])
}

// Append adds v at the end.
func (s *SoA[T, N]) Append(v ColumnVector[T, N]) {
	s.init()
	for k, x := range v.values() {
		s.components[k] = append(s.components[k], x)
	}
}

// At gathers vector i back into a column vector.
// Returns ErrOutOfRange for a bad index.
func (s *SoA[T, N]) At(i int) (ColumnVector[T, N], error) {
	if err := validateIndex(opSoA, i, s.Len()); err != nil {
		return ColumnVector[T, N]{}, err
	}
	out := Zero[T, N, One]()
	for k := range out.data {
		out.data[k] = s.components[k][i]
	}

	return out, nil
}

// Set scatters v into slot i.
func (s *SoA[T, N]) Set(i int, v ColumnVector[T, N]) error {
	if err := validateIndex(opSoA, i, s.Len()); err != nil {
		return err
	}
	for k, x := range v.values() {
		s.components[k][i] = x
	}

	return nil
}

// Component returns the k-th component slice. It aliases the storage
// until the next Append.
func (s *SoA[T, N]) Component(k int) ([]T, error) {
	if k < 0 || k >= sizeOf[N]() {
		return nil, matrixErrorf(opSoA, fmt.Errorf("component %d of %d: %w", k, sizeOf[N](), ErrOutOfRange))
	}
	s.init()

	return s.components[k], nil
}
