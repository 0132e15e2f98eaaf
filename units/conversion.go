// SPDX-License-Identifier: MIT

package units

import (
	"fmt"

	"github.com/katalvlaran/ndmath/ratio"
)

// Conversion is the result of ConversionRatio.
type Conversion struct {
	// Ratio multiplies a value in the source unit into the target unit.
	Ratio ratio.Rational
	// Exact is false when 64-bit overflow forced rounded arithmetic.
	Exact bool
}

// ConversionRatio computes the single Rational that converts values in
// from into values in to.
//
// Implementation:
//   - Stage 1: Reject units whose exponents differ on any axis.
//   - Stage 2: Per axis, (from.ratio / to.ratio)^exponent; axes with
//     exponent 0 contribute 1/1 whatever their ratios.
//   - Stage 3: An eighth factor from.factor / to.factor.
//   - Stage 4: Product of all eight, exact if it fits 64 bits, otherwise
//     recomputed with rounding arithmetic.
//
// Offsets are not part of the ratio; see CastAffine.
//
// Complexity: O(NumAxes · log|exponent|).
func ConversionRatio(from, to Unit) (Conversion, error) {
	if !from.Compatible(to) {
		return Conversion{}, unitsErrorf(opConversion,
			fmt.Errorf("%s [%s] -> %s [%s]: %w", from, from.Exponents(), to, to.Exponents(), ErrIncompatibleDimensions))
	}
	if r, err := exactRatio(from, to); err == nil {
		return Conversion{Ratio: r, Exact: true}, nil
	}
	return Conversion{Ratio: roundedRatio(from, to), Exact: false}, nil
}

func exactRatio(from, to Unit) (ratio.Rational, error) {
	var factors [NumAxes + 1]ratio.Rational
	for i := range NumAxes {
		fd, td := from.dims[i], to.dims[i]
		if fd.Exponent == 0 {
			factors[i] = ratio.One()
			continue
		}
		q, err := fd.scale().DivExact(td.scale())
		if err != nil {
			return ratio.Rational{}, err
		}
		if factors[i], err = q.PowExact(fd.Exponent); err != nil {
			return ratio.Rational{}, err
		}
	}
	f, err := from.Factor().DivExact(to.Factor())
	if err != nil {
		return ratio.Rational{}, err
	}
	factors[NumAxes] = f
	return ratio.ProductExact(factors[:]...)
}

func roundedRatio(from, to Unit) ratio.Rational {
	var factors [NumAxes + 1]ratio.Rational
	for i := range NumAxes {
		fd, td := from.dims[i], to.dims[i]
		if fd.Exponent == 0 {
			factors[i] = ratio.One()
			continue
		}
		factors[i] = fd.scale().Div(td.scale()).Pow(fd.Exponent)
	}
	factors[NumAxes] = from.Factor().Div(to.Factor())
	return ratio.Product(factors[:]...)
}
