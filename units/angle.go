// SPDX-License-Identifier: MIT

package units

import (
	"math"

	"github.com/katalvlaran/ndmath/number"
	"github.com/katalvlaran/ndmath/ratio"
)

// Angles. Each factor is "one unit in radians", a 64-bit approximation of
// a π-based constant, so angle conversions are accurate to about 1e-18
// relative rather than exact.
var (
	Radians = mustUnitOf[Angle]("radian", "rad", ratio.One(), noOffset)
	// π/180, relative error ≈ 5e-19.
	Degrees = mustUnitOf[Angle]("degree", "°", ratio.MustNew(321956420358983237, 18446744073709551600), noOffset)
	// 2π, relative error ≈ 5e-20.
	Revolutions = mustUnitOf[Angle]("revolution", "rev", ratio.MustNew(9223372036854775806, 1467945251641000613), noOffset)
	// π/200, relative error ≈ 2e-18.
	Gons = mustUnitOf[Angle]("gon", "gon", ratio.MustNew(7429763546745767, 472993437787424400), noOffset)
)

// Pi returns π radians.
func Pi[T number.Float]() QuantityOf[Angle, T] {
	return NewOf(T(math.Pi), Radians)
}

// Tau returns 2π radians, one full turn.
func Tau[T number.Float]() QuantityOf[Angle, T] {
	return NewOf(T(2*math.Pi), Radians)
}
