// SPDX-License-Identifier: MIT

package units

import "github.com/katalvlaran/ndmath/ratio"

// Temperatures. Offsets are in the unit's own degrees:
// K = (°C + 273.15) and K = (°F + 459.67) · 5/9.
// Cast ignores them (differences); CastAffine applies them (readings).
var (
	Kelvin     = mustUnitOf[Temperature]("kelvin", "K", ratio.One(), noOffset)
	Celsius    = mustUnitOf[Temperature]("degree Celsius", "°C", ratio.One(), ratio.MustNew(27315, 100))
	Fahrenheit = mustUnitOf[Temperature]("degree Fahrenheit", "°F", ratio.MustNew(5, 9), ratio.MustNew(45967, 100))
	Rankine    = mustUnitOf[Temperature]("degree Rankine", "°R", ratio.MustNew(5, 9), noOffset)
)
