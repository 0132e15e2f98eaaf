// SPDX-License-Identifier: MIT

package units

import "github.com/katalvlaran/ndmath/ratio"

// Masses. The pound is the international avoirdupois pound.
var (
	Milligram = mustUnitOf[Mass]("milligram", "mg", ratio.Micro, noOffset)
	Gram      = mustUnitOf[Mass]("gram", "g", ratio.Milli, noOffset)
	Kilogram  = mustUnitOf[Mass]("kilogram", "kg", ratio.One(), noOffset)
	Tonne     = mustUnitOf[Mass]("tonne", "t", ratio.Kilo, noOffset)
	Pound     = mustUnitOf[Mass]("pound", "lb", ratio.MustNew(45359237, 100_000_000), noOffset)
	Ounce     = mustUnitOf[Mass]("ounce", "oz", ratio.MustNew(45359237, 1_600_000_000), noOffset)
)
