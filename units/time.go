// SPDX-License-Identifier: MIT

package units

import "github.com/katalvlaran/ndmath/ratio"

// Durations.
var (
	Nanosecond  = mustUnitOf[Time]("nanosecond", "ns", ratio.Nano, noOffset)
	Microsecond = mustUnitOf[Time]("microsecond", "μs", ratio.Micro, noOffset)
	Millisecond = mustUnitOf[Time]("millisecond", "ms", ratio.Milli, noOffset)
	Second      = mustUnitOf[Time]("second", "s", ratio.One(), noOffset)
	Minute      = mustUnitOf[Time]("minute", "min", ratio.Int(60), noOffset)
	Hour        = mustUnitOf[Time]("hour", "h", ratio.Int(3600), noOffset)
	Day         = mustUnitOf[Time]("day", "d", ratio.Int(86400), noOffset)
)
