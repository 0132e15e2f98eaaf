// SPDX-License-Identifier: MIT

package ratio

// SI decimal prefixes, normalized.
var (
	Atto  = Rational{num: 1, den: 1_000_000_000_000_000_000}
	Femto = Rational{num: 1, den: 1_000_000_000_000_000}
	Pico  = Rational{num: 1, den: 1_000_000_000_000}
	Nano  = Rational{num: 1, den: 1_000_000_000}
	Micro = Rational{num: 1, den: 1_000_000}
	Milli = Rational{num: 1, den: 1_000}
	Centi = Rational{num: 1, den: 100}
	Deci  = Rational{num: 1, den: 10}
	Deca  = Rational{num: 10, den: 1}
	Hecto = Rational{num: 100, den: 1}
	Kilo  = Rational{num: 1_000, den: 1}
	Mega  = Rational{num: 1_000_000, den: 1}
	Giga  = Rational{num: 1_000_000_000, den: 1}
	Tera  = Rational{num: 1_000_000_000_000, den: 1}
	Peta  = Rational{num: 1_000_000_000_000_000, den: 1}
	Exa   = Rational{num: 1_000_000_000_000_000_000, den: 1}
)

// IEC binary prefixes.
var (
	Kibi = Rational{num: 1 << 10, den: 1}
	Mebi = Rational{num: 1 << 20, den: 1}
	Gibi = Rational{num: 1 << 30, den: 1}
	Tebi = Rational{num: 1 << 40, den: 1}
	Pebi = Rational{num: 1 << 50, den: 1}
	Exbi = Rational{num: 1 << 60, den: 1}
)
