// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry maps unit symbols to runtime Units. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	bySymbol map[string]Unit
	byName   map[string]Unit
}

// NewRegistry indexes us by symbol.
// Units with an empty symbol are skipped.
// Returns ErrDuplicateSymbol when two units share a symbol.
func NewRegistry(us ...Unit) (*Registry, error) {
	r := &Registry{bySymbol: make(map[string]Unit, len(us)), byName: make(map[string]Unit, len(us))}
	for _, u := range us {
		if u.symbol == "" {
			continue
		}
		if _, dup := r.bySymbol[u.symbol]; dup {
			return nil, unitsErrorf(opRegister, fmt.Errorf("%q: %w", u.symbol, ErrDuplicateSymbol))
		}
		r.bySymbol[u.symbol] = u
		if u.name != "" {
			r.byName[u.name] = u
		}
	}
	return r, nil
}

// Lookup returns the unit registered under symbol, falling back to a
// match on the long name ("degree" for "°").
// Returns ErrUnknownUnit if there is none.
func (r *Registry) Lookup(symbol string) (Unit, error) {
	u, ok := r.bySymbol[symbol]
	if !ok {
		u, ok = r.byName[symbol]
	}
	if !ok {
		return Unit{}, unitsErrorf(opLookup, fmt.Errorf("%q: %w", symbol, ErrUnknownUnit))
	}
	return u, nil
}

// Symbols returns every registered symbol, sorted.
func (r *Registry) Symbols() []string {
	return slices.Sorted(maps.Keys(r.bySymbol))
}

// Len returns the number of registered units.
func (r *Registry) Len() int { return len(r.bySymbol) }

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(predefined()...)
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the registry of every predefined unit. Aliases (Fermi,
// Micron, Mil) are reachable through their primary symbol.
func Default() *Registry { return defaultRegistry() }

// Lookup is Default().Lookup.
func Lookup(symbol string) (Unit, error) { return Default().Lookup(symbol) }

// Symbols is Default().Symbols.
func Symbols() []string { return Default().Symbols() }

func predefined() []Unit {
	return []Unit{
		Femtometer.Unit, Picometer.Unit, Angstrom.Unit, Nanometer.Unit, MilliMicron.Unit,
		Micrometer.Unit, Millimeter.Unit, Centimeter.Unit, Decimeter.Unit, Meter.Unit,
		Decameter.Unit, Hectometer.Unit, Kilometer.Unit,
		Inch.Unit, Thou.Unit, Foot.Unit, Yard.Unit, Mile.Unit, NauticalMile.Unit,
		Radians.Unit, Degrees.Unit, Revolutions.Unit, Gons.Unit,
		Milligram.Unit, Gram.Unit, Kilogram.Unit, Tonne.Unit, Pound.Unit, Ounce.Unit,
		Nanosecond.Unit, Microsecond.Unit, Millisecond.Unit, Second.Unit, Minute.Unit, Hour.Unit, Day.Unit,
		Kelvin.Unit, Celsius.Unit, Fahrenheit.Unit, Rankine.Unit,
		Ampere.Unit, Milliampere.Unit, Mole.Unit, Candela.Unit,
		SquareMillimeter.Unit, SquareMeter.Unit, Hectare.Unit, SquareKilometer.Unit,
		Milliliter.Unit, Liter.Unit, CubicMeter.Unit,
		MeterPerSecond.Unit, KilometerPerHour.Unit, Knot.Unit,
	}
}
