// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for comparison and formatting.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute-or-relative tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultPrecision is the number of decimals Text prints for float kinds.
	DefaultPrecision = 6
)

// Panic messages (stable, grep-able).
const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite and >= 0"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
)

// Options holds the resolved configuration. Fields are unexported; build
// it through Option values.
type Options struct {
	eps       float64
	precision int
}

// Option mutates Options.
type Option func(*Options)

// WithEpsilon sets the comparison tolerance for ApproxEqual.
//
// Behavior highlights:
//   - Two values are equal when |a-b| <= eps or |a-b| <= eps·max(|a|, |b|).
//
// Errors:
//   - Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPrecision sets the number of decimals printed for float kinds.
// -1 selects the shortest representation that round-trips.
// Panics on precision < -1.
func WithPrecision(precision int) Option {
	if precision < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = precision }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, precision: DefaultPrecision}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
