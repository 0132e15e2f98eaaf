// SPDX-License-Identifier: MIT

package quaternion

import "math"

// DefaultTolerance is the absolute-or-relative tolerance of the unit-norm
// check. It is loose enough for float32 rotations composed a few times.
const DefaultTolerance = 1e-6

const panicToleranceInvalid = "quaternion: WithTolerance: tol must be finite and >= 0"

// Options holds the resolved configuration.
type Options struct {
	tol float64
}

// Option mutates Options.
type Option func(*Options)

// WithTolerance sets the unit-norm tolerance used by IsNormalized,
// ToRotationMatrix and ApproxEqual.
// Panics when tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
