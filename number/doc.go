// Package number provides the numeric plumbing shared by ratio, units,
// matrix and quaternion.
//
// What lives here:
//
//   - Type-set constraints (Integer, Float, Real) used by every generic
//     container in the module.
//   - Number[T], a strongly-typed scalar wrapper. Arithmetic and comparison
//     are named methods (Add, Sub, Less, ...); bitwise and remainder operators
//     are generic functions constrained on Integer, so applying them to a
//     floating-point wrapper is a compile error rather than a runtime one.
//   - Small kernels over flat slices and scalars: Zero, Copy, Pow2, PowInt,
//     IsPositive, EqualApprox.
//
// Usage:
//
//	a := number.Of[int64](12)
//	b := number.Shr(a, 2)            // 3
//	c := a.Add(b).Mul(number.Of[int64](2))
//	fmt.Println(c)                   // 30
//
// All values are immutable: every method returns a new Number.
package number
