// SPDX-License-Identifier: MIT

package number

// The operators below only make sense for integer kinds. They are free
// functions rather than methods so the Integer constraint rejects
// Number[float64] at compile time.

// Rem returns n % o.
func Rem[T Integer](n, o Number[T]) Number[T] { return Number[T]{v: n.v % o.v} }

// BitAnd returns n & o.
func BitAnd[T Integer](n, o Number[T]) Number[T] { return Number[T]{v: n.v & o.v} }

// BitOr returns n | o.
func BitOr[T Integer](n, o Number[T]) Number[T] { return Number[T]{v: n.v | o.v} }

// BitXor returns n ^ o.
func BitXor[T Integer](n, o Number[T]) Number[T] { return Number[T]{v: n.v ^ o.v} }

// BitNot returns ^n.
func BitNot[T Integer](n Number[T]) Number[T] { return Number[T]{v: ^n.v} }

// Shl returns n << bits.
func Shl[T Integer](n Number[T], bits uint) Number[T] { return Number[T]{v: n.v << bits} }

// Shr returns n >> bits (arithmetic for signed kinds).
func Shr[T Integer](n Number[T], bits uint) Number[T] { return Number[T]{v: n.v >> bits} }
