// SPDX-License-Identifier: MIT

package number

// Signed is the set of signed integer kinds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer kinds.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of all integer kinds.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Real is every kind that can be stored in a Number, a Quantity or a Matrix.
type Real interface {
	Integer | Float
}
