// Package matrix provides fixed-size matrices and vectors whose shape is
// part of the type.
//
// What & Why:
//
//	Matrix[T, R, C] stores R×C values of kind T in a row-major flat buffer
//	(offset = i*C + j). R and C are Dim types (One, Two, Three, Four or any
//	type with a Size method), so a 2×3 matrix and a 3×2 matrix are distinct
//	types: Mul only accepts operands whose inner sizes agree, Add only
//	accepts operands of the same shape, and the vector operations (Dot,
//	Norm, Cross, ...) only accept row vectors. Shape errors are compile
//	errors; index errors are returned as ErrOutOfRange.
//
// Vectors:
//
//	Vector[T, N] is Matrix[T, One, N] (a row), ColumnVector[T, N] is
//	Matrix[T, N, One]. Elem(i) reads the i-th element of either orientation,
//	which is what the shape-collapsed subscript of a vector means. Row(i)
//	returns a RowView aliasing the matrix storage.
//
// Ownership:
//
//	A Matrix value is a thin handle over its buffer: copying an allocated
//	matrix aliases the storage, so a write through either copy is seen by
//	both. Every constructor allocates. The zero value has no buffer yet: it
//	reads as all zeros and the first mutator allocates one for the receiver
//	only, so copies taken before that write stay independent zero values.
//	Clone always makes an independent copy. Arithmetic that returns a
//	Matrix always allocates a fresh buffer.
//
// Complexity:
//
//	At/Set/Elem/Row: O(1). Add/Sub/Scale/Equal: O(R*C).
//	Mul: O(L*M*N) with a fixed i→k→j accumulation order.
package matrix
