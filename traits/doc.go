// SPDX-License-Identifier: MIT

// Package traits classifies arbitrary Go types by the matrix capabilities they
// expose, and computes the element kind produced by mixed-type addition.
//
// A type is a read matrix when its method set carries
//
//	Zero() E                    // declares the element type E (a built-in numeric kind)
//	Dims() (R, C)               // declares the shape; R and C implement shape.Dim
//	At(row, col int) (E, error) // bounds-checked read
//
// and a read-write matrix when it also carries
//
//	Ref(row, col int) (*E, error) // bounds-checked mutable reference
//
// Nothing has to be registered or embedded: detection is structural, exactly
// like Go interface satisfaction. Generic code that knows E, R and C
// statically is written against Reader / ReadWriter and gets its shape check
// from the compiler. Code that holds an arbitrary type inspects it with Of or
// the generic predicates (IsReadMatrix, IsReadWriteMatrix, IsScalar,
// IsSameShapeMatrix), and RequireReadMatrix names the first missing
// capability.
//
// Promotion (promote.go) maps two operand types, each a matrix-like type or a
// bare scalar, to the Kind that adding one element of each yields.
//
// Concurrency:
//   - All functions are safe for concurrent use; classification results are
//     cached per reflect.Type.
package traits
