// SPDX-License-Identifier: MIT

// Package shape describes the fixed (rows, columns) dimensionality of a matrix.
//
// Shapes live in the type system: a matrix carries two dimension types R and C
// (for example shape.D3) as type parameters, so two operands of different
// shape never unify and the mismatch is rejected by the compiler.
//
// Purpose:
//   - Provide the Dim contract and predeclared dimensions D1..D9.
//   - Derive a runtime Shape descriptor from dimension types (Of, Square).
//   - Map (row, col) to the row-major offset row*Cols + col with a bounds check.
//
// Custom dimensions are plain zero-size types:
//
//	type D16 struct{}
//
//	func (D16) N() int { return 16 }
//
// Notes:
//   - Keep Dim implementations on value receivers; pointer dims are not
//     recognized by the capability traits.
package shape
