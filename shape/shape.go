// SPDX-License-Identifier: MIT

package shape

import "fmt"

// Shape is the runtime descriptor of a (rows, columns) pair.
// Two shapes are equal iff rows and columns match pairwise.
type Shape struct {
	Rows int // number of rows (>=1 for a valid shape)
	Cols int // number of columns (>=1 for a valid shape)
}

// Of derives the shape carried by the dimension types R and C.
//
// Errors:
//   - ErrInvalidDimensions when either dimension reports N() < 1.
//
// Complexity: O(1).
func Of[R, C Dim]() (Shape, error) {
	s := Shape{Rows: DimOf[R](), Cols: DimOf[C]()}
	if !s.Valid() {
		return Shape{}, fmt.Errorf("shape.Of(%d,%d): %w", s.Rows, s.Cols, ErrInvalidDimensions)
	}

	return s, nil
}

// Square is Of[N, N].
func Square[N Dim]() (Shape, error) { return Of[N, N]() }

// Valid reports whether both extents are positive.
func (s Shape) Valid() bool { return s.Rows >= 1 && s.Cols >= 1 }

// Elements returns Rows*Cols.
func (s Shape) Elements() int { return s.Rows * s.Cols }

// Equal reports whether s and o describe the same dimensionality.
func (s Shape) Equal(o Shape) bool { return s.Rows == o.Rows && s.Cols == o.Cols }

// Contains reports whether (row, col) addresses an element of s.
func (s Shape) Contains(row, col int) bool {
	return row >= 0 && row < s.Rows && col >= 0 && col < s.Cols
}

// Index maps (row, col) to the row-major offset row*Cols + col.
//
// Errors:
//   - ErrOutOfRange when row ∉ [0,Rows) or col ∉ [0,Cols). The sentinel is
//     returned bare; accessors wrap it with their own method tag.
//
// Complexity: O(1).
func (s Shape) Index(row, col int) (int, error) {
	if !s.Contains(row, col) {
		return 0, ErrOutOfRange
	}

	return row*s.Cols + col, nil
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }
