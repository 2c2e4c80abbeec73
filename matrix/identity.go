// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

// Identity is a zero-storage, read-only R×C view whose element (i, j) is 1
// when i == j and 0 otherwise. Values are computed per access.
//
// Identity has no Ref: it is a read matrix but never a
// read-write matrix.
type Identity[E traits.Number, R, C shape.Dim] struct{}

var (
	_ traits.Reader[float32, shape.D3, shape.D3] = Identity[float32, shape.D3, shape.D3]{}
	_ fmt.Stringer                               = Identity[int, shape.D2, shape.D2]{}
)

// Eye returns the square N×N identity view.
func Eye[E traits.Number, N shape.Dim]() Identity[E, N, N] { return Identity[E, N, N]{} }

// Zero returns the zero value of E.
func (Identity[E, R, C]) Zero() E {
	var z E
	return z
}

// Dims returns the dimension types.
func (Identity[E, R, C]) Dims() (R, C) {
	var r R
	var c C
	return r, c
}

// Shape returns the runtime shape descriptor.
func (Identity[E, R, C]) Shape() shape.Shape {
	return shape.Shape{Rows: shape.DimOf[R](), Cols: shape.DimOf[C]()}
}

// At returns 1 on the diagonal and 0 elsewhere, or ErrOutOfRange.
func (id Identity[E, R, C]) At(row, col int) (E, error) {
	if !id.Shape().Contains(row, col) {
		return 0, fmt.Errorf("Identity.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if row == col {
		return 1, nil
	}

	return 0, nil
}

// String renders the view like (*Matrix).String.
func (id Identity[E, R, C]) String() string {
	s, _ := Format[E, R, C](id) // in-range reads never fail

	return s
}
