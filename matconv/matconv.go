// SPDX-License-Identifier: MIT

// Package matconv moves fixed-shape matrices to and from gonum's mat package.
//
// Gonum matrices carry their shape at run time and hold float64 only, so
// FromDense checks the dimensions and converts each element to E with Go
// conversion semantics (truncation toward zero for integer kinds).
package matconv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

// ToDense copies src into a new *mat.Dense of the same shape.
func ToDense[E traits.Number, R, C shape.Dim](src traits.Reader[E, R, C]) (*mat.Dense, error) {
	vals, err := matrix.Convert[float64, E, R, C](src, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("matconv.ToDense: %w", err)
	}

	return mat.NewDense(vals.Rows(), vals.Cols(), vals.Values()), nil
}

// FromDense copies any gonum matrix of shape R×C into a new matrix of E.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - matrix.ErrDimensionMismatch when m.Dims() differs from R×C.
//   - matrix.ErrNaNInf for non-finite values (default policy).
func FromDense[E traits.Number, R, C shape.Dim](m mat.Matrix, opts ...matrix.Option) (*matrix.Matrix[E, R, C], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("matconv.FromDense: %w", err)
	}
	out, err := matrix.New[E, R, C](opts...)
	if err != nil {
		return nil, err
	}
	r, c := m.Dims()
	if err = matrix.ValidateSameShape(shape.Shape{Rows: r, Cols: c}, out.Shape()); err != nil {
		return nil, fmt.Errorf("matconv.FromDense(%dx%d): %w", r, c, err)
	}

	vals := make([]E, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			vals = append(vals, E(m.At(i, j)))
		}
	}
	if err = out.Fill(vals...); err != nil {
		return nil, fmt.Errorf("matconv.FromDense: %w", err)
	}

	return out, nil
}
