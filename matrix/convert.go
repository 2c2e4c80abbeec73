// SPDX-License-Identifier: MIT

// Package matrix - construction from other read matrices.
//
// Purpose:
//   - Convert: static path; the source shape is checked by the compiler.
//   - FromAny: runtime path; the source is classified by package traits and
//     every missing capability or shape mismatch surfaces as a sentinel.
//
// Both paths stage the full copy before publishing the result, so a failing
// read never yields a partially initialized matrix.
package matrix

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

// readInto copies src into dst (len R*C, row-major), converting S to E.
// A *Matrix source takes the flat-slice fast path.
func readInto[E, S traits.Number, R, C shape.Dim](src traits.Reader[S, R, C], dst []E) error {
	if err := ValidateNotNil(src); err != nil {
		return err
	}

	// Fast path: single pass over the flat row-major buffer.
	if d, ok := src.(*Matrix[S, R, C]); ok {
		data, err := d.contents()
		if err != nil {
			return err
		}
		for i, v := range data {
			dst[i] = E(v)
		}
		return nil
	}

	// Generic fallback via At (still deterministic i→j).
	rows, cols := shape.DimOf[R](), shape.DimOf[C]()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := src.At(i, j)
			if err != nil {
				return err
			}
			dst[i*cols+j] = E(v)
		}
	}

	return nil
}

// Convert builds a new matrix from any read matrix of the same shape,
// converting each element from S to E with Go conversion semantics.
//
// Errors:
//   - ErrNilMatrix for a nil source.
//   - any error returned by src.At (no partial result).
//   - ErrNaNInf for non-finite floats (default policy).
func Convert[E, S traits.Number, R, C shape.Dim](src traits.Reader[S, R, C], opts ...Option) (*Matrix[E, R, C], error) {
	m, err := New[E, R, C](opts...)
	if err != nil {
		return nil, err
	}
	if err = readInto(src, m.data); err != nil {
		return nil, fmt.Errorf("Convert: %w", err)
	}
	if !m.allowNaNInf {
		if err = ValidateFinite(m.data); err != nil {
			return nil, fmt.Errorf("Convert: %w", err)
		}
	}

	return m, nil
}

// FromAny builds a new matrix from an arbitrary value that structurally
// qualifies as a read matrix of shape R×C.
//
// Errors:
//   - ErrNilMatrix for nil.
//   - traits.ErrNoValueType / ErrNoShape / ErrNoReader naming the missing capability.
//   - ErrDimensionMismatch when the declared shape differs from R×C.
//   - any error returned by the source's At.
func FromAny[E traits.Number, R, C shape.Dim](src any, opts ...Option) (*Matrix[E, R, C], error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("FromAny: %w", err)
	}
	if r, ok := src.(traits.Reader[E, R, C]); ok {
		return Convert[E, E, R, C](r, opts...)
	}

	t := reflect.TypeOf(src)
	if err := traits.RequireReadMatrix(t); err != nil {
		return nil, fmt.Errorf("FromAny: %w", err)
	}
	m, err := New[E, R, C](opts...)
	if err != nil {
		return nil, err
	}
	if err = ValidateSameShape(traits.Of(t).Shape, m.Shape()); err != nil {
		return nil, fmt.Errorf("FromAny(%s): %w", t, err)
	}

	at := reflect.ValueOf(src).MethodByName("At")
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out := at.Call([]reflect.Value{reflect.ValueOf(i), reflect.ValueOf(j)})
			if e, _ := out[1].Interface().(error); e != nil {
				return nil, fmt.Errorf("FromAny(%s): %w", t, e)
			}
			m.data[i*cols+j] = numericAs[E](out[0])
		}
	}
	if !m.allowNaNInf {
		if err = ValidateFinite(m.data); err != nil {
			return nil, fmt.Errorf("FromAny: %w", err)
		}
	}

	return m, nil
}

// numericAs converts a numeric reflect.Value to E.
func numericAs[E traits.Number](v reflect.Value) E {
	switch {
	case v.CanInt():
		return E(v.Int())
	case v.CanUint():
		return E(v.Uint())
	case v.CanFloat():
		return E(v.Float())
	}
	var z E

	return z
}

// Format renders any read matrix the way (*Matrix).String does.
func Format[E traits.Number, R, C shape.Dim](src traits.Reader[E, R, C]) (string, error) {
	vals := make([]E, shape.DimOf[R]()*shape.DimOf[C]())
	if err := readInto(src, vals); err != nil {
		return "", fmt.Errorf("Format: %w", err)
	}
	var b strings.Builder
	writeRows(&b, shape.DimOf[R](), shape.DimOf[C](), func(off int) string { return fmt.Sprint(vals[off]) })

	return b.String(), nil
}
