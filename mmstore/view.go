// SPDX-License-Identifier: MIT

package mmstore

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

// View is a read-only R×C matrix of E mapped from a file. It has no Ref.
type View[E traits.Number, R, C shape.Dim] struct {
	path   string
	file   *os.File
	region mmap.MMap
	data   []E
}

var _ traits.Reader[float64, shape.D3, shape.D3] = (*View[float64, shape.D3, shape.D3])(nil)

// OpenRO maps an existing file read-only.
func OpenRO[E traits.Number, R, C shape.Dim](path string) (*View[E, R, C], error) {
	f, region, n, err := mapFile[E, R, C](path, os.O_RDONLY, mmap.RDONLY)
	if err != nil {
		return nil, fmt.Errorf("mmstore.OpenRO(%s): %w", path, err)
	}

	return &View[E, R, C]{path: path, file: f, region: region, data: elems[E](region, n)}, nil
}

// Zero declares the element type.
func (v *View[E, R, C]) Zero() E {
	var z E
	return z
}

// Dims declares the shape.
func (v *View[E, R, C]) Dims() (R, C) {
	var r R
	var c C
	return r, c
}

// Shape returns the runtime shape.
func (v *View[E, R, C]) Shape() shape.Shape {
	return shape.Shape{Rows: shape.DimOf[R](), Cols: shape.DimOf[C]()}
}

// Path returns the backing file path.
func (v *View[E, R, C]) Path() string { return v.path }

// At reads the element at (row, col).
func (v *View[E, R, C]) At(row, col int) (E, error) {
	var z E
	switch {
	case v == nil:
		return z, fmt.Errorf("View.At(%d,%d): %w", row, col, matrix.ErrNilMatrix)
	case v.data == nil:
		return z, fmt.Errorf("View.At(%d,%d): %w", row, col, ErrClosed)
	}
	off, err := v.Shape().Index(row, col)
	if err != nil {
		return z, fmt.Errorf("View.At(%d,%d): %w", row, col, err)
	}

	return v.data[off], nil
}

// Close unmaps and closes the file.
func (v *View[E, R, C]) Close() error {
	if v == nil {
		return matrix.ErrNilMatrix
	}
	if v.data == nil {
		return ErrClosed
	}
	err := unmap(v.file, v.region, false)
	v.data, v.region, v.file = nil, nil, nil

	return err
}

// String renders the view like matrix.Matrix does.
func (v *View[E, R, C]) String() string {
	s, err := matrix.Format[E, R, C](v)
	if err != nil {
		return "<" + err.Error() + ">"
	}

	return s
}
