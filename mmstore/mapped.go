// SPDX-License-Identifier: MIT

package mmstore

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

// Mapped is a read-write R×C matrix of E stored in a memory-mapped file.
type Mapped[E traits.Number, R, C shape.Dim] struct {
	path   string
	file   *os.File
	region mmap.MMap
	data   []E
	opts   Options
}

var _ traits.ReadWriter[float64, shape.D3, shape.D3] = (*Mapped[float64, shape.D3, shape.D3])(nil)

// Create creates (or truncates) path and maps a zeroed R×C matrix into it.
func Create[E traits.Number, R, C shape.Dim](path string, opts ...Option) (*Mapped[E, R, C], error) {
	o := gatherOptions(opts...)
	h, err := headerFor[E, R, C]()
	if err != nil {
		return nil, fmt.Errorf("mmstore.Create(%s): %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, o.mode)
	if err != nil {
		return nil, fmt.Errorf("mmstore.Create(%s): %w", path, err)
	}
	if err = f.Truncate(fileSize[E](h)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmstore.Create(%s): %w", path, err)
	}
	region, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmstore.Create(%s): %w", path, err)
	}
	h.encode(region)

	m := &Mapped[E, R, C]{path: path, file: f, region: region, data: elems[E](region, h.rows*h.cols), opts: o}
	if err = m.Flush(); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("mmstore.Create(%s): %w", path, err)
	}

	return m, nil
}

// Open maps an existing file for reading and writing. The header must
// describe an R×C matrix of E.
func Open[E traits.Number, R, C shape.Dim](path string, opts ...Option) (*Mapped[E, R, C], error) {
	f, region, n, err := mapFile[E, R, C](path, os.O_RDWR, mmap.RDWR)
	if err != nil {
		return nil, fmt.Errorf("mmstore.Open(%s): %w", path, err)
	}

	return &Mapped[E, R, C]{path: path, file: f, region: region, data: elems[E](region, n), opts: gatherOptions(opts...)}, nil
}

// Save writes src to path as a new file. src is read completely before the
// file is touched, so a failing reader leaves no file behind.
func Save[E traits.Number, R, C shape.Dim](path string, src traits.Reader[E, R, C], opts ...Option) error {
	staged, err := matrix.CloneMatrix[E, R, C](src, matrix.WithNoValidateNaNInf())
	if err != nil {
		return fmt.Errorf("mmstore.Save(%s): %w", path, err)
	}
	m, err := Create[E, R, C](path, opts...)
	if err != nil {
		return err
	}
	copy(m.data, staged.Values())
	if err = m.Flush(); err != nil {
		_ = m.Close()
		return fmt.Errorf("mmstore.Save(%s): %w", path, err)
	}

	return m.Close()
}

// mapFile opens path with flag, validates its header and maps it with prot.
// It returns the element count.
func mapFile[E traits.Number, R, C shape.Dim](path string, flag, prot int) (*os.File, mmap.MMap, int, error) {
	want, err := headerFor[E, R, C]()
	if err != nil {
		return nil, nil, 0, err
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, 0, err
	}

	b := make([]byte, headSize)
	if _, err = io.ReadFull(f, b); err != nil {
		_ = f.Close()
		return nil, nil, 0, ErrBadHeader
	}
	h, err := decodeHeader(b)
	if err == nil {
		err = h.check(want, info.Size(), fileSize[E](want))
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, 0, err
	}

	region, err := mmap.Map(f, prot, 0)
	if err != nil {
		_ = f.Close()
		return nil, nil, 0, err
	}

	return f, region, h.rows * h.cols, nil
}

// unmap releases region and file, flushing first when flush is set.
func unmap(file *os.File, region mmap.MMap, flush bool) error {
	var errs []error
	if flush {
		errs = append(errs, region.Flush())
	}
	errs = append(errs, region.Unmap(), file.Close())

	return errors.Join(errs...)
}

func (m *Mapped[E, R, C]) storage() ([]E, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	if m.data == nil {
		return nil, ErrClosed
	}

	return m.data, nil
}

func (m *Mapped[E, R, C]) index(method string, row, col int) ([]E, int, error) {
	data, err := m.storage()
	if err != nil {
		return nil, 0, fmt.Errorf("Mapped.%s(%d,%d): %w", method, row, col, err)
	}
	off, err := m.Shape().Index(row, col)
	if err != nil {
		return nil, 0, fmt.Errorf("Mapped.%s(%d,%d): %w", method, row, col, err)
	}

	return data, off, nil
}

// Zero declares the element type.
func (m *Mapped[E, R, C]) Zero() E {
	var z E
	return z
}

// Dims declares the shape.
func (m *Mapped[E, R, C]) Dims() (R, C) {
	var r R
	var c C
	return r, c
}

// Shape returns the runtime shape.
func (m *Mapped[E, R, C]) Shape() shape.Shape {
	return shape.Shape{Rows: shape.DimOf[R](), Cols: shape.DimOf[C]()}
}

// Path returns the backing file path.
func (m *Mapped[E, R, C]) Path() string { return m.path }

// At reads the element at (row, col) from the mapping.
func (m *Mapped[E, R, C]) At(row, col int) (E, error) {
	data, off, err := m.index("At", row, col)
	if err != nil {
		var z E
		return z, err
	}

	return data[off], nil
}

// Ref returns a pointer into the mapping; it is valid until Close.
func (m *Mapped[E, R, C]) Ref(row, col int) (*E, error) {
	data, off, err := m.index("Ref", row, col)
	if err != nil {
		return nil, err
	}

	return &data[off], nil
}

// Set writes v at (row, col). No NaN policy applies to stored files.
func (m *Mapped[E, R, C]) Set(row, col int, v E) error {
	p, err := m.Ref(row, col)
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// Assign copies src into the mapping. Nothing is written if src fails.
func (m *Mapped[E, R, C]) Assign(src traits.Reader[E, R, C]) error {
	data, err := m.storage()
	if err != nil {
		return fmt.Errorf("Mapped.Assign: %w", err)
	}
	staged, err := matrix.CloneMatrix[E, R, C](src, matrix.WithNoValidateNaNInf())
	if err != nil {
		return fmt.Errorf("Mapped.Assign: %w", err)
	}
	copy(data, staged.Values())

	return nil
}

// Snapshot copies the mapping into an owning in-memory matrix.
func (m *Mapped[E, R, C]) Snapshot() (*matrix.Matrix[E, R, C], error) {
	return matrix.CloneMatrix[E, R, C](m, matrix.WithNoValidateNaNInf())
}

// Flush writes dirty pages back to the file.
func (m *Mapped[E, R, C]) Flush() error {
	if _, err := m.storage(); err != nil {
		return err
	}

	return m.region.Flush()
}

// Close flushes (unless disabled), unmaps and closes the file. Further use
// returns ErrClosed.
func (m *Mapped[E, R, C]) Close() error {
	if _, err := m.storage(); err != nil {
		return err
	}
	err := unmap(m.file, m.region, m.opts.flushOnClose)
	m.data, m.region, m.file = nil, nil, nil

	return err
}

// String renders the matrix like matrix.Matrix does.
func (m *Mapped[E, R, C]) String() string {
	s, err := matrix.Format[E, R, C](m)
	if err != nil {
		return "<" + err.Error() + ">"
	}

	return s
}
