// SPDX-License-Identifier: MIT

package mmstore

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

const headSize = 16

var magic = [4]byte{'F', 'X', 'M', '1'}

type header struct {
	kind traits.Kind
	rows int
	cols int
}

// headerFor describes an R×C matrix of E.
func headerFor[E traits.Number, R, C shape.Dim]() (header, error) {
	s, err := shape.Of[R, C]()
	if err != nil {
		return header{}, err
	}

	return header{kind: traits.KindOf[E](), rows: s.Rows, cols: s.Cols}, nil
}

func (h header) encode(b []byte) {
	copy(b[:4], magic[:])
	binary.LittleEndian.PutUint32(b[4:], uint32(h.kind))
	binary.LittleEndian.PutUint32(b[8:], uint32(h.rows))
	binary.LittleEndian.PutUint32(b[12:], uint32(h.cols))
}

func decodeHeader(b []byte) (header, error) {
	if len(b) < headSize || [4]byte(b[:4]) != magic {
		return header{}, ErrBadHeader
	}

	return header{
		kind: traits.Kind(binary.LittleEndian.Uint32(b[4:])),
		rows: int(binary.LittleEndian.Uint32(b[8:])),
		cols: int(binary.LittleEndian.Uint32(b[12:])),
	}, nil
}

// fileSize is the exact size of a file holding h with elements of E.
func fileSize[E traits.Number](h header) int64 {
	var z E

	return int64(headSize) + int64(h.rows*h.cols)*int64(unsafe.Sizeof(z))
}

// check validates a decoded header against the expected one and the file
// size against wantSize.
func (h header) check(want header, size, wantSize int64) error {
	if h.kind != want.kind {
		return fmt.Errorf("file holds %s, want %s: %w", h.kind, want.kind, ErrKindMismatch)
	}
	if h.rows != want.rows || h.cols != want.cols {
		return fmt.Errorf("file holds %dx%d, want %dx%d: %w", h.rows, h.cols, want.rows, want.cols, ErrDimensionMismatch)
	}
	if size != wantSize {
		return fmt.Errorf("file size %d: %w", size, ErrBadHeader)
	}

	return nil
}

// elems reinterprets the mapped bytes after the header as n elements of E.
// The mapping is page aligned, so the 16-byte header keeps E aligned.
func elems[E traits.Number](region []byte, n int) []E {
	return unsafe.Slice((*E)(unsafe.Pointer(&region[headSize])), n)
}
