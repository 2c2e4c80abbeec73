// SPDX-License-Identifier: MIT

package traits

import "github.com/katalvlaran/fixmat/shape"

// Method names of the capability contract. Of inspects these by name and
// signature; Reader and ReadWriter spell the same contract statically.
const (
	methodZero = "Zero"
	methodDims = "Dims"
	methodAt   = "At"
	methodRef  = "Ref"
)

// Reader is the static read-matrix contract.
type Reader[E Number, R, C shape.Dim] interface {
	// Zero returns the zero value of the element type (the value-type declaration).
	Zero() E

	// Dims returns the dimension types; only their types carry information.
	Dims() (R, C)

	// At returns the element at (row, col), or an error wrapping
	// shape.ErrOutOfRange when the coordinates are outside the shape.
	At(row, col int) (E, error)
}

// ReadWriter is the static read-write-matrix contract.
type ReadWriter[E Number, R, C shape.Dim] interface {
	Reader[E, R, C]

	// Ref returns a pointer to the element at (row, col). Writes through the
	// pointer mutate exactly that element.
	Ref(row, col int) (*E, error)
}
