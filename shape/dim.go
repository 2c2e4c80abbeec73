// SPDX-License-Identifier: MIT

package shape

// Dim is a compile-time dimension. Implementations are zero-size value types
// whose N reports the extent along one axis.
type Dim interface {
	// N returns the number of rows or columns this dimension stands for.
	N() int
}

// Predeclared dimensions.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
	D9 struct{}
)

func (D1) N() int { return 1 }
func (D2) N() int { return 2 }
func (D3) N() int { return 3 }
func (D4) N() int { return 4 }
func (D5) N() int { return 5 }
func (D6) N() int { return 6 }
func (D7) N() int { return 7 }
func (D8) N() int { return 8 }
func (D9) N() int { return 9 }

// Compile-time assertions for Dim conformance.
var (
	_ Dim = D1{}
	_ Dim = D2{}
	_ Dim = D3{}
	_ Dim = D4{}
	_ Dim = D5{}
	_ Dim = D6{}
	_ Dim = D7{}
	_ Dim = D8{}
	_ Dim = D9{}
)

// DimOf returns the extent reported by the dimension type D.
func DimOf[D Dim]() int {
	var d D
	return d.N()
}
