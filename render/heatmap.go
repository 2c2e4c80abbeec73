// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps" // eps
	_ "gonum.org/v1/plot/vg/vgimg" // png, jpg, tif
	_ "gonum.org/v1/plot/vg/vgpdf" // pdf
	_ "gonum.org/v1/plot/vg/vgsvg" // svg

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

// grid adapts a row-major buffer to plotter.GridXYZ with row 0 on top.
type grid struct {
	rows, cols int
	vals       []float64
}

func (g grid) Dims() (c, r int) { return g.cols, g.rows }
func (g grid) Z(c, r int) float64 { return g.vals[(g.rows-1-r)*g.cols+c] }
func (g grid) X(c int) float64 { return float64(c) }
func (g grid) Y(r int) float64 { return float64(r) }

// Min and Max span the finite values; a flat or empty range is widened to
// one unit so every cell maps to a palette color.
func (g grid) Min() float64 {
	lo, _ := g.span()
	return lo
}

func (g grid) Max() float64 {
	_, hi := g.span()
	return hi
}

func (g grid) span() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	switch {
	case lo > hi:
		return 0, 1
	case lo == hi:
		return lo, lo + 1
	}

	return lo, hi
}

// HeatMap builds a plot of src. Element values are converted to float64;
// non-finite values are left blank.
func HeatMap[E traits.Number, R, C shape.Dim](src traits.Reader[E, R, C], opts ...Option) (*plot.Plot, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	vals, err := matrix.Convert[float64, E, R, C](src, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("render.HeatMap: %w", err)
	}

	g := grid{rows: vals.Rows(), cols: vals.Cols(), vals: vals.Values()}
	h := plotter.NewHeatMap(g, o.pal)

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.X.Tick.Marker = indexTicks(g.cols, false)
	p.Y.Tick.Marker = indexTicks(g.rows, true)
	p.Add(h)

	return p, nil
}

// indexTicks labels every grid line with its matrix index; flipped labels
// count down from the top.
func indexTicks(n int, flipped bool) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, n)
	for i := range ticks {
		label := i
		if flipped {
			label = n - 1 - i
		}
		ticks[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(label)}
	}

	return ticks
}

// CheckFormat returns ErrFormat unless format (case-insensitive) is one
// Write can produce.
func CheckFormat(format string) error {
	if !slices.Contains(draw.Formats(), strings.ToLower(format)) {
		return fmt.Errorf("render.Write(%q): %w", format, ErrFormat)
	}

	return nil
}

// Write renders src as a heat map in format to w. Supported formats are
// those registered with gonum.org/v1/plot/vg/draw: eps, jpg, jpeg, pdf,
// png, svg, tif and tiff.
func Write[E traits.Number, R, C shape.Dim](w io.Writer, src traits.Reader[E, R, C], format string, opts ...Option) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	format = strings.ToLower(format)
	o, err := gatherOptions(opts...)
	if err != nil {
		return err
	}
	p, err := HeatMap[E, R, C](src, opts...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(o.width, o.height, format)
	if err != nil {
		return fmt.Errorf("render.Write(%q): %w", format, err)
	}
	_, err = wt.WriteTo(w)

	return err
}
