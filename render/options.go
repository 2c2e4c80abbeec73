// SPDX-License-Identifier: MIT

package render

import (
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
)

const (
	// DefaultSize is the width and height of the canvas.
	DefaultSize = 10 * vg.Centimeter

	// DefaultColors is the length of the default heat palette.
	DefaultColors = 64

	// MinColors is the shortest heat palette accepted by WithColors.
	MinColors = 8
)

// Option configures HeatMap and Write.
type Option func(*Options)

// Options holds the effective rendering configuration.
type Options struct {
	title         string
	width, height vg.Length
	pal           palette.Palette
	colors        int
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

// WithSize sets the canvas size.
func WithSize(width, height vg.Length) Option {
	return func(o *Options) { o.width, o.height = width, height }
}

// WithColors sets the length of the default heat palette (at least MinColors).
func WithColors(n int) Option {
	return func(o *Options) { o.colors = n }
}

// WithPalette replaces the heat palette; WithColors is then ignored.
func WithPalette(p palette.Palette) Option {
	return func(o *Options) { o.pal = p }
}

func gatherOptions(user ...Option) (Options, error) {
	o := Options{
		width:  DefaultSize,
		height: DefaultSize,
		colors: DefaultColors,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.width <= 0 || o.height <= 0 || (o.pal == nil && o.colors < MinColors) {
		return o, ErrSize
	}
	if o.pal == nil {
		o.pal = palette.Heat(o.colors, 1)
	}

	return o, nil
}
