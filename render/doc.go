// SPDX-License-Identifier: MIT

// Package render draws read matrices as heat maps with gonum/plot.
//
// Row 0 is drawn at the top and column 0 at the left, so the picture reads
// like the printed matrix. Any value satisfying traits.Reader can be
// rendered: owning matrices, identity views and memory-mapped stores alike.
package render
