// SPDX-License-Identifier: MIT

// Package mmstore keeps fixed-shape matrices in memory-mapped files.
//
// A file holds a 16-byte little-endian header followed by the R*C elements
// in row-major order:
//
//	offset 0  magic "FXM1"
//	offset 4  element kind (traits.Kind, uint32)
//	offset 8  rows (uint32)
//	offset 12 cols (uint32)
//	offset 16 elements, native byte order
//
// Mapped is a read-write matrix backed by the mapping; View is a read-only
// one and has no Ref. Both satisfy the capability contract structurally, so
// they can be passed straight to matrix.Add, matrix.Convert or render.HeatMap.
//
// Concurrency: like matrix.Matrix, neither type synchronizes access.
// Pointers returned by Ref are valid until Close.
package mmstore
