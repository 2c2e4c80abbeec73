// SPDX-License-Identifier: MIT

// Package fixmat is a family of fixed-shape matrix packages whose shape is
// part of the type, so mixing a 3×3 with a 4×4 fails to compile.
//
// Subpackages:
//
//	shape/    dimension types D1..D9 and the runtime Shape descriptor
//	traits/   structural capability detection and numeric type promotion
//	matrix/   the owning Matrix container, the Identity view and addition
//	mmstore/  memory-mapped, file-backed matrices (edsrzf/mmap-go)
//	sqlstore/ named matrices persisted in SQLite (mattn/go-sqlite3)
//	matconv/  conversion to and from gonum mat.Dense
//	render/   heat-map rendering with gonum/plot
//
// cmd/fixmat-demo walks through the containers and the optional outputs.
//
// Every matrix-like value, whatever package defines it, is usable wherever a
// traits.Reader is accepted as long as it provides Zero, Dims and At; a
// writable one additionally provides Ref.
package fixmat
