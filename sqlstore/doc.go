// SPDX-License-Identifier: MIT

// Package sqlstore persists named fixed-shape matrices in SQLite.
//
// Two tables are used:
//
//	matrices(name PRIMARY KEY, kind, nrows, ncols)
//	cells(name, i, j, value)  PRIMARY KEY (name, i, j)
//
// Put replaces a matrix in one transaction; Get checks the stored element
// kind and shape against the requested type before reading any cell.
// Integers are stored as INTEGER (uint64 bit-cast through int64), floats as
// REAL. Non-finite floats are rejected by Put because SQLite stores NaN as
// NULL.
package sqlstore
