// Package matrix offers fixed-shape numeric matrices whose shape is part of
// the type.
//
// The matrix package provides:
//
//   - Matrix[E, R, C]: an owning, row-major container of R×C elements of E
//     with bounds-checked At / Ref / Set accessors.
//   - Identity[E, R, C]: a zero-storage read-only view of the identity matrix.
//   - Add / AddAs / (*Matrix).Plus: element-wise addition of same-shape
//     operands, with AddAs covering mixed element types via traits.Promote.
//   - Convert / FromValues / FromAny: construction from any read matrix, from
//     an exact-arity literal list, or from an arbitrary value classified at
//     runtime by package traits.
//
// Shape mismatches between operands do not compile: R and C must unify.
// Arity and promotion mismatches fail at construction time with sentinel
// errors. Out-of-range indices always return ErrOutOfRange; they never read
// adjacent storage.
//
// Containers carry no locks. Concurrent readers are fine; a container must
// not be mutated while it is read elsewhere.
//
// See the Example functions in this package and cmd/fixmat-demo for usage patterns.
package matrix
