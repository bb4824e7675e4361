// Package vector provides an immutable, fixed-dimension vector over exact
// decimal coordinates.
//
// The vector package provides:
//
//   - Construction from decimals, floats, or decimal strings, with the
//     dimension >= 1 invariant enforced at the boundary.
//   - Arithmetic (Add, Sub, Scale, Dot, Magnitude, Normalize) that always
//     returns new Vectors; a Vector is never mutated after construction.
//   - Geometric predicates (IsZero, IsOrthogonalTo, IsParallelTo) gated by
//     the shared scalar.IsNearZero tolerance.
//   - Projections (ComponentParallelTo, ComponentOrthogonalTo) and the
//     Cross product for 2- and 3-dimensional vectors.
//   - FirstNonzeroIndex, the pivot scan consumed by hyperplanes and the
//     linear-system solver.
//
// Vectors are plain values; sharing them across goroutines is safe as long
// as nothing reaches into Coordinates() and mutates the returned copy in
// place expecting the Vector to change (it will not).
//
// See the examples in this package and linsys for usage patterns.
package vector
