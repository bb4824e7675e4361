// Package hyperplane represents linear equations n·x = k in n-dimensional
// space: a normal Vector paired with a constant term.
//
// The hyperplane package provides:
//
//   - Construction with the normal's dimension fixing the hyperplane's
//     dimension (a 2-D normal describes a line, a 3-D normal a plane, and
//     so on — one type covers all of them).
//   - FirstNonzeroIndex, the canonical pivot query of a row.
//   - Basepoint, a concrete point on the hyperplane (absent when the
//     normal is the zero vector — the equation then constrains nothing or
//     everything, and no point is canonical).
//   - IsParallelTo and Equal (the same-hyperplane test).
//   - Scale and AddScaled, the building blocks for row operations in the
//     linsys solver.
//
// Hyperplanes are immutable values; every operation returns a new one.
package hyperplane
