// Package linsys implements systems of linear equations and their
// Gaussian-elimination solver over exact decimal arithmetic.
//
// The linsys package provides:
//
//   - System, an ordered collection of Hyperplanes sharing one dimension,
//     with the dimension invariant enforced on construction and on every
//     row write.
//   - The three row-operation primitives: SwapRows, ScaleRow, and
//     AddMultipleOfRowToRow.
//   - TriangularForm — a single deterministic forward pass producing an
//     upper-triangular-like system (pivot columns strictly increasing,
//     zero rows at the bottom).
//   - RREF — reduced row-echelon form: pivots scaled to exactly 1 and
//     isolated in their columns.
//   - Solve — classification of the reduced system into a unique solution
//     point, NoSolution, or InfiniteSolutions.
//
// TriangularForm, RREF and Solve never mutate their receiver: each works
// on a private clone, so concurrent callers solving different systems
// built from the same Hyperplane values never interfere.
//
// Systems need not be square: the number of equations and the number of
// variables are independent, and elimination terminates in at most
// equations x variables pivot-search steps.
package linsys
