// Package lvlinear is your in-memory playground for exact linear algebra —
// vectors, hyperplanes, and Gaussian elimination without floating-point drift.
//
// 🚀 What is lvlinear?
//
//	A small, educational library that brings together:
//		• Exact scalars: fixed-precision decimal arithmetic (no binary-float rounding)
//		• Vectors: immutable coordinate tuples with dot, cross, projections
//		• Hyperplanes: n·x = k equations with basepoints and parallelism checks
//		• Linear systems: row operations, triangular form, RREF
//		• Solution extraction: unique point, no solution, or infinitely many
//
// ✨ Why choose lvlinear?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exact by default – decimal coefficients survive long elimination chains
//   - Pure Go – no cgo, deterministic pivoting, reproducible results
//   - Honest outcomes – tagged solution kinds instead of overloaded returns
//
// Under the hood, everything is organized under four subpackages:
//
//	scalar/     — numeric policy: fixed division scale, near-zero epsilon
//	vector/     — immutable decimal Vector and its arithmetic
//	hyperplane/ — linear equations n·x = k, basepoints, equality
//	linsys/     — the Gaussian-elimination solver (triangular form, RREF, Solve)
//
// Quick sketch:
//
//	x + y = 2          RREF          x = 1
//	x − y = 0     ──────────────▶    y = 1
//
// Dive into the package examples for end-to-end usage.
//
//	go get github.com/katalvlaran/lvlinear
package lvlinear
