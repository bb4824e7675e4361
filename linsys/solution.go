// SPDX-License-Identifier: MIT
// Package linsys: solution classification and extraction.

package linsys

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvlinear/scalar"
	"github.com/katalvlaran/lvlinear/vector"
)

// SolutionKind tags the outcome of Solve. It is a result state, not an
// error: an inconsistent or under-determined system is a legitimate answer
// about the input, not a failure of the solver.
type SolutionKind int

const (
	// UniqueSolution: the system is consistent and full rank; Point holds
	// the single solution vector.
	UniqueSolution SolutionKind = iota

	// NoSolution: the reduced system contains a contradictory row
	// (0 = nonzero); no assignment satisfies every equation.
	NoSolution

	// InfiniteSolutions: the system is consistent but under-determined
	// (fewer pivots than variables); the solution set is a nontrivial
	// affine subspace.
	InfiniteSolutions
)

// String returns a human-readable tag name.
func (k SolutionKind) String() string {
	switch k {
	case UniqueSolution:
		return "unique solution"
	case NoSolution:
		return "no solution"
	case InfiniteSolutions:
		return "infinitely many solutions"
	default:
		return fmt.Sprintf("SolutionKind(%d)", int(k))
	}
}

// Solution is the tagged outcome of Solve. Point is valid only when
// Kind == UniqueSolution and is the zero Vector otherwise.
type Solution struct {
	Kind  SolutionKind
	Point vector.Vector
}

// Solve runs Gaussian elimination and classifies the result. The receiver
// is never mutated.
//
// Implementation:
//   - Stage 1: reduce a private clone to RREF.
//   - Stage 2: contradiction scan — any row with an all-near-zero normal
//     and a non-near-zero constant encodes 0 = k, so the system has no
//     solution. This check runs strictly BEFORE the rank check: a
//     contradictory row can coexist with rank dimension-1, and
//     NoSolution takes precedence over InfiniteSolutions.
//   - Stage 3: rank check — fewer pivot rows than variables means the
//     consistent system is under-determined: InfiniteSolutions.
//   - Stage 4: unique extraction — full-rank RREF places row i's pivot in
//     column i with coefficient exactly 1, so the constant term of row i
//     IS the value of variable i; the solution is read off the first
//     Dimension constants in order.
//
// Returns:
//   - Solution: tagged outcome; Point set only for UniqueSolution.
//   - error   : internal elimination failures wrapped with opSolve
//     (cannot fire on valid systems).
//
// Determinism:
//   - Fully inherited from RREF; identical inputs yield identical tags
//     and points.
//
// Complexity:
//   - Time O(E^2 * V), Space O(E*V).
func (s *System) Solve() (Solution, error) {
	rref, err := s.RREF()
	if err != nil {
		return Solution{}, sysErrorf(opSolve, err)
	}

	if rref.hasContradictoryRow() {
		return Solution{Kind: NoSolution}, nil
	}
	if rref.numPivots() < rref.Dimension() {
		return Solution{Kind: InfiniteSolutions}, nil
	}

	point, err := rref.extractUniquePoint()
	if err != nil {
		return Solution{}, sysErrorf(opSolve, err)
	}

	return Solution{Kind: UniqueSolution, Point: point}, nil
}

// hasContradictoryRow scans for a row encoding 0 = nonzero.
func (s *System) hasContradictoryRow() bool {
	for _, p := range s.planes {
		if p.Normal().IsZero() && !scalar.IsNearZero(p.Constant()) {
			return true
		}
	}

	return false
}

// extractUniquePoint reads the solution off the first Dimension constant
// terms of a full-rank, consistent RREF. Full rank guarantees
// Len() >= Dimension() and pivot i in row i.
func (s *System) extractUniquePoint() (vector.Vector, error) {
	coords := make([]decimal.Decimal, s.dim)
	for i := 0; i < s.dim; i++ {
		coords[i] = s.planes[i].Constant()
	}

	return vector.New(coords...)
}
