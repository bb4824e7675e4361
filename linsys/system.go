// SPDX-License-Identifier: MIT
// Package linsys: the System container.
// This file holds construction, validated row access, cloning and
// comparison. Row operations and the elimination kernels live in their own
// files (rowops.go, triangular.go, rref.go, solution.go) to keep roles
// clean.

package linsys

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlinear/hyperplane"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew        = "New"
	opAt         = "At"
	opSet        = "Set"
	opSwap       = "SwapRows"
	opScaleRow   = "ScaleRow"
	opAddRow     = "AddMultipleOfRowToRow"
	opTriangular = "TriangularForm"
	opRREF       = "RREF"
	opSolve      = "Solve"
)

// sysErrorf wraps err with an operation tag, preserving the original error
// via %w so callers still match sentinels with errors.Is.
// Use only when err != nil.
func sysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// System is an ordered sequence of Hyperplanes sharing one dimension.
// Construct through New; the zero value is invalid. A System is mutable
// through Set and the row operations, but the elimination entry points
// (TriangularForm, RREF, Solve) always work on a private clone and leave
// the receiver untouched.
type System struct {
	planes []hyperplane.Hyperplane
	dim    int
}

// New builds a System from the given hyperplanes.
//
// Implementation:
//   - Stage 1: reject an empty row list (ErrEmptySystem).
//   - Stage 2: fix the dimension from the first row, then verify every
//     remaining row against it (ErrDimensionMismatch, fail-fast).
//
// The rows are copied; the caller's slice stays independent.
//
// Returns:
//   - *System: the validated system.
//   - error : ErrEmptySystem or ErrDimensionMismatch wrapped with opNew.
//
// Complexity: O(E) for E rows.
func New(planes ...hyperplane.Hyperplane) (*System, error) {
	if len(planes) == 0 {
		return nil, sysErrorf(opNew, ErrEmptySystem)
	}

	dim := planes[0].Dimension()
	for i := 1; i < len(planes); i++ {
		if planes[i].Dimension() != dim {
			return nil, sysErrorf(opNew, fmt.Errorf("%w: row %d has dimension %d, want %d",
				ErrDimensionMismatch, i, planes[i].Dimension(), dim))
		}
	}

	own := make([]hyperplane.Hyperplane, len(planes))
	copy(own, planes)

	return &System{planes: own, dim: dim}, nil
}

// Len returns the number of equations (rows).
// Complexity: O(1).
func (s *System) Len() int { return len(s.planes) }

// Dimension returns the number of variables every row shares.
// Complexity: O(1).
func (s *System) Dimension() int { return s.dim }

// At returns the i-th row.
// Returns ErrRowOutOfRange if i < 0 or i >= Len().
// Complexity: O(1).
func (s *System) At(i int) (hyperplane.Hyperplane, error) {
	if i < 0 || i >= len(s.planes) {
		return hyperplane.Hyperplane{}, sysErrorf(opAt, fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, i, len(s.planes)))
	}

	return s.planes[i], nil
}

// Set replaces the i-th row with p, enforcing the dimension invariant on
// every write.
// Returns ErrRowOutOfRange for a bad index and ErrDimensionMismatch when
// p's dimension disagrees with the system's; the system is unchanged on
// error.
// Complexity: O(1).
func (s *System) Set(i int, p hyperplane.Hyperplane) error {
	if i < 0 || i >= len(s.planes) {
		return sysErrorf(opSet, fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, i, len(s.planes)))
	}
	if p.Dimension() != s.dim {
		return sysErrorf(opSet, fmt.Errorf("%w: row has dimension %d, want %d", ErrDimensionMismatch, p.Dimension(), s.dim))
	}
	s.planes[i] = p

	return nil
}

// Clone returns an independent deep copy of the system.
// Hyperplane and Vector values are immutable, so copying the row slice
// fully isolates the clone: no later row operation on either system can
// reach the other.
// Complexity: O(E).
func (s *System) Clone() *System {
	own := make([]hyperplane.Hyperplane, len(s.planes))
	copy(own, s.planes)

	return &System{planes: own, dim: s.dim}
}

// Equal reports exact row-wise equality of two systems: same shape and
// every pair of rows with numerically identical coefficients and
// constants. Used mainly by tests (e.g. RREF idempotence).
// Complexity: O(E*V).
func (s *System) Equal(o *System) bool {
	if o == nil || len(s.planes) != len(o.planes) || s.dim != o.dim {
		return false
	}
	for i := range s.planes {
		if !s.planes[i].Normal().Equal(o.planes[i].Normal()) {
			return false
		}
		if s.planes[i].Constant().Cmp(o.planes[i].Constant()) != 0 {
			return false
		}
	}

	return true
}

// String renders the system row by row for diagnostics.
func (s *System) String() string {
	var b strings.Builder
	b.WriteString("Linear system:\n")
	for i, p := range s.planes {
		fmt.Fprintf(&b, "  row %d: %s = %s\n", i, p.Normal(), p.Constant())
	}

	return b.String()
}
