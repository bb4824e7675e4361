// SPDX-License-Identifier: MIT
// Package linsys: forward elimination into triangular form.

package linsys

import (
	"github.com/katalvlaran/lvlinear/scalar"
)

// TriangularForm returns a new system in upper-triangular-like form: each
// row's pivot column strictly increases with the row index, and rows that
// never found a pivot sort to the bottom as zero rows. The receiver is
// never mutated; all row operations run on a private clone.
//
// Implementation:
//   - Stage 1: clone the receiver; set the column cursor j to 0.
//   - Stage 2: for each row i top-to-bottom, advance j until a usable
//     pivot appears: a near-zero coefficient at (i, j) triggers a
//     top-to-bottom search of the rows below for one whose column-j
//     coefficient is not near-zero; the FIRST such row is swapped in
//     (deterministic tie-break — never the largest-magnitude candidate).
//     If none exists the column is skipped (j++) and the search repeats.
//   - Stage 3: with a pivot at (i, j), eliminate column j from every row
//     below via AddMultipleOfRowToRow with alpha = -gamma/beta, then
//     advance to the next row.
//
// Behavior highlights:
//   - Every "is this zero" decision goes through scalar.IsNearZero; exact
//     and tolerance-based tests are never mixed.
//   - The cursor pair (i, j) only moves forward, so the pass terminates in
//     at most E*V steps.
//
// Returns:
//   - *System: the triangularized clone.
//   - error : row-operation failures wrapped with opTriangular. With the
//     invariants above these cannot fire on valid systems; the error
//     surface stays for uniformity.
//
// Determinism:
//   - Fixed i (top-down) and j (left-right) orders; first-match swap.
//
// Complexity:
//   - Time O(E^2 * V) for E equations and V variables, Space O(E*V) for
//     the clone.
func (s *System) TriangularForm() (*System, error) {
	system := s.Clone()
	numEquations := system.Len()
	numVariables := system.Dimension()

	j := 0
	for i := 0; i < numEquations; i++ {
		for j < numVariables {
			coeff, err := system.planes[i].Normal().At(j)
			if err != nil {
				return nil, sysErrorf(opTriangular, err)
			}
			if scalar.IsNearZero(coeff) {
				if !system.swapWithRowBelowForNonzero(i, j) {
					// No usable pivot anywhere in this column; try the next.
					j++

					continue
				}
			}
			if err = system.clearCoefficientsBelow(i, j); err != nil {
				return nil, sysErrorf(opTriangular, err)
			}
			j++

			break // pivot placed, advance to the next row
		}
	}

	return system, nil
}

// swapWithRowBelowForNonzero searches rows row+1..E-1 for the first one
// whose column-col coefficient is not near-zero and swaps it into row.
// Reports whether a swap happened.
func (s *System) swapWithRowBelowForNonzero(row, col int) bool {
	for k := row + 1; k < len(s.planes); k++ {
		coeff, err := s.planes[k].Normal().At(col)
		if err != nil {
			return false // col is always in range; kept for safety
		}
		if !scalar.IsNearZero(coeff) {
			s.planes[row], s.planes[k] = s.planes[k], s.planes[row]

			return true
		}
	}

	return false
}

// clearCoefficientsBelow eliminates column col from every row below row,
// using row's pivot coefficient beta: each lower row k gains
// alpha = -gamma/beta times the pivot row, zeroing its column-col entry.
func (s *System) clearCoefficientsBelow(row, col int) error {
	beta, err := s.planes[row].Normal().At(col)
	if err != nil {
		return err
	}
	for k := row + 1; k < len(s.planes); k++ {
		gamma, err := s.planes[k].Normal().At(col)
		if err != nil {
			return err
		}
		alpha := scalar.Div(gamma.Neg(), beta)
		if err = s.AddMultipleOfRowToRow(alpha, row, k); err != nil {
			return err
		}
	}

	return nil
}
