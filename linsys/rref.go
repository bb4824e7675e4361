// SPDX-License-Identifier: MIT
// Package linsys: back-substitution into reduced row-echelon form.

package linsys

import (
	"github.com/katalvlaran/lvlinear/hyperplane"
	"github.com/katalvlaran/lvlinear/scalar"
	"github.com/katalvlaran/lvlinear/vector"
)

// RREF returns a new system in reduced row-echelon form. The receiver is
// never mutated.
//
// Implementation:
//   - Stage 1: forward-eliminate via TriangularForm and read the per-row
//     pivot columns once.
//   - Stage 2: walk rows bottom-to-top; for each row with a pivot column
//     j, scale the row so the pivot coefficient becomes exactly 1, then
//     eliminate column j from every row ABOVE it. Rows without a pivot
//     stay untouched (their normal part is already all-zero).
//
// Result invariants:
//   - Each pivot column holds a 1 in its own row and 0 in every other row.
//   - Pivot columns strictly increase by row; zero rows sit at the bottom.
//   - RREF is a fixed point: applying it to its own output changes nothing.
//
// Returns:
//   - *System: the reduced clone.
//   - error : row-operation failures wrapped with opRREF (cannot fire on
//     valid systems; kept for a uniform surface).
//
// Determinism:
//   - Fixed bottom-to-top row order; above-row clearing runs top-most last.
//
// Complexity:
//   - Time O(E^2 * V), Space O(E*V) for the clone.
func (s *System) RREF() (*System, error) {
	tf, err := s.TriangularForm()
	if err != nil {
		return nil, sysErrorf(opRREF, err)
	}
	pivotIndices := tf.PivotIndices()

	for i := tf.Len() - 1; i >= 0; i-- {
		j := pivotIndices[i]
		if j == NoPivot {
			continue
		}
		if err = tf.scaleRowToUnitPivot(i, j); err != nil {
			return nil, sysErrorf(opRREF, err)
		}
		if err = tf.clearCoefficientsAbove(i, j); err != nil {
			return nil, sysErrorf(opRREF, err)
		}
	}

	return tf, nil
}

// scaleRowToUnitPivot divides row by its coefficient in column col.
// Division (rather than multiplying by a rounded inverse) makes the pivot
// entry exactly 1 — pivot/pivot rounds to 1 at any scale, while
// pivot*(1/pivot) carries a one-ulp residue for non-terminating inverses.
func (s *System) scaleRowToUnitPivot(row, col int) error {
	p := s.planes[row]
	pivot, err := p.Normal().At(col)
	if err != nil {
		return err
	}

	coords := p.Normal().Coordinates()
	for i := range coords {
		coords[i] = scalar.Div(coords[i], pivot)
	}
	normal, err := vector.New(coords...)
	if err != nil {
		return err
	}
	next, err := hyperplane.New(normal, scalar.Div(p.Constant(), pivot))
	if err != nil {
		return err
	}
	s.planes[row] = next

	return nil
}

// clearCoefficientsAbove eliminates column col from every row above row.
// The pivot coefficient is exactly 1 here, so alpha is simply the negated
// entry of the row being cleared.
func (s *System) clearCoefficientsAbove(row, col int) error {
	for k := row - 1; k >= 0; k-- {
		entry, err := s.planes[k].Normal().At(col)
		if err != nil {
			return err
		}
		if err = s.AddMultipleOfRowToRow(entry.Neg(), row, k); err != nil {
			return err
		}
	}

	return nil
}
