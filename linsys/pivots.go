// SPDX-License-Identifier: MIT
// Package linsys: per-row pivot-index extraction.

package linsys

import (
	"errors"

	"github.com/katalvlaran/lvlinear/vector"
)

// NoPivot marks a row whose normal vector is entirely near-zero in the
// slice returned by PivotIndices. Such a row encodes either a trivial
// tautology (0 = 0) or a contradiction (0 = k).
const NoPivot = -1

// PivotIndices returns, for each row, the column of its first non-near-zero
// coefficient, or NoPivot for a zero row. The scan consumes the typed
// vector.ErrNoNonzero signal; pivot structure is never re-derived from
// error message text.
//
// Determinism:
//   - Fixed top-to-bottom row order; per-row scan is left-to-right.
//
// Complexity: O(E*V).
func (s *System) PivotIndices() []int {
	indices := make([]int, len(s.planes))
	for i, p := range s.planes {
		idx, err := p.FirstNonzeroIndex()
		if err != nil {
			// Only the no-pivot signal can surface here.
			if errors.Is(err, vector.ErrNoNonzero) {
				indices[i] = NoPivot

				continue
			}
		}
		indices[i] = idx
	}

	return indices
}

// numPivots counts rows that own a pivot column — the rank of the row
// space once the system is in (reduced) row-echelon form.
func (s *System) numPivots() int {
	count := 0
	for _, idx := range s.PivotIndices() {
		if idx != NoPivot {
			count++
		}
	}

	return count
}
