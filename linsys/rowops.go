// SPDX-License-Identifier: MIT
// Package linsys: the three mutating row-operation primitives.
// Each primitive validates its indices, preserves the dimension invariant
// by construction (rows are rebuilt from same-dimension parts), and leaves
// the system unchanged on error.

package linsys

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvlinear/scalar"
)

// checkRow validates a row index against the system, returning the shared
// sentinel for the given operation tag.
func (s *System) checkRow(tag string, i int) error {
	if i < 0 || i >= len(s.planes) {
		return sysErrorf(tag, fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, i, len(s.planes)))
	}

	return nil
}

// SwapRows exchanges rows i and j in place.
// Swapping is its own inverse and trivially preserves the solution set.
// Returns ErrRowOutOfRange for a bad index.
// Complexity: O(1).
func (s *System) SwapRows(i, j int) error {
	if err := s.checkRow(opSwap, i); err != nil {
		return err
	}
	if err := s.checkRow(opSwap, j); err != nil {
		return err
	}
	s.planes[i], s.planes[j] = s.planes[j], s.planes[i]

	return nil
}

// ScaleRow replaces row i with the row multiplied by c on both sides:
// (c * normal) . x = c * constant. Any nonzero c preserves the solution
// set; a zero c erases the equation, so near-zero coefficients are
// rejected with ErrZeroScale instead of being trusted to callers.
// Returns ErrRowOutOfRange for a bad index.
// Complexity: O(V).
func (s *System) ScaleRow(c decimal.Decimal, i int) error {
	if err := s.checkRow(opScaleRow, i); err != nil {
		return err
	}
	if scalar.IsNearZero(c) {
		return sysErrorf(opScaleRow, ErrZeroScale)
	}
	s.planes[i] = s.planes[i].Scale(c)

	return nil
}

// AddMultipleOfRowToRow replaces the target row with
// target + c * source — the elimination workhorse. c may be any value,
// including zero (a no-op) and negatives.
// Returns ErrRowOutOfRange for a bad index.
// Complexity: O(V).
func (s *System) AddMultipleOfRowToRow(c decimal.Decimal, source, target int) error {
	if err := s.checkRow(opAddRow, source); err != nil {
		return err
	}
	if err := s.checkRow(opAddRow, target); err != nil {
		return err
	}

	// Rows share the system dimension, so AddScaled cannot fail; the wrap
	// stays for uniform surfaces should the invariant ever be broken.
	next, err := s.planes[target].AddScaled(s.planes[source], c)
	if err != nil {
		return sysErrorf(opAddRow, err)
	}
	s.planes[target] = next

	return nil
}
