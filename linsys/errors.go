// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// linsys package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered
// conditions.

package linsys

import "errors"

var (
	// ErrEmptySystem is returned when constructing a System from zero
	// hyperplanes; a system has at least one row.
	ErrEmptySystem = errors.New("linsys: system must contain at least one hyperplane")

	// ErrDimensionMismatch indicates a hyperplane whose dimension disagrees
	// with the system's, at construction or row-set time. Fatal to the
	// operation; the system is left unchanged.
	ErrDimensionMismatch = errors.New("linsys: all hyperplanes must share the system dimension")

	// ErrRowOutOfRange indicates a row index outside [0, Len).
	// Public indexers (At/Set) and row operations MUST return this, not panic.
	ErrRowOutOfRange = errors.New("linsys: row index out of range")

	// ErrZeroScale is returned by ScaleRow for a near-zero coefficient:
	// scaling a row by zero destroys the equation, so it is rejected
	// fail-fast rather than trusted to callers.
	ErrZeroScale = errors.New("linsys: row scale coefficient must be nonzero")
)
