// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels (optionally wrapped with %w for context) and tests
// MUST check them via errors.Is. No operation panics on user input.

package vector

import "errors"

var (
	// ErrEmptyCoordinates is returned when constructing a Vector from zero
	// coordinates; every Vector has dimension >= 1.
	ErrEmptyCoordinates = errors.New("vector: coordinates must be non-empty")

	// ErrIndexOutOfRange indicates a coordinate index outside [0, Dimension).
	// At MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("vector: coordinate index out of range")

	// ErrDimensionMismatch indicates two operands of different dimensions
	// in a binary operation (Add, Sub, Dot, ...).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroVector signals an operation that is undefined on the zero
	// vector (Normalize).
	ErrZeroVector = errors.New("vector: cannot normalize the zero vector")

	// ErrNoNonzero is the pivot-scan signal: every coordinate is near-zero,
	// so the vector has no first nonzero index. Consumers match it with
	// errors.Is; it is a structured outcome, not a failure message.
	ErrNoNonzero = errors.New("vector: no nonzero coordinate found")

	// ErrCrossDimension signals a cross product on a vector that is not
	// 2- or 3-dimensional.
	ErrCrossDimension = errors.New("vector: cross product requires 2 or 3 dimensions")

	// ErrNoUniqueComponent signals a projection onto a zero basis vector,
	// for which no unique parallel/orthogonal decomposition exists.
	ErrNoUniqueComponent = errors.New("vector: no unique component for zero basis")

	// ErrParse indicates a coordinate string that is not a valid decimal.
	ErrParse = errors.New("vector: invalid decimal coordinate")
)
