// SPDX-License-Identifier: MIT
// Package vector: geometric predicates and derived operations.
// Everything here is built from the core arithmetic in vector.go and the
// shared tolerance in scalar; no operation mutates its receiver.

package vector

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvlinear/scalar"
)

// IsOrthogonalTo reports whether v · w is near-zero.
// The zero vector is orthogonal to every vector.
// Returns ErrDimensionMismatch when dimensions disagree.
// Complexity: O(n).
func (v Vector) IsOrthogonalTo(w Vector) (bool, error) {
	dot, err := v.Dot(w)
	if err != nil {
		return false, err
	}

	return scalar.IsNearZero(dot), nil
}

// IsParallelTo reports whether v and w point along one line.
// The test is Cauchy-Schwarz equality: |v · w| == |v|·|w| within the shared
// tolerance, which holds exactly when one vector is a scalar multiple of
// the other. The zero vector is parallel to every vector.
// Returns ErrDimensionMismatch when dimensions disagree.
// Complexity: O(n).
func (v Vector) IsParallelTo(w Vector) (bool, error) {
	dot, err := v.Dot(w)
	if err != nil {
		return false, err
	}
	if v.IsZero() || w.IsZero() {
		return true, nil
	}
	gap := dot.Abs().Sub(v.Magnitude().Mul(w.Magnitude()))

	return scalar.IsNearZero(gap), nil
}

// ComponentParallelTo returns the projection of v onto basis:
// (v · u) u for the unit vector u along basis.
// Returns ErrNoUniqueComponent when basis is the zero vector, and
// ErrDimensionMismatch when dimensions disagree.
// Complexity: O(n).
func (v Vector) ComponentParallelTo(basis Vector) (Vector, error) {
	u, err := basis.Normalize()
	if err != nil {
		// Only ErrZeroVector can surface here; translate it to the
		// projection-specific sentinel.
		return Vector{}, ErrNoUniqueComponent
	}
	weight, err := v.Dot(u)
	if err != nil {
		return Vector{}, err
	}

	return u.Scale(weight), nil
}

// ComponentOrthogonalTo returns v minus its projection onto basis, so that
// ComponentParallelTo(basis) + ComponentOrthogonalTo(basis) reconstructs v.
// Returns ErrNoUniqueComponent when basis is the zero vector, and
// ErrDimensionMismatch when dimensions disagree.
// Complexity: O(n).
func (v Vector) ComponentOrthogonalTo(basis Vector) (Vector, error) {
	projection, err := v.ComponentParallelTo(basis)
	if err != nil {
		return Vector{}, err
	}

	return v.Sub(projection)
}

// Cross returns the cross product v × w.
// Defined for 3-dimensional vectors; 2-dimensional inputs are embedded into
// R3 with a zero third coordinate (their cross product then lives on the
// z-axis). Any other dimension returns ErrCrossDimension, and mixed
// dimensions return ErrDimensionMismatch.
// Complexity: O(1).
func (v Vector) Cross(w Vector) (Vector, error) {
	if len(v.coords) != len(w.coords) {
		return Vector{}, ErrDimensionMismatch
	}
	switch len(v.coords) {
	case 3: // canonical case
	case 2:
		ve := v.embedR3()
		we := w.embedR3()

		return ve.Cross(we)
	default:
		return Vector{}, ErrCrossDimension
	}

	x1, y1, z1 := v.coords[0], v.coords[1], v.coords[2]
	x2, y2, z2 := w.coords[0], w.coords[1], w.coords[2]

	return Vector{coords: []decimal.Decimal{
		y1.Mul(z2).Sub(y2.Mul(z1)),
		x1.Mul(z2).Sub(x2.Mul(z1)).Neg(),
		x1.Mul(y2).Sub(x2.Mul(y1)),
	}}, nil
}

// embedR3 appends a zero third coordinate to a 2-dimensional vector.
func (v Vector) embedR3() Vector {
	out := make([]decimal.Decimal, 3)
	copy(out, v.coords)
	out[2] = decimal.Zero

	return Vector{coords: out}
}
