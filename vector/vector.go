// SPDX-License-Identifier: MIT
// Package vector: the Vector type, constructors and core arithmetic.
// All operations are non-mutating: a Vector's coordinate slice is private
// and every result is a freshly allocated Vector.

package vector

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvlinear/scalar"
)

// Vector is an ordered, immutable sequence of exact decimal coordinates.
// The zero value has dimension 0 and is not a valid Vector; always build
// through a constructor.
type Vector struct {
	coords []decimal.Decimal
}

// New builds a Vector from the given coordinates.
// Returns ErrEmptyCoordinates when called with none.
//
// The input values are copied; the caller may reuse its arguments freely.
func New(coords ...decimal.Decimal) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyCoordinates
	}
	own := make([]decimal.Decimal, len(coords))
	copy(own, coords)

	return Vector{coords: own}, nil
}

// NewFromFloats builds a Vector from float64 coordinates, converting each
// through decimal.NewFromFloat (shortest exact representation).
func NewFromFloats(coords ...float64) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyCoordinates
	}
	own := make([]decimal.Decimal, len(coords))
	for i, c := range coords {
		own[i] = decimal.NewFromFloat(c)
	}

	return Vector{coords: own}, nil
}

// NewFromStrings builds a Vector from decimal strings, the lossless way to
// carry literals like "-10.366" into exact arithmetic.
// Returns ErrParse (wrapped with the offending token) on a bad string.
func NewFromStrings(coords ...string) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyCoordinates
	}
	own := make([]decimal.Decimal, len(coords))
	for i, s := range coords {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return Vector{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		own[i] = d
	}

	return Vector{coords: own}, nil
}

// Dimension returns the number of coordinates.
// Complexity: O(1).
func (v Vector) Dimension() int { return len(v.coords) }

// At returns the i-th coordinate.
// Returns ErrIndexOutOfRange if i < 0 or i >= Dimension().
// Complexity: O(1).
func (v Vector) At(i int) (decimal.Decimal, error) {
	if i < 0 || i >= len(v.coords) {
		return decimal.Decimal{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(v.coords))
	}

	return v.coords[i], nil
}

// Coordinates returns a copy of the coordinate slice.
// Mutating the returned slice does not affect the Vector.
// Complexity: O(n).
func (v Vector) Coordinates() []decimal.Decimal {
	out := make([]decimal.Decimal, len(v.coords))
	copy(out, v.coords)

	return out
}

// Add returns v + w as a new Vector.
// Returns ErrDimensionMismatch when dimensions disagree.
// Complexity: O(n).
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v.coords) != len(w.coords) {
		return Vector{}, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v.coords), len(w.coords))
	}
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = v.coords[i].Add(w.coords[i])
	}

	return Vector{coords: out}, nil
}

// Sub returns v - w as a new Vector.
// Returns ErrDimensionMismatch when dimensions disagree.
// Complexity: O(n).
func (v Vector) Sub(w Vector) (Vector, error) {
	if len(v.coords) != len(w.coords) {
		return Vector{}, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v.coords), len(w.coords))
	}
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = v.coords[i].Sub(w.coords[i])
	}

	return Vector{coords: out}, nil
}

// Scale returns c * v as a new Vector. Scaling cannot fail: the dimension
// is preserved and multiplication is exact.
// Complexity: O(n).
func (v Vector) Scale(c decimal.Decimal) Vector {
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = v.coords[i].Mul(c)
	}

	return Vector{coords: out}
}

// Dot returns the inner product v · w.
// Returns ErrDimensionMismatch when dimensions disagree.
// Complexity: O(n).
func (v Vector) Dot(w Vector) (decimal.Decimal, error) {
	if len(v.coords) != len(w.coords) {
		return decimal.Decimal{}, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v.coords), len(w.coords))
	}
	sum := decimal.Zero
	for i := range v.coords {
		sum = sum.Add(v.coords[i].Mul(w.coords[i]))
	}

	return sum, nil
}

// Magnitude returns |v| = sqrt(v · v).
// The square root passes through float64 (see scalar.Sqrt); downstream
// comparisons must use scalar.IsNearZero.
// Complexity: O(n).
func (v Vector) Magnitude() decimal.Decimal {
	sum := decimal.Zero
	for i := range v.coords {
		sum = sum.Add(v.coords[i].Mul(v.coords[i]))
	}

	return scalar.Sqrt(sum)
}

// Normalize returns the unit vector in the direction of v.
// Returns ErrZeroVector when |v| is near-zero.
// Complexity: O(n).
func (v Vector) Normalize() (Vector, error) {
	mag := v.Magnitude()
	if scalar.IsNearZero(mag) {
		return Vector{}, ErrZeroVector
	}

	return v.Scale(scalar.Inv(mag)), nil
}

// IsZero reports whether every coordinate is near-zero.
// Complexity: O(n).
func (v Vector) IsZero() bool {
	for i := range v.coords {
		if !scalar.IsNearZero(v.coords[i]) {
			return false
		}
	}

	return true
}

// FirstNonzeroIndex scans coordinates in order and returns the index of the
// first one that is not near-zero. Returns ErrNoNonzero when the vector is
// (near-)zero; consumers treat that as "no pivot", not as a failure.
// Complexity: O(n).
func (v Vector) FirstNonzeroIndex() (int, error) {
	for i := range v.coords {
		if !scalar.IsNearZero(v.coords[i]) {
			return i, nil
		}
	}

	return -1, ErrNoNonzero
}

// Equal reports exact coordinate equality (same dimension, every pair of
// coordinates numerically equal regardless of exponent representation).
// For tolerance-based comparison subtract and test IsZero instead.
// Complexity: O(n).
func (v Vector) Equal(w Vector) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if v.coords[i].Cmp(w.coords[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders the coordinates for diagnostics, e.g. "(1, -2.5, 0)".
func (v Vector) String() string {
	out := "("
	for i := range v.coords {
		if i > 0 {
			out += ", "
		}
		out += v.coords[i].String()
	}

	return out + ")"
}
