// SPDX-License-Identifier: MIT
// Package hyperplane: the Hyperplane type and its operations.

package hyperplane

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvlinear/scalar"
	"github.com/katalvlaran/lvlinear/vector"
)

var (
	// ErrNilNormal is returned when constructing a Hyperplane from the
	// zero value of vector.Vector (dimension 0); a hyperplane needs a
	// normal of dimension >= 1 even if all its coordinates are zero.
	ErrNilNormal = errors.New("hyperplane: normal vector must have dimension >= 1")

	// ErrDimensionMismatch indicates two hyperplanes of different
	// dimensions in a binary operation.
	ErrDimensionMismatch = errors.New("hyperplane: dimension mismatch")
)

// Hyperplane is the linear equation normal · x = constant.
// Immutable after construction; the zero value is invalid, always build
// through New or the convenience constructors.
type Hyperplane struct {
	normal   vector.Vector
	constant decimal.Decimal
}

// New builds a Hyperplane from a normal vector and a constant term.
// Returns ErrNilNormal when normal has dimension 0 (the zero value of
// vector.Vector); a zero normal of positive dimension is allowed — such
// degenerate rows arise naturally during elimination.
func New(normal vector.Vector, constant decimal.Decimal) (Hyperplane, error) {
	if normal.Dimension() == 0 {
		return Hyperplane{}, ErrNilNormal
	}

	return Hyperplane{normal: normal, constant: constant}, nil
}

// NewFromFloats builds a Hyperplane from float64 coefficients.
func NewFromFloats(normal []float64, constant float64) (Hyperplane, error) {
	n, err := vector.NewFromFloats(normal...)
	if err != nil {
		return Hyperplane{}, fmt.Errorf("normal: %w", err)
	}

	return Hyperplane{normal: n, constant: decimal.NewFromFloat(constant)}, nil
}

// NewFromStrings builds a Hyperplane from decimal strings, the lossless
// way to carry equation literals into exact arithmetic.
func NewFromStrings(normal []string, constant string) (Hyperplane, error) {
	n, err := vector.NewFromStrings(normal...)
	if err != nil {
		return Hyperplane{}, fmt.Errorf("normal: %w", err)
	}
	c, err := decimal.NewFromString(constant)
	if err != nil {
		return Hyperplane{}, fmt.Errorf("constant: %w: %q", vector.ErrParse, constant)
	}

	return Hyperplane{normal: n, constant: c}, nil
}

// Normal returns the normal vector.
// Complexity: O(1) (Vector is immutable, no copy needed).
func (h Hyperplane) Normal() vector.Vector { return h.normal }

// Constant returns the constant term.
func (h Hyperplane) Constant() decimal.Decimal { return h.constant }

// Dimension returns the dimension of the space the hyperplane lives in.
func (h Hyperplane) Dimension() int { return h.normal.Dimension() }

// FirstNonzeroIndex returns the index of the first normal coefficient that
// is not near-zero — the pivot column of this row.
// Returns vector.ErrNoNonzero when the normal is the zero vector.
func (h Hyperplane) FirstNonzeroIndex() (int, error) {
	return h.normal.FirstNonzeroIndex()
}

// Basepoint returns a concrete point on the hyperplane: zero in every
// coordinate except the first pivot column, which carries
// constant / coefficient. The second return is false when the normal is
// the zero vector — the basepoint is then undefined, which is an absence,
// not an error.
// Complexity: O(n).
func (h Hyperplane) Basepoint() (vector.Vector, bool) {
	idx, err := h.normal.FirstNonzeroIndex()
	if err != nil {
		return vector.Vector{}, false
	}

	coords := make([]decimal.Decimal, h.normal.Dimension())
	for i := range coords {
		coords[i] = decimal.Zero
	}
	coeff, _ := h.normal.At(idx) // idx came from the scan, always in range
	coords[idx] = scalar.Div(h.constant, coeff)
	point, _ := vector.New(coords...) // dimension >= 1 by construction

	return point, true
}

// IsParallelTo reports whether the two hyperplanes have parallel normals.
// Returns ErrDimensionMismatch when dimensions disagree.
func (h Hyperplane) IsParallelTo(o Hyperplane) (bool, error) {
	if h.Dimension() != o.Dimension() {
		return false, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, h.Dimension(), o.Dimension())
	}
	ok, err := h.normal.IsParallelTo(o.normal)
	if err != nil {
		return false, err
	}

	return ok, nil
}

// Equal reports whether h and o describe the same point set.
// Two hyperplanes coincide when their normals are parallel and the vector
// between their basepoints is orthogonal to the normal. Degenerate rows
// (zero normal) coincide exactly when both are degenerate and their
// constants differ by a near-zero amount.
// Returns ErrDimensionMismatch when dimensions disagree.
func (h Hyperplane) Equal(o Hyperplane) (bool, error) {
	if h.Dimension() != o.Dimension() {
		return false, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, h.Dimension(), o.Dimension())
	}

	if h.normal.IsZero() || o.normal.IsZero() {
		if !h.normal.IsZero() || !o.normal.IsZero() {
			return false, nil
		}

		return scalar.IsNearZero(h.constant.Sub(o.constant)), nil
	}

	parallel, err := h.normal.IsParallelTo(o.normal)
	if err != nil {
		return false, err
	}
	if !parallel {
		return false, nil
	}

	// Both normals are nonzero, so both basepoints exist.
	bp1, _ := h.Basepoint()
	bp2, _ := o.Basepoint()
	gap, err := bp1.Sub(bp2)
	if err != nil {
		return false, err
	}

	return gap.IsOrthogonalTo(h.normal)
}

// Scale returns the hyperplane with both sides of the equation multiplied
// by c: (c·normal) · x = c·constant. The point set is unchanged for any
// nonzero c; callers must not pass zero (it erases the equation), and the
// solver never does.
func (h Hyperplane) Scale(c decimal.Decimal) Hyperplane {
	return Hyperplane{normal: h.normal.Scale(c), constant: h.constant.Mul(c)}
}

// AddScaled returns h + c·o: the row operation building block
// (normal + c·o.normal) · x = constant + c·o.constant.
// Returns ErrDimensionMismatch when dimensions disagree.
func (h Hyperplane) AddScaled(o Hyperplane, c decimal.Decimal) (Hyperplane, error) {
	if h.Dimension() != o.Dimension() {
		return Hyperplane{}, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, h.Dimension(), o.Dimension())
	}
	n, err := h.normal.Add(o.normal.Scale(c))
	if err != nil {
		return Hyperplane{}, err
	}

	return Hyperplane{normal: n, constant: h.constant.Add(o.constant.Mul(c))}, nil
}
