// SPDX-License-Identifier: MIT
// Package scalar: numeric policy constants and predicates.
// This file is the only place that fixes the division scale and the
// near-zero tolerance; every other package imports these instead of
// carrying its own epsilon.

package scalar

import (
	"math"

	"github.com/shopspring/decimal"
)

// DivisionPlaces is the fixed decimal scale applied to every division in the
// toolkit. It replaces a process-global precision context with an explicit,
// compile-time policy: all quotients are rounded (half away from zero) to
// this many fractional digits and everything else stays exact.
const DivisionPlaces int32 = 30

// epsExponent fixes the near-zero tolerance at 1e-10.
const epsExponent int32 = -10

// Eps is the shared near-zero tolerance. Any scalar with |x| < Eps is
// treated as exactly zero by pivot selection, parallelism and
// orthogonality checks.
var Eps = decimal.New(1, epsExponent)

// one is the multiplicative identity, reused by Inv.
var one = decimal.New(1, 0)

// IsNearZero reports whether d is zero under the shared tolerance.
// This predicate is the single source of truth for "zero" throughout
// elimination; use it instead of d.IsZero() wherever rounding residue
// from a division chain may appear.
//
// Complexity: O(1).
func IsNearZero(d decimal.Decimal) bool {
	return d.Abs().Cmp(Eps) < 0
}

// Div returns a/b rounded to DivisionPlaces fractional digits.
// b must not be zero; callers gate divisors through IsNearZero first.
//
// Complexity: O(1).
func Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, DivisionPlaces)
}

// Inv returns 1/d rounded to DivisionPlaces fractional digits.
// d must not be zero; callers gate through IsNearZero first.
func Inv(d decimal.Decimal) decimal.Decimal {
	return one.DivRound(d, DivisionPlaces)
}

// Sqrt returns the square root of d, computed through float64.
// The result is approximate at float64 precision, which is why magnitude
// comparisons elsewhere always go through IsNearZero rather than exact
// equality. d must be non-negative.
func Sqrt(d decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(math.Sqrt(d.InexactFloat64()))
}
