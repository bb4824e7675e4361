// Package scalar defines the numeric policy shared by the whole toolkit:
// exact decimal coordinates, a fixed division scale, and the single
// near-zero predicate that gates every pivot, parallelism and
// orthogonality decision.
//
// All coordinate arithmetic uses github.com/shopspring/decimal, so sums,
// differences and products are exact; division is the only rounding point
// and always happens at DivisionPlaces. Mixing exact-zero tests with
// tolerance-based tests produces inconsistent pivot selection on
// near-degenerate input, so callers must go through IsNearZero and never
// compare against a literal zero themselves.
package scalar
