// Package linsys_test: shared numeric helpers.
// solveLU is an independent float64 reference solver (Doolittle LU without
// pivoting) used to cross-check unique solutions produced by the exact
// decimal elimination. It requires a square, nonsingular system; tests feed
// it strictly diagonally dominant matrices, for which no pivoting is safe.
package linsys_test

import (
	"testing"
)

// solveLU solves A*x = b via Doolittle factorization A = L*U (unit diagonal
// on L) followed by forward and backward substitution.
func solveLU(t *testing.T, a [][]float64, b []float64) []float64 {
	t.Helper()
	n := len(a)

	// Factorize: row i of U, then column i of L, in fixed order.
	lower := make([][]float64, n)
	upper := make([][]float64, n)
	for i := 0; i < n; i++ {
		lower[i] = make([]float64, n)
		upper[i] = make([]float64, n)
		lower[i][i] = 1.0
	}
	var sum float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum = 0.0
			for k := 0; k < i; k++ {
				sum += lower[i][k] * upper[k][j]
			}
			upper[i][j] = a[i][j] - sum
		}
		if upper[i][i] == 0 {
			t.Fatalf("solveLU: zero pivot at %d (reference matrix must be nonsingular)", i)
		}
		for j := i + 1; j < n; j++ {
			sum = 0.0
			for k := 0; k < i; k++ {
				sum += lower[j][k] * upper[k][i]
			}
			lower[j][i] = (a[j][i] - sum) / upper[i][i]
		}
	}

	// Forward solve L*y = b.
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum = 0.0
		for k := 0; k < i; k++ {
			sum += lower[i][k] * y[k]
		}
		y[i] = b[i] - sum
	}

	// Backward solve U*x = y.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum = 0.0
		for k := i + 1; k < n; k++ {
			sum += upper[i][k] * x[k]
		}
		x[i] = (y[i] - sum) / upper[i][i]
	}

	return x
}
