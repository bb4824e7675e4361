// Package vector_test: geometric predicates, cross product and projections.
package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinear/vector"
)

// ------------------------------------------------------------------------
// Orthogonality / parallelism
// ------------------------------------------------------------------------

func TestIsOrthogonalTo(t *testing.T) {
	for _, tc := range []struct {
		name string
		v, w []string
		want bool
	}{
		{"axes", []string{"1", "0"}, []string{"0", "1"}, true},
		{"oblique", []string{"-7.579", "-7.88"}, []string{"22.737", "23.64"}, false},
		{"zero against anything", []string{"0", "0"}, []string{"3", "4"}, true},
		{"known orthogonal pair", []string{"-2.328", "-7.284", "-1.214"}, []string{"-1.821", "1.072", "-2.94"}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mustVec(t, tc.v...).IsOrthogonalTo(mustVec(t, tc.w...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsParallelTo(t *testing.T) {
	for _, tc := range []struct {
		name string
		v, w []string
		want bool
	}{
		{"negative multiple", []string{"-7.579", "-7.88"}, []string{"22.737", "23.64"}, true},
		{"not parallel", []string{"-2.029", "9.97", "4.172"}, []string{"-9.231", "-6.639", "-7.245"}, false},
		{"zero against anything", []string{"0", "0", "0"}, []string{"1", "2", "3"}, true},
		{"self", []string{"2.118", "4.827"}, []string{"2.118", "4.827"}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mustVec(t, tc.v...).IsParallelTo(mustVec(t, tc.w...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPredicates_DimensionMismatch(t *testing.T) {
	v := mustVec(t, "1", "2")
	w := mustVec(t, "1", "2", "3")
	_, err := v.IsOrthogonalTo(w)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = v.IsParallelTo(w)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// ------------------------------------------------------------------------
// Projections
// ------------------------------------------------------------------------

func TestComponentParallelTo(t *testing.T) {
	v := mustVec(t, "3.039", "1.879")
	basis := mustVec(t, "0.825", "2.036")
	got, err := v.ComponentParallelTo(basis)
	require.NoError(t, err)
	// Projection onto basis; expected values from the direct formula.
	nearEqual(t, mustVecFromFloats(t, 1.082606962484467, 2.671742758325303), got)
}

func TestComponents_Reconstruct(t *testing.T) {
	v := mustVec(t, "3.009", "-6.172", "3.692", "-2.51")
	basis := mustVec(t, "6.404", "-9.144", "2.759", "8.718")

	par, err := v.ComponentParallelTo(basis)
	require.NoError(t, err)
	orth, err := v.ComponentOrthogonalTo(basis)
	require.NoError(t, err)

	// parallel + orthogonal must reconstruct v ...
	sum, err := par.Add(orth)
	require.NoError(t, err)
	nearEqual(t, v, sum)

	// ... with the orthogonal part actually orthogonal to the basis.
	ok, err := orth.IsOrthogonalTo(basis)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestComponents_ZeroBasis(t *testing.T) {
	v := mustVec(t, "1", "2")
	zero := mustVec(t, "0", "0")
	_, err := v.ComponentParallelTo(zero)
	assert.ErrorIs(t, err, vector.ErrNoUniqueComponent)
	_, err = v.ComponentOrthogonalTo(zero)
	assert.ErrorIs(t, err, vector.ErrNoUniqueComponent)
}

// ------------------------------------------------------------------------
// Cross product
// ------------------------------------------------------------------------

func TestCross_Known3D(t *testing.T) {
	v := mustVec(t, "8.462", "7.893", "-8.187")
	w := mustVec(t, "6.984", "-5.975", "4.778")
	got, err := v.Cross(w)
	require.NoError(t, err)
	// Exact decimal arithmetic; values verified against the definition.
	nearEqual(t, mustVec(t, "-11.204571", "-97.609444", "-105.685162"), got)

	// v × w is orthogonal to both operands.
	ok, err := got.IsOrthogonalTo(v)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = got.IsOrthogonalTo(w)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCross_2DEmbedsIntoR3(t *testing.T) {
	v := mustVec(t, "1", "0")
	w := mustVec(t, "0", "1")
	got, err := v.Cross(w)
	require.NoError(t, err)
	nearEqual(t, mustVec(t, "0", "0", "1"), got)
}

func TestCross_BadDimensions(t *testing.T) {
	v := mustVec(t, "1", "2", "3", "4")
	w := mustVec(t, "4", "3", "2", "1")
	_, err := v.Cross(w)
	assert.ErrorIs(t, err, vector.ErrCrossDimension)

	a := mustVec(t, "1", "2", "3")
	b := mustVec(t, "1", "2")
	_, err = a.Cross(b)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// mustVecFromFloats builds a Vector from float64s, failing the test on error.
func mustVecFromFloats(t *testing.T, coords ...float64) vector.Vector {
	t.Helper()
	v, err := vector.NewFromFloats(coords...)
	require.NoError(t, err)

	return v
}
