// Package vector_test contains unit tests for the Vector type: construction
// invariants, arithmetic, the pivot scan, and immutability guarantees.
package vector_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinear/scalar"
	"github.com/katalvlaran/lvlinear/vector"
)

// mustVec builds a Vector from decimal strings, failing the test on error.
func mustVec(t *testing.T, coords ...string) vector.Vector {
	t.Helper()
	v, err := vector.NewFromStrings(coords...)
	require.NoError(t, err, "NewFromStrings(%v)", coords)

	return v
}

// nearEqual reports coordinate-wise equality within the shared tolerance.
func nearEqual(t *testing.T, want, got vector.Vector) {
	t.Helper()
	require.Equal(t, want.Dimension(), got.Dimension(), "dimension")
	diff, err := want.Sub(got)
	require.NoError(t, err)
	assert.True(t, diff.IsZero(), "want %s, got %s", want, got)
}

// ------------------------------------------------------------------------
// Construction
// ------------------------------------------------------------------------

func TestNew_EmptyCoordinates(t *testing.T) {
	_, err := vector.New()
	assert.ErrorIs(t, err, vector.ErrEmptyCoordinates)

	_, err = vector.NewFromFloats()
	assert.ErrorIs(t, err, vector.ErrEmptyCoordinates)

	_, err = vector.NewFromStrings()
	assert.ErrorIs(t, err, vector.ErrEmptyCoordinates)
}

func TestNewFromStrings_BadDecimal(t *testing.T) {
	_, err := vector.NewFromStrings("1", "oops", "3")
	assert.ErrorIs(t, err, vector.ErrParse)
}

func TestNew_CopiesInput(t *testing.T) {
	raw := []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(2)}
	v, err := vector.New(raw...)
	require.NoError(t, err)

	// Mutating the caller's slice must not reach the Vector.
	raw[0] = decimal.NewFromInt(99)
	c0, err := v.At(0)
	require.NoError(t, err)
	assert.True(t, c0.Equal(decimal.NewFromInt(1)))
}

func TestAt_OutOfRange(t *testing.T) {
	v := mustVec(t, "1", "2")
	_, err := v.At(-1)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.At(2)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
}

func TestCoordinates_ReturnsCopy(t *testing.T) {
	v := mustVec(t, "1", "2")
	out := v.Coordinates()
	out[0] = decimal.NewFromInt(42)
	c0, err := v.At(0)
	require.NoError(t, err)
	assert.True(t, c0.Equal(decimal.NewFromInt(1)), "Coordinates must be a copy")
}

// ------------------------------------------------------------------------
// Arithmetic
// ------------------------------------------------------------------------

func TestAddSub_Basic(t *testing.T) {
	v := mustVec(t, "8.218", "-9.341")
	w := mustVec(t, "-1.129", "2.111")

	sum, err := v.Add(w)
	require.NoError(t, err)
	nearEqual(t, mustVec(t, "7.089", "-7.23"), sum)

	diff, err := v.Sub(w)
	require.NoError(t, err)
	nearEqual(t, mustVec(t, "9.347", "-11.452"), diff)
}

func TestAddSubDot_DimensionMismatch(t *testing.T) {
	v := mustVec(t, "1", "2")
	w := mustVec(t, "1", "2", "3")

	_, err := v.Add(w)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = v.Sub(w)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = v.Dot(w)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestScale_Exact(t *testing.T) {
	v := mustVec(t, "1.671", "-1.012", "-0.318")
	got := v.Scale(decimal.RequireFromString("7.41"))
	nearEqual(t, mustVec(t, "12.38211", "-7.49892", "-2.35638"), got)
}

func TestDot_Known(t *testing.T) {
	v := mustVec(t, "7.887", "4.138")
	w := mustVec(t, "-8.802", "6.776")
	dot, err := v.Dot(w)
	require.NoError(t, err)
	// Exact decimal product: 7.887*-8.802 + 4.138*6.776 = -41.382286
	assert.True(t, dot.Equal(decimal.RequireFromString("-41.382286")), "got %s", dot)
}

func TestMagnitude_Known(t *testing.T) {
	v := mustVec(t, "3", "4")
	gap := v.Magnitude().Sub(decimal.NewFromInt(5))
	assert.True(t, scalar.IsNearZero(gap))
}

func TestNormalize_UnitLength(t *testing.T) {
	v := mustVec(t, "5.581", "-2.136")
	u, err := v.Normalize()
	require.NoError(t, err)
	gap := u.Magnitude().Sub(decimal.NewFromInt(1))
	assert.True(t, scalar.IsNearZero(gap), "normalized magnitude %s", u.Magnitude())
}

func TestNormalize_ZeroVector(t *testing.T) {
	v := mustVec(t, "0", "0", "0")
	_, err := v.Normalize()
	assert.ErrorIs(t, err, vector.ErrZeroVector)
}

// ------------------------------------------------------------------------
// Pivot scan and equality
// ------------------------------------------------------------------------

func TestFirstNonzeroIndex(t *testing.T) {
	for _, tc := range []struct {
		name   string
		coords []string
		want   int
	}{
		{"leading", []string{"3", "0", "1"}, 0},
		{"middle", []string{"0", "2", "1"}, 1},
		{"trailing", []string{"0", "0", "-0.5"}, 2},
		{"near-zero skipped", []string{"0.00000000001", "1"}, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			idx, err := mustVec(t, tc.coords...).FirstNonzeroIndex()
			require.NoError(t, err)
			assert.Equal(t, tc.want, idx)
		})
	}
}

func TestFirstNonzeroIndex_ZeroVector(t *testing.T) {
	_, err := mustVec(t, "0", "0.00000000001", "0").FirstNonzeroIndex()
	assert.ErrorIs(t, err, vector.ErrNoNonzero)
}

func TestEqual_ExactAcrossExponents(t *testing.T) {
	v := mustVec(t, "1.50", "2")
	w := mustVec(t, "1.5", "2.0")
	assert.True(t, v.Equal(w), "1.50 and 1.5 are the same number")

	x := mustVec(t, "1.5")
	assert.False(t, v.Equal(x), "different dimensions are never equal")
}
