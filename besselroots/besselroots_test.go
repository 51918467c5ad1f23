// Package besselroots_test contains unit tests for the Bessel root
// approximations. Residuals are checked against the standard library's
// Bessel evaluators where the order is an integer, and against closed forms
// for the half-integer orders where J_ν collapses to trigonometry.
package besselroots_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fastgauss/besselroots"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestApprox_NegativeCount(t *testing.T) {
	_, err := besselroots.Approx(0, -1)
	assert.ErrorIs(t, err, besselroots.ErrNegativeCount, "negative count must error")
}

func TestApprox_OrderOutOfRange(t *testing.T) {
	// Below nu = -1 there is no positive root structure to approximate;
	// the caller gets an error, never a silent slice of zeros.
	_, err := besselroots.Approx(-1.5, 5)
	assert.ErrorIs(t, err, besselroots.ErrOrderOutOfRange, "order below -1 must error")

	_, err = besselroots.Approx(math.NaN(), 5)
	assert.ErrorIs(t, err, besselroots.ErrOrderOutOfRange, "NaN order must error")
}

func TestApprox_ZeroCount(t *testing.T) {
	roots, err := besselroots.Approx(0.3, 0)
	require.NoError(t, err)
	assert.Empty(t, roots, "zero count yields an empty slice")
}

// ------------------------------------------------------------------------
// 2. Residual Tests: J_ν must nearly vanish at every returned root.
// ------------------------------------------------------------------------

func TestApprox_IntegerOrders(t *testing.T) {
	// For integer orders the standard library evaluates J_ν directly.
	for nu := 0; nu <= 5; nu++ {
		roots, err := besselroots.Approx(float64(nu), 10)
		require.NoError(t, err, "order %d", nu)
		require.Len(t, roots, 10)

		for k, r := range roots {
			assert.Less(t, math.Abs(math.Jn(nu, r)), 1e-11,
				"order %d root %d residual", nu, k)
		}
	}
}

func TestApprox_HalfIntegerClosedForms(t *testing.T) {
	// J_{1/2} ∝ sin(x)/√x: roots at kπ. McMahon is exact here (μ = 1 kills
	// every correction term), so the tail must match to rounding error.
	roots, err := besselroots.Approx(0.5, 25)
	require.NoError(t, err)
	for k, r := range roots {
		want := float64(k+1) * math.Pi
		if k < 6 {
			assert.InDelta(t, want, r, 1e-8, "J_{1/2} root %d", k)
		} else {
			assert.InDelta(t, want, r, 1e-12, "J_{1/2} root %d (McMahon exact)", k)
		}
	}

	// J_{-1/2} ∝ cos(x)/√x: roots at (k - 1/2)π.
	roots, err = besselroots.Approx(-0.5, 25)
	require.NoError(t, err)
	for k, r := range roots {
		want := (float64(k+1) - 0.5) * math.Pi
		if k < 6 {
			assert.InDelta(t, want, r, 1e-8, "J_{-1/2} root %d", k)
		} else {
			assert.InDelta(t, want, r, 1e-12, "J_{-1/2} root %d (McMahon exact)", k)
		}
	}
}

func TestApprox_SphericalOrder(t *testing.T) {
	// J_{3/2}(x) ∝ sin(x)/x - cos(x), so sin(r)/r - cos(r) must nearly
	// vanish at every approximated root.
	roots, err := besselroots.Approx(1.5, 12)
	require.NoError(t, err)
	for k, r := range roots {
		assert.Less(t, math.Abs(math.Sin(r)/r-math.Cos(r)), 1e-8,
			"J_{3/2} root %d residual", k)
	}
}

// ------------------------------------------------------------------------
// 3. Table Handoff: exact low roots, smooth transition to the series.
// ------------------------------------------------------------------------

func TestApprox_TableExactLowRoots(t *testing.T) {
	// The first 20 J₀ roots come straight from the table, no expansion error.
	wantFirst := 2.4048255576957728
	want20 := 62.048469190227170

	roots, err := besselroots.Approx(0, 25)
	require.NoError(t, err)
	assert.Equal(t, wantFirst, roots[0], "first J₀ root is tabulated")
	assert.Equal(t, want20, roots[19], "20th J₀ root is tabulated")

	// Roots 21..25 come from McMahon and still leave a tiny residual.
	for k := 20; k < 25; k++ {
		assert.Less(t, math.Abs(math.J0(roots[k])), 1e-12,
			"McMahon J₀ root %d residual", k)
	}
}

// ------------------------------------------------------------------------
// 4. Specialized ν = 0 paths.
// ------------------------------------------------------------------------

func TestJ0Roots_Residuals(t *testing.T) {
	_, err := besselroots.J0Roots(-1)
	assert.ErrorIs(t, err, besselroots.ErrNegativeCount)

	roots, err := besselroots.J0Roots(60)
	require.NoError(t, err)
	require.Len(t, roots, 60)

	for k, r := range roots {
		assert.Less(t, math.Abs(math.J0(r)), 1e-11, "J₀ root %d residual", k)
		if k > 0 {
			assert.Greater(t, r, roots[k-1], "J₀ roots must ascend at %d", k)
		}
	}

	// Far out, consecutive roots approach spacing π.
	gap := roots[59] - roots[58]
	assert.InDelta(t, math.Pi, gap, 1e-3, "asymptotic root spacing")
}

func TestJ0Roots_MatchesApprox(t *testing.T) {
	// The banded fast path and the general McMahon path describe the same
	// roots.
	fast, err := besselroots.J0Roots(100)
	require.NoError(t, err)
	general, err := besselroots.Approx(0, 100)
	require.NoError(t, err)

	for k := range fast {
		assert.InDelta(t, general[k], fast[k], 1e-11, "J₀ root %d", k)
	}
}

func TestJ1SquaredAtJ0Roots_Residuals(t *testing.T) {
	_, err := besselroots.J1SquaredAtJ0Roots(-3)
	assert.ErrorIs(t, err, besselroots.ErrNegativeCount)

	w, err := besselroots.J1SquaredAtJ0Roots(30)
	require.NoError(t, err)
	require.Len(t, w, 30)

	roots, err := besselroots.J0Roots(30)
	require.NoError(t, err)

	for k := range w {
		want := math.J1(roots[k]) * math.J1(roots[k])
		assert.InEpsilon(t, want, w[k], 1e-8, "J₁² at J₀ root %d", k)
		if k > 0 {
			assert.Less(t, w[k], w[k-1], "J₁² amplitude must decay at %d", k)
		}
	}
}
