// Package besselroots defines the error contract for Bessel-root
// approximation.
//
// Approx returns the first n positive roots of the Bessel function J_ν to
// roughly 12 significant digits, mixing tabulated values, Piessens's
// Chebyshev series, and McMahon's asymptotic expansion by region. J0Roots
// and J1SquaredAtJ0Roots are specialized ν = 0 fast paths with term counts
// tapered to the root index.
//
// Errors (sentinel):
//
//	– ErrNegativeCount   if the requested number of roots is negative.
//	– ErrOrderOutOfRange if the Bessel order is NaN or below -1.
package besselroots

import "errors"

var (
	// ErrNegativeCount is returned when the requested root count is
	// negative.
	ErrNegativeCount = errors.New("besselroots: root count must be non-negative")

	// ErrOrderOutOfRange is returned when the Bessel order nu is NaN or
	// less than -1, where J_nu has no real positive roots to approximate.
	ErrOrderOutOfRange = errors.New("besselroots: order must be a real number >= -1")
)
