package besselroots_test

import (
	"fmt"

	"github.com/katalvlaran/fastgauss/besselroots"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleApprox
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The first three roots of J₀, straight from the full-precision table.
//
// Use case:
//
//	Vibration modes of a circular drumhead: the fundamental frequencies
//	are proportional to these roots.
//
// Complexity: O(n) time, no iteration.
func ExampleApprox() {
	roots, err := besselroots.Approx(0, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", roots)
	// Output:
	// [2.4048 5.5201 8.6537]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleApprox_fractionalOrder
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	J_{1/2} is √(2/πx)·sin(x), so its roots are exactly kπ; the Chebyshev
//	series reproduces them to about 12 digits.
//
// Use case:
//
//	Sanity anchor for fractional orders where no closed form exists.
//
// Complexity: O(n) time, no iteration.
func ExampleApprox_fractionalOrder() {
	roots, err := besselroots.Approx(0.5, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", roots)
	// Output:
	// [3.1416 6.2832 9.4248]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleJ0Roots
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A block of J₀ roots with their J₁² companions, the ingredients of
//	Bessel-based Gauss–Legendre node and weight asymptotics.
//
// Use case:
//
//	Building quadrature guesses without any Bessel evaluation.
//
// Complexity: O(n) time, no iteration.
func ExampleJ0Roots() {
	roots, err := besselroots.J0Roots(25)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	amp, err := besselroots.J1SquaredAtJ0Roots(25)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("n=%d\nfirst root=%.4f\nfirst amplitude=%.4f\n", len(roots), roots[0], amp[0])
	// Output:
	// n=25
	// first root=2.4048
	// first amplitude=0.2695
}
