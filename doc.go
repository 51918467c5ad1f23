// Package fastgauss is your toolbox for fast, accurate Gaussian quadrature —
// nodes and weights for integrating against Gaussian-weighted kernels, from
// two-point rules to million-node grids.
//
// 🚀 What is fastgauss?
//
//	A small, focused numerical library that brings together:
//		• Gauss–Hermite rules: nodes & weights for ∫ f(x)·e^(−x²) dx over ℝ
//		• Three regime-tuned algorithms: Golub–Welsch, recurrence Newton,
//		  Airy-asymptotic Newton — selected automatically by rule size
//		• Unweighted and standard-normal variants of the same rule
//		• Approximate Bessel-function roots (J_ν) to ~12 digits
//
// ✨ Why choose fastgauss?
//
//   - O(n) node/weight computation for large rules — no O(n³) eigensolves
//     beyond tiny n
//   - Machine-precision invariants: Σw = √π, exact mirror symmetry,
//     non-negative weights
//   - Pure computation – no goroutines, no I/O, reentrant by construction
//   - Clear failure surface – sentinel errors for bad input, nothing silent
//
// Everything is organized under two subpackages:
//
//	hermite/     — Gauss–Hermite nodes & weights (weighted, unweighted,
//	               standard-normal), regime dispatch and Newton refinement
//	besselroots/ — approximate roots of Bessel J_ν (tables, Chebyshev series,
//	               McMahon's expansion)
//
// Quick taste:
//
//	x, w, _ := hermite.GaussHermite(40)
//	var integral float64
//	for i := range x {
//	    integral += w[i] * f(x[i]) // ≈ ∫ f(x)·e^(−x²) dx
//	}
//
// Dive into each package's doc.go for algorithms, complexity and worked
// examples.
//
//	go get github.com/katalvlaran/fastgauss
package fastgauss
