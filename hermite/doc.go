// Package hermite provides fast, accurate Gauss–Hermite quadrature rules:
// the nodes and weights that make Σ wᵢ·f(xᵢ) ≈ ∫ f(x)·e^(−x²) dx exact for
// every polynomial f of degree below 2n.
//
// Overview:
//
//   - The order-n rule's nodes are the n roots of the degree-n Hermite
//     polynomial; the weights are positive and sum to √π.
//   - Nodes and weights are mirror-symmetric about zero, so only the
//     non-negative half is ever computed; the lower half is a reflection.
//   - Three algorithms cover the full order range, selected automatically
//     by size so that every order from 0 to millions resolves in at most
//     O(n²) time — O(n) beyond order 200.
//
// When to use:
//
//   - Integrating smooth functions against the Gaussian weight e^(−x²),
//     e.g. expectations under a normal distribution (see WithStandardNormal).
//   - Spectral and pseudospectral methods on unbounded domains.
//   - Probabilistic numerics, filtering (Gauss–Hermite Kalman variants),
//     and moment computations where exactness on polynomials matters.
//
// Key features:
//
//   - Automatic algorithm selection: Golub–Welsch eigensolve (n ≤ 20),
//     Newton on the scaled three-term recurrence (n ≤ 200), Newton on a
//     uniform Airy-type asymptotic expansion (n > 200).
//   - Functional options: WithMethod forces a particular solver,
//     WithStandardNormal rescales the rule to the N(0,1) density.
//   - Weighted and unweighted forms: GaussHermite bakes e^(−xᵢ²) into the
//     weights; Unweighted leaves it to the caller, which avoids underflow
//     for |x| ≳ 27 where e^(−x²) is below the smallest positive float64.
//   - The zeroth moment Σ wᵢ·e^(−xᵢ²) is renormalized to exactly √π, so
//     constant functions integrate without truncation error at any order.
//
// Performance and complexity:
//
//   - Golub–Welsch: O(n³) time, O(n²) space. Dense symmetric eigensolve of
//     the Jacobi matrix; only used for tiny rules where it is both fast and
//     the most accurate option.
//   - Recurrence Newton: O(n²) time, O(n) space. At most 10 vectorized
//     Newton sweeps over the half rule, each sweep O(n) nodes × O(n)
//     recurrence steps.
//   - Asymptotic Newton: O(n) time, O(n) space. At most 20 Newton sweeps,
//     each node evaluated in O(1) via the Airy expansion.
//
// Error handling (sentinel errors):
//
//   - ErrNegativeOrder:
//     Returned for n < 0; every non-negative order is valid.
//   - ErrUnknownMethod:
//     Returned if WithMethod is given a value outside the Method enum.
//   - ErrMethodRange:
//     Returned if MethodRecurrence or MethodAsymptotic is forced for
//     1 < n < 20, where the Newton initial guesses are not defined.
//   - ErrOptionConflict:
//     Returned by Unweighted when combined with WithStandardNormal.
//
// API reference:
//
//	func GaussHermite(n int, opts ...Option) (nodes, weights []float64, err error)
//	func Unweighted(n int, opts ...Option) (nodes, weights []float64, err error)
//
//	  - n:       rule order, n ≥ 0. n == 0 yields empty slices,
//	             n == 1 yields ([0], [√π]).
//	  - opts:    zero or more functional options:
//	      • WithMethod(Method):   force MethodGolubWelsch, MethodRecurrence,
//	                              or MethodAsymptotic (default MethodAuto).
//	      • WithStandardNormal(): nodes ×√2, weights ÷√π, so the rule
//	                              integrates against the standard normal
//	                              density and Σw = 1 (GaussHermite only).
//	  - nodes:   strictly ascending, symmetric about zero.
//	  - weights: non-negative, palindromic (weights[i] == weights[n-1-i]).
//
// Accuracy:
//
//   - Nodes are resolved to ~1e-15 relative accuracy across all regimes;
//     weights to ~1e-14 relative. Regime boundaries (20→21, 200→201) agree
//     to ~1e-9 absolute on nodes.
//
// See also:
//
//   - besselroots.Approx: Bessel J_ν root approximations built from the
//     same family of asymptotic techniques.
package hermite
