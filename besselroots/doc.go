// Package besselroots provides fast closed-form approximations for the
// positive roots of Bessel functions of the first kind J_ν.
//
// Overview:
//
//   - Approx(ν, n) returns the first n roots of J_ν for any ν ≥ -1 to
//     roughly 12 significant digits, without evaluating J_ν itself.
//   - J0Roots and J1SquaredAtJ0Roots are specialized ν = 0 paths: J₀ roots
//     and the squared J₁ amplitude at those roots, the pair of quantities
//     Gauss–Legendre-type node and weight formulas consume.
//   - No iteration anywhere: tables for low roots, truncated asymptotic
//     series beyond, with the truncation depth tapered to the root index.
//
// When to use:
//
//   - Seeding Newton refinement of Bessel roots with guesses good enough to
//     converge in one or two steps.
//   - Eigenfrequency layouts for circular membranes and cylindrical
//     waveguides, where 12 digits outclass the physical model anyway.
//   - Quadrature construction on bounded intervals via Bessel asymptotics.
//
// Accuracy, by region of the order ν (Approx):
//
//   - ν == 0:       full double precision for roots 1..20 (tabulated), then
//     McMahon's expansion, whose error falls rapidly with the root index.
//   - -1 ≤ ν ≤ 5:   at least 12 decimal figures for roots 1..6 via
//     Piessens's 30-term Chebyshev series, then McMahon.
//   - ν > 5:        McMahon throughout; the first few roots degrade to
//     moderate accuracy, the rest stay very accurate.
//
// Error handling (sentinel errors):
//
//   - ErrNegativeCount:
//     Returned when the requested number of roots is negative.
//   - ErrOrderOutOfRange:
//     Returned when ν is NaN or below -1; J_ν has no real positive root
//     structure to approximate there. Never silently returns zeros.
//
// Performance and complexity:
//
//   - All functions run in O(n) time and O(n) space with small constants;
//     no special-function evaluation is involved.
//
// See also:
//
//   - hermite.GaussHermite: quadrature rules built from the same family of
//     asymptotic techniques on the Hermite side.
package besselroots
