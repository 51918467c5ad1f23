// Package hermite implements Gauss–Hermite quadrature: nodes and weights for
// numerical integration against the weight e^(−x²) on the whole real line.
//
// The rule of order n is exact for polynomials of degree < 2n. Construction
// routes through one of three algorithms by rule size — a Golub–Welsch
// eigendecomposition for tiny rules, Newton refinement on a three-term
// recurrence for moderate rules, and Newton refinement on a uniform Airy
// asymptotic expansion for large rules — then exploits the rule's mirror
// symmetry: only the non-negative half is computed and the other half is
// folded across zero.
//
// Complexity:
//
//   - Golub–Welsch (n ≤ 20): O(n³) time, O(n²) space (dense eigensolve).
//   - Recurrence Newton (n ≤ 200): O(n²) time, O(n) space.
//   - Asymptotic Newton (n > 200): O(n) time, O(n) space.
//
// Notes on implementation choices:
//
//   - All three solvers emit e^(x²)-scaled weights, each on its own overall
//     scale; the dispatcher folds, renormalizes the zeroth moment to exactly
//     √π (absorbing the per-solver scale), and only then applies the e^(−x²)
//     factor for the weighted rule.
//   - Newton iteration budgets (10 recurrence sweeps, 20 asymptotic sweeps)
//     are hard caps; hitting one is not an error.
package hermite

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Regime bounds for automatic method selection.
const (
	// golubWelschMaxOrder is the largest order routed to the eigensolver.
	golubWelschMaxOrder = 20

	// recurrenceMaxOrder is the largest order routed to the recurrence
	// Newton solver; beyond it the Airy asymptotic path takes over.
	recurrenceMaxOrder = 200
)

// GaussHermite computes the order-n Gauss–Hermite rule: ascending nodes x and
// weights w with Σ w_i·f(x_i) ≈ ∫ f(x)·e^(−x²) dx, exact for polynomials of
// degree < 2n, with Σw = √π pinned to machine precision.
//
// Returns:
//
//   - nodes:   n ascending abscissae, mirror-symmetric about zero.
//   - weights: n non-negative weights, weights[i] == weights[n-1-i]; the
//     outermost entries underflow to zero once n grows past a few hundred.
//   - err:     ErrNegativeOrder, ErrUnknownMethod, or ErrMethodRange.
//
// Options customization:
//
//   - WithMethod(m): force a solver instead of the size-based default.
//   - WithStandardNormal(): rescale to integrate against the N(0,1) density
//     (nodes ×√2, weights ÷√π, so Σw = 1).
//
// n == 0 yields two empty slices; n == 1 yields ([0], [√π]).
func GaussHermite(n int, opts ...Option) (nodes, weights []float64, err error) {
	return rule(n, true, opts)
}

// Unweighted computes the order-n rule with the weight function left out:
// the returned weights are the GaussHermite weights multiplied by e^(x_i²),
// for callers integrating f(x)·e^(−x²) with their own handling of the
// exponential factor. The two forms are reciprocal transforms of each other
// and stay numerically consistent at every node.
//
// Accepts WithMethod; WithStandardNormal yields ErrOptionConflict (the
// normalization is defined for the weighted rule only).
func Unweighted(n int, opts ...Option) (nodes, weights []float64, err error) {
	return rule(n, false, opts)
}

// rule is the shared pipeline behind both entry points.
func rule(n int, weighted bool, opts []Option) ([]float64, []float64, error) {
	// 1) Gather and validate options and order.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(n, weighted, cfg); err != nil {
		return nil, nil, err
	}

	// 2) Closed-form tiny rules.
	if n == 0 {
		return []float64{}, []float64{}, nil
	}
	if n == 1 {
		return finish([]float64{0}, []float64{math.SqrtPi}, weighted, cfg)
	}

	// 3) Solve for the non-negative half in the shared e^(x²)-scaled form.
	var xh, wh []float64
	switch {
	case cfg.Method == MethodGolubWelsch ||
		(cfg.Method == MethodAuto && n <= golubWelschMaxOrder):
		xh, wh = golubWelschHalf(n)
	case cfg.Method == MethodRecurrence ||
		(cfg.Method == MethodAuto && n <= recurrenceMaxOrder):
		xh, wh = recurrenceHalf(n)
	default:
		xh, wh = asymptoticHalf(n)
	}

	// 4) Mirror across zero.
	x, w := foldHalf(n, xh, wh)

	// 5) Pin the zeroth moment against e^(−x²) to exactly √π, absorbing the
	//    truncation error of the solver tails.
	var s float64
	for i, xi := range x {
		s += w[i] * math.Exp(-xi*xi)
	}
	floats.Scale(math.SqrtPi/s, w)

	return finish(x, w, weighted, cfg)
}

// validate rejects bad orders and option combinations before any work.
func validate(n int, weighted bool, cfg Options) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeOrder, n)
	}
	if cfg.Method < MethodAuto || cfg.Method > MethodAsymptotic {
		return fmt.Errorf("%w: %d", ErrUnknownMethod, int(cfg.Method))
	}
	if !weighted && cfg.StandardNormal {
		return ErrOptionConflict
	}
	if n > 1 && n < guessMinOrder &&
		(cfg.Method == MethodRecurrence || cfg.Method == MethodAsymptotic) {
		return fmt.Errorf("%w: %s needs order >= %d, got %d",
			ErrMethodRange, cfg.Method, guessMinOrder, n)
	}

	return nil
}

// foldHalf mirrors the non-negative half rule across zero into the full
// ascending rule. The negated reversed half supplies the lower part; for odd
// n its last entry is the zero node, so the upper part skips the half's
// leading zero.
func foldHalf(n int, xh, wh []float64) (x, w []float64) {
	m := len(xh)
	x = make([]float64, n)
	w = make([]float64, n)
	for i := 0; i < m; i++ {
		x[i] = -xh[m-1-i]
		w[i] = wh[m-1-i]
	}
	off := n % 2
	for i := off; i < m; i++ {
		x[m+i-off] = xh[i]
		w[m+i-off] = wh[i]
	}

	return x, w
}

// finish applies the weighted-form factor and the optional standard-normal
// rescale to a normalized rule.
func finish(x, w []float64, weighted bool, cfg Options) ([]float64, []float64, error) {
	if weighted {
		for i, xi := range x {
			w[i] *= math.Exp(-xi * xi)
		}
		if cfg.StandardNormal {
			floats.Scale(math.Sqrt2, x)
			floats.Scale(1/math.SqrtPi, w)
		}
	}

	return x, w, nil
}
