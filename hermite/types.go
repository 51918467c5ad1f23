// Package hermite defines the configuration surface and error taxonomy for
// Gauss–Hermite quadrature rule construction.
//
// A rule of order n consists of n ascending nodes x_i and n positive weights
// w_i such that Σ w_i·f(x_i) ≈ ∫ f(x)·e^(−x²) dx over the whole real line,
// exact for polynomials of degree < 2n. Nodes and weights are computed by one
// of three algorithms selected by rule size (or forced via WithMethod):
//
//	– Golub–Welsch        n ≤ 20   eigendecomposition of the Jacobi matrix
//	– Recurrence Newton   n ≤ 200  three-term recurrence + Newton refinement
//	– Asymptotic Newton   n > 200  Airy expansion in θ-space + Newton refinement
//
// Options:
//
//	– Method:         force one of the three algorithms (default: by size).
//	– StandardNormal: rescale the weighted rule to integrate against the
//	                  standard normal density (nodes ×√2, weights ÷√π).
//
// Errors (sentinel):
//
//	– ErrNegativeOrder  if the requested order n is negative.
//	– ErrUnknownMethod  if WithMethod was given an undefined Method value.
//	– ErrMethodRange    if a forced method cannot handle the requested order.
//	– ErrOptionConflict if WithStandardNormal is combined with Unweighted.
//
// Example usage:
//
//	// 64-point rule for E[f(Z)], Z ~ N(0,1):
//	x, w, err := hermite.GaussHermite(64, hermite.WithStandardNormal())
//	if err != nil {
//	    log.Fatal(err)
//	}
package hermite

import "errors"

// Sentinel errors returned by the rule constructors.
var (
	// ErrNegativeOrder indicates that a negative rule order was requested.
	ErrNegativeOrder = errors.New("hermite: order must be non-negative")

	// ErrUnknownMethod indicates that WithMethod received a value outside the
	// defined Method constants.
	ErrUnknownMethod = errors.New("hermite: unknown solver method")

	// ErrMethodRange indicates that a forced method does not support the
	// requested order (the Newton solvers need n ≥ 20 for their initial
	// guesses).
	ErrMethodRange = errors.New("hermite: forced method does not support this order")

	// ErrOptionConflict indicates that WithStandardNormal was combined with
	// the unweighted rule; the normalization is defined for the weighted rule
	// only.
	ErrOptionConflict = errors.New("hermite: WithStandardNormal requires the weighted rule")
)

// Method selects the node/weight algorithm.
//
// MethodAuto        – pick by rule size (Golub–Welsch ≤ 20 < recurrence ≤ 200 < asymptotic).
// MethodGolubWelsch – Jacobi-matrix eigendecomposition; any order, O(n²) space.
// MethodRecurrence  – recurrence-evaluated Newton refinement; order ≥ 20.
// MethodAsymptotic  – Airy-asymptotic Newton refinement in θ-space; order ≥ 20.
type Method int

const (
	// MethodAuto selects the algorithm from the rule order (the default).
	MethodAuto Method = iota

	// MethodGolubWelsch forces the Jacobi-matrix eigendecomposition path.
	MethodGolubWelsch

	// MethodRecurrence forces the three-term-recurrence Newton path.
	MethodRecurrence

	// MethodAsymptotic forces the Airy-asymptotic Newton path.
	MethodAsymptotic
)

// String returns a short human-readable method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodGolubWelsch:
		return "golub-welsch"
	case MethodRecurrence:
		return "recurrence"
	case MethodAsymptotic:
		return "asymptotic"
	default:
		return "unknown"
	}
}

// Options configures rule construction.
//
// Method         – algorithm selection; MethodAuto picks by rule size.
// StandardNormal – rescale the weighted rule for the standard normal density.
type Options struct {
	Method         Method // Which solver to run (MethodAuto: decide by order)
	StandardNormal bool   // Whether to rescale for the N(0,1) density
}

// Option represents a functional option for rule construction.
type Option func(*Options)

// WithMethod forces a specific solver instead of the size-based default.
// The value is validated by the entry points: undefined values yield
// ErrUnknownMethod, and the Newton solvers yield ErrMethodRange for orders
// below 20 (their initial guesses are asymptotic in the order).
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithStandardNormal rescales the weighted rule so that it integrates
// against the standard normal density φ instead of e^(−x²):
// nodes become √2·x and weights w/√π, so Σw = 1 and Σw·x² = 1.
// Only meaningful for GaussHermite; Unweighted rejects it with
// ErrOptionConflict.
func WithStandardNormal() Option {
	return func(o *Options) {
		o.StandardNormal = true
	}
}

// DefaultOptions returns the Options used when no functional options are
// passed: automatic method selection, no normal rescale.
func DefaultOptions() Options {
	return Options{
		Method:         MethodAuto,
		StandardNormal: false,
	}
}
