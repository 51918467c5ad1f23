package hermite

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// rescaleThreshold bounds the magnitude of recurrence intermediates;
	// beyond it the running pair is damped by the decay factor.
	rescaleThreshold = 100

	// recurrenceMaxIter caps the Newton sweeps of the recurrence solver.
	recurrenceMaxIter = 10

	// newtonTolRec stops the recurrence solver: √(machine epsilon) = 2⁻²⁶.
	newtonTolRec = 0x1p-26
)

// hermpolyRec evaluates the scaled Hermite polynomial of degree n ≥ 1 at x by
// the orthonormal three-term recurrence
//
//	H₀ = 1,  H₁ = x,  H_{k+1} = x·H_k/√(k+1) − H_{k−1}/√(1+1/k),
//
// damping the running pair by w = e^(−x²/4n) whenever it exceeds the
// rescale threshold, at most n times total (counter wc); the n−wc factors not
// consumed by the loop are applied at the end, so the result always carries
// the full e^(−x²/4) envelope. Returns the pair (H_n, −x·H_n + √n·H_{n−1})
// consumed by the Newton step.
func hermpolyRec(n int, x float64) (val, dval float64) {
	w := math.Exp(-x * x / (4 * float64(n)))
	wc := 0
	hold, h := 1.0, x
	for k := 1; k < n; k++ {
		hold, h = h, x*h/math.Sqrt(float64(k+1))-hold/math.Sqrt(1+1/float64(k))
		for math.Abs(h) >= rescaleThreshold && wc < n { // regularise
			h *= w
			hold *= w
			wc++
		}
	}
	for ; wc < n; wc++ {
		h *= w
		hold *= w
	}

	return h, -x*h + math.Sqrt(float64(n))*hold
}

// recurrenceHalf computes the non-negative half of an order-n rule by Newton
// iteration on the recurrence evaluator: up to recurrenceMaxIter sweeps over
// all half-nodes, each update dx = val/dval with NaN updates frozen to zero
// (a vanishing derivative must not poison the sweep), stopping early once
// ‖dx‖∞ < √ε. Runs in the √2-scaled variable; weights are 1/dval² from the
// last sweep.
func recurrenceHalf(n int) (x, w []float64) {
	x = initialGuesses(n)
	floats.Scale(math.Sqrt2, x)

	m := len(x)
	dval := make([]float64, m)
	dx := make([]float64, m)
	for iter := 0; iter < recurrenceMaxIter; iter++ {
		for i, xi := range x {
			v, dv := hermpolyRec(n, xi)
			dval[i] = dv
			d := v / dv
			if math.IsNaN(d) {
				d = 0
			}
			dx[i] = d
			x[i] = xi - d
		}
		if floats.Norm(dx, math.Inf(1)) < newtonTolRec {
			break
		}
	}

	floats.Scale(1/math.Sqrt2, x)
	w = make([]float64, m)
	for i, dv := range dval {
		w[i] = 1 / (dv * dv)
	}

	return x, w
}
