package hermite

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// golubWelschHalf computes the non-negative half of an order-n rule by the
// Golub–Welsch method: the nodes are the eigenvalues of the symmetric
// tridiagonal Jacobi matrix of the Hermite recurrence (zero diagonal,
// β_k = √(k/2)), the weights √π times the squared first eigenvector
// components. Deterministic, no iteration; intended for small n where the
// dense eigendecomposition is cheap.
func golubWelschHalf(n int) (x, w []float64) {
	jac := mat.NewSymDense(n, nil)
	for k := 1; k < n; k++ {
		jac.SetSym(k-1, k, math.Sqrt(float64(k)/2))
	}

	var es mat.EigenSym
	if ok := es.Factorize(jac, true); !ok {
		// Cannot happen for a well-formed symmetric tridiagonal matrix;
		// treat as a fatal numerical error rather than an input error.
		panic("hermite: jacobi matrix eigendecomposition failed")
	}
	ev := es.Values(nil) // ascending
	var vec mat.Dense
	es.VectorsTo(&vec)

	// Keep the x ≥ 0 entries (0-based ⌊n/2⌋..n−1; the middle eigenvalue of
	// an odd rule is the zero node) and carry the weights in the
	// e^(x²)-scaled representation shared with the Newton solvers.
	lo := n / 2
	m := n - lo
	x = make([]float64, m)
	w = make([]float64, m)
	for i := 0; i < m; i++ {
		xi := ev[lo+i]
		v0 := vec.At(0, lo+i)
		x[i] = xi
		w[i] = math.SqrtPi * v0 * v0 * math.Exp(xi*xi)
	}

	return x, w
}
