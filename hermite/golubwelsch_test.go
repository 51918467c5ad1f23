// File: hermite/golubwelsch_test.go
package hermite

import (
	"math"
	"testing"
)

// TestGolubWelschHalf_Structure checks the kept eigenvalue block for both
// parities: the non-negative half, ascending, with the odd order's middle
// eigenvalue pinned to the origin by symmetry of the Jacobi matrix.
func TestGolubWelschHalf_Structure(t *testing.T) {
	x, w := golubWelschHalf(4)
	if len(x) != 2 || len(w) != 2 {
		t.Fatalf("golubWelschHalf(4) half lengths = %d, %d; want 2, 2", len(x), len(w))
	}
	if x[0] <= 0 {
		t.Errorf("even order: smallest kept eigenvalue %g; want positive", x[0])
	}

	x, w = golubWelschHalf(5)
	if len(x) != 3 || len(w) != 3 {
		t.Fatalf("golubWelschHalf(5) half lengths = %d, %d; want 3, 3", len(x), len(w))
	}
	if math.Abs(x[0]) > 1e-12 {
		t.Errorf("odd order: middle eigenvalue = %g; want ~0", x[0])
	}
	for i := 1; i < len(x); i++ {
		if x[i-1] >= x[i] {
			t.Fatalf("eigenvalues not ascending at index %d: %g >= %g", i, x[i-1], x[i])
		}
	}
	for i, wi := range w {
		if wi <= 0 {
			t.Errorf("scaled weight %d = %g; want positive", i, wi)
		}
	}
}

// TestGolubWelschHalf_KnownRule pins the classic order-4 rule: nodes at
// ±0.5246476232752903 and ±1.6506801238857845.
func TestGolubWelschHalf_KnownRule(t *testing.T) {
	x, _ := golubWelschHalf(4)
	want := []float64{0.5246476232752903, 1.6506801238857845}
	for i := range want {
		if diff := math.Abs(x[i] - want[i]); diff > 1e-13 {
			t.Errorf("node %d = %.16g; want %.16g (diff %g)", i, x[i], want[i], diff)
		}
	}
}
