package hermite_test

import (
	"testing"

	"github.com/katalvlaran/fastgauss/hermite"
)

// benchmarkRule is a helper that builds the order-n rule with opts.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkRule(b *testing.B, n int, opts ...hermite.Option) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, _, err := hermite.GaussHermite(n, opts...)
		if err != nil {
			b.Fatalf("GaussHermite failed: %v", err)
		}
	}
}

// BenchmarkGaussHermite_Tiny benchmarks the eigensolver regime at order 10.
func BenchmarkGaussHermite_Tiny(b *testing.B) {
	benchmarkRule(b, 10)
}

// BenchmarkGaussHermite_Small benchmarks the recurrence regime at order 100.
func BenchmarkGaussHermite_Small(b *testing.B) {
	benchmarkRule(b, 100)
}

// BenchmarkGaussHermite_Large benchmarks the asymptotic regime at order 1000.
func BenchmarkGaussHermite_Large(b *testing.B) {
	benchmarkRule(b, 1000)
}

// BenchmarkGaussHermite_Huge benchmarks the asymptotic regime at order 10000.
func BenchmarkGaussHermite_Huge(b *testing.B) {
	benchmarkRule(b, 10000)
}

// BenchmarkGaussHermite_ForcedRecurrence benchmarks the recurrence solver at
// order 1000, past its automatic cutoff, for comparison with the asymptotic
// path at the same order.
func BenchmarkGaussHermite_ForcedRecurrence(b *testing.B) {
	benchmarkRule(b, 1000, hermite.WithMethod(hermite.MethodRecurrence))
}

// BenchmarkUnweighted_Large benchmarks the unweighted form at order 1000.
func BenchmarkUnweighted_Large(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := hermite.Unweighted(1000)
		if err != nil {
			b.Fatalf("Unweighted failed: %v", err)
		}
	}
}
