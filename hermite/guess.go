package hermite

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// guessMinOrder is the smallest order whose initial guesses are valid;
	// both asymptotic families degrade below it. The dispatcher never routes
	// smaller rules to the Newton solvers.
	guessMinOrder = 20

	// splitFraction is the empirical patch point between the Tricomi and
	// Gatteschi guess families, as a fraction of the rule order. The added
	// machine epsilon keeps ⌊p·n⌋ stable when 0.4985·n lands on an integer.
	splitFraction = 0.4985

	// machEps is the double-precision machine epsilon, 2⁻⁵².
	machEps = 0x1p-52
)

// initialGuesses produces ascending initial estimates for the non-negative
// Hermite nodes of an order-n rule: ⌈n/2⌉ entries, the first exactly 0 for
// odd n. Estimates near zero come from Tricomi's sine-equation expansion,
// estimates near the largest node from Gatteschi's Airy-root expansion,
// patched at index ⌊(splitFraction+ε)·n⌋.
//
// L. Gatteschi, Asymptotics and bounds for the zeros of Laguerre
// polynomials: a survey, J. Comput. Appl. Math., 144 (2002), pp. 7-27.
// F. G. Tricomi, Sugli zeri delle funzioni di cui si conosce una
// rappresentazione asintotica, Ann. Mat. Pura Appl. 26 (1947), pp. 283-300.
func initialGuesses(n int) []float64 {
	if n < guessMinOrder {
		panic("hermite: initial guesses require order >= 20")
	}

	// 1) Parity split: m positive estimates, offset a of the underlying
	//    Laguerre parameter, ν = 4m+2a+2.
	var (
		m int
		a float64
	)
	if n%2 == 1 {
		m, a = (n-1)/2, 0.5
	} else {
		m, a = n/2, -0.5
	}
	nu := 4*float64(m) + 2*a + 2

	// 2) Candidate vectors, both ascending, both length m.
	sine := tricomiGuesses(m, a, nu)
	airy := gatteschiGuesses(m, a, nu)

	// 3) Patch: sine below the split index, Airy at and above it.
	split := int(math.Floor((splitFraction + machEps) * float64(n)))
	if split > m {
		split = m
	}
	x := make([]float64, 0, m+1)
	if n%2 == 1 {
		x = append(x, 0)
	}
	x = append(x, sine[:split]...)
	x = append(x, airy[split:]...)

	return x
}

// tricomiGuesses estimates the m non-negative nodes nearest zero by solving
// ψ − sin ψ = π(4m−4k+3)/ν with exactly 7 Newton steps from ψ = π/2 (the
// step count is fixed, no convergence check), then mapping through
// t = cos²(ψ/2).
func tricomiGuesses(m int, a, nu float64) []float64 {
	x := make([]float64, m)
	for k := 0; k < m; k++ {
		rhs := math.Pi * (4*float64(m) - 4*float64(k+1) + 3) / nu
		psi := math.Pi / 2
		for i := 0; i < 7; i++ {
			psi -= (psi - math.Sin(psi) - rhs) / (1 - math.Cos(psi))
		}
		c := math.Cos(psi / 2)
		t := c * c
		x[k] = math.Sqrt(nu*t - ((t+0.25)/((t-1)*(t-1))+(3*a*a-1))/(3*nu))
	}

	return x
}

// gatteschiGuesses estimates the m non-negative nodes nearest √(2n+1) from
// scaled Airy roots: asymptotic root approximations with the first 10
// replaced by exact table values, pushed through Gatteschi's expansion in
// powers of ν^(1/3). Built largest-first, returned ascending.
func gatteschiGuesses(m int, a, nu float64) []float64 {
	ar := make([]float64, m)
	for k := range ar {
		ar[k] = -airyRootApprox(3 * math.Pi / 8 * (4*float64(k+1) - 1))
	}
	copy(ar, airyRoots[:10]) // exact low roots; m ≥ 10 for any n ≥ 20

	var (
		two13 = math.Cbrt(2)
		two23 = two13 * two13
		two43 = 2 * two13
		nu13  = math.Cbrt(nu)
	)
	x := make([]float64, m)
	for k, r := range ar {
		r2 := r * r
		r3 := r2 * r
		r4 := r2 * r2
		r5 := r3 * r2
		t := nu + two23*r*nu13 +
			0.2*two43*r2/nu13 +
			(11.0/35-a*a-12.0/175)*r3/nu +
			(16.0/1575*r+92.0/7875*r4)*two23/(nu*nu13*nu13) -
			(15152.0/3031875*r5+1088.0/121275*r2)*two13/(nu*nu*nu13)
		x[k] = math.Sqrt(math.Abs(t))
	}
	floats.Reverse(x)

	return x
}

// airyRootApprox approximates the magnitude of an Airy root from its
// asymptotic series T(t) = t^(2/3)·(1 + 5/48·t⁻² − …), evaluated by Horner
// in t⁻².
func airyRootApprox(t float64) float64 {
	s := 1 / (t * t)

	return math.Pow(t, 2.0/3) * (1 + s*(5.0/48+s*(-5.0/36+s*(77125.0/82944+s*(-108056875.0/6967296+s*(162375596875.0/334430208))))))
}
