package hermite

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext"
)

const (
	// asymptoticMaxIter caps the Newton sweeps of the asymptotic solver.
	asymptoticMaxIter = 20

	// newtonTolAsy stops the asymptotic solver: √(machine epsilon)/10.
	// Tighter than the recurrence tolerance; the θ variable compresses the
	// outer nodes, so equal node accuracy needs a smaller θ step.
	newtonTolAsy = 0x1p-26 / 10
)

// hermpolyAsyAiry evaluates the scaled Hermite polynomial of degree n and its
// derivative pair at θ, where x = √(2n+1)·cos θ, by the uniform Airy
// asymptotic expansion (DLMF 12.10.35–12.10.46) truncated after the cubic
// term. The Airy function and its derivative are taken at (2n+1)^(2/3)·χ(θ)
// with χ = −(3η/2)^(2/3), η = θ/2 − sin(2θ)/4.
func hermpolyAsyAiry(n int, t float64) (val, dval float64) {
	musq := 2*float64(n) + 1
	cosT := math.Cos(t)
	sinT := math.Sin(t)
	sin2T := 2 * cosT * sinT
	eta := 0.5*t - 0.25*sin2T
	chi := -math.Pow(3*eta/2, 2.0/3)
	phi := math.Pow(-chi/(sinT*sinT), 0.25)

	arg := complex(math.Pow(musq, 2.0/3)*chi, 0)
	airy0 := real(mathext.AiryAi(arg))
	airy1 := real(mathext.AiryAiDeriv(arg))

	// Coefficient ladder of DLMF 12.10.43.
	const (
		a1 = 15.0 / 144
		b1 = -7.0 / 5 * a1
		a2 = 5.0 * 7 * 9 * 11 / 2 / 144.0 / 144.0
		b2 = -13.0 / 11 * a2
		a3 = 7.0 * 9 * 11 * 13 * 15 * 17 / 6 / 144.0 / 144.0 / 144.0
		b3 = -19.0 / 17 * a3
	)

	cos2T := cosT * cosT
	cos3T := cos2T * cosT
	cos4T := cos3T * cosT
	cos5T := cos4T * cosT
	cos7T := cos5T * cos2T
	cos9T := cos7T * cos2T

	chi2 := chi * chi
	chi3 := chi2 * chi
	chi4 := chi3 * chi
	chi5 := chi4 * chi

	phi2 := phi * phi
	phi6 := phi2 * phi2 * phi2
	phi12 := phi6 * phi6
	phi18 := phi12 * phi6

	// u polynomials of DLMF 12.10.9.
	u1 := (cos3T - 6*cosT) / 24
	u2 := (-9*cos4T + 249*cos2T + 145) / 1152
	u3 := (-4042*cos9T + 18189*cos7T - 28287*cos5T - 151995*cos3T - 259290*cosT) / 414720

	val = airy0
	B0 := -(phi6*u1 + a1) / chi2
	val += B0 * airy1 / math.Pow(musq, 4.0/3)
	A1 := (phi12*u2 + b1*phi6*u1 + b2) / chi3
	val += A1 * airy0 / (musq * musq)
	B1 := -(phi18*u3 + a1*phi12*u2 + a2*phi6*u1 + a3) / chi5
	val += B1 * airy1 / math.Pow(musq, 4.0/3+2)
	val *= 2 * math.SqrtPi * math.Pow(musq, 1.0/6) * phi

	// v polynomials of DLMF 12.10.10.
	v1 := (cos3T + 6*cosT) / 24
	v2 := (15*cos4T - 327*cos2T - 143) / 1152
	v3 := (259290*cosT + 238425*cos3T - 36387*cos5T + 18189*cos7T - 4042*cos9T) / 414720

	C0 := -(phi6*v1 + b1) / chi
	dval = C0 * airy0 / math.Pow(musq, 2.0/3)
	dval += airy1
	C1 := -(phi18*v3 + b1*phi12*v2 + b2*phi6*v1 + b3) / chi4
	dval += C1 * airy0 / math.Pow(musq, 2.0/3+2)
	D1 := (phi12*v2 + a1*phi6*v1 + a2) / chi3
	dval += D1 * airy1 / (musq * musq)
	dval *= math.Sqrt(2*math.Pi) * math.Pow(musq, 1.0/3) / phi

	return val, dval
}

// asymptoticHalf computes the non-negative half of an order-n rule by Newton
// iteration in θ-space: seeds θ = acos(x₀/√(2n+1)) from the initial guesses,
// runs up to asymptoticMaxIter sweeps with update
// dθ = −val/(√2·√(2n+1)·dval·sin θ), and stops once ‖dθ‖∞ < √ε/10. Nodes are
// recovered as x = √(2n+1)·cos θ; weights are 1/(x·val + √2·dval)² from the
// last sweep.
func asymptoticHalf(n int) (x, w []float64) {
	x = initialGuesses(n)
	m := len(x)
	sqrt2np1 := math.Sqrt(2*float64(n) + 1)

	theta := make([]float64, m)
	for i, xi := range x {
		theta[i] = math.Acos(xi / sqrt2np1)
	}

	val := make([]float64, m)
	dval := make([]float64, m)
	dt := make([]float64, m)
	for iter := 0; iter < asymptoticMaxIter; iter++ {
		for i, ti := range theta {
			v, dv := hermpolyAsyAiry(n, ti)
			val[i], dval[i] = v, dv
			d := -v / (math.Sqrt2 * sqrt2np1 * dv * math.Sin(ti))
			dt[i] = d
			theta[i] = ti - d
		}
		if floats.Norm(dt, math.Inf(1)) < newtonTolAsy {
			break
		}
	}

	w = make([]float64, m)
	for i, ti := range theta {
		x[i] = sqrt2np1 * math.Cos(ti)
		ders := x[i]*val[i] + math.Sqrt2*dval[i]
		w[i] = 1 / (ders * ders)
	}

	return x, w
}
