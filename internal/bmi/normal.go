package bmi

import "math"

// Abramowitz & Stegun 26.2.17, absolute error below 7.5e-8.
const (
	asP  = 0.2316419
	asB1 = 0.319381530
	asB2 = -0.356563782
	asB3 = 1.781477937
	asB4 = -1.821255978
	asB5 = 1.330274429
)

// NormalCDF approximates the standard normal cumulative distribution.
func NormalCDF(z float64) float64 {
	if math.IsNaN(z) {
		return math.NaN()
	}
	if z < 0 {
		return 1 - NormalCDF(-z)
	}
	if math.IsInf(z, 1) {
		return 1
	}
	t := 1 / (1 + asP*z)
	poly := t * (asB1 + t*(asB2+t*(asB3+t*(asB4+t*asB5))))
	pdf := math.Exp(-z*z/2) / math.Sqrt(2*math.Pi)
	return 1 - pdf*poly
}

// NormalQuantile inverts NormalCDF by bisection. p must be in (0, 1).
func NormalQuantile(p float64) float64 {
	if !(p > 0 && p < 1) {
		return math.NaN()
	}
	lo, hi := -8.0, 8.0
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		if NormalCDF(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
