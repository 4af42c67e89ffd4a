package usecase

import "math"

// The degenerate-division fallbacks of every metric live here so that no
// formula hand-rolls its own zero guards.

// safeDiv returns num/den, or fallback when den is zero.
func safeDiv(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	return num / den
}

// mean returns the arithmetic mean, or 0 for an empty slice.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStdev returns the sample standard deviation (n-1 denominator), or 0
// when fewer than two values are present.
func sampleStdev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	ss := 0.0
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// round2 rounds to two decimal places for display values.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
