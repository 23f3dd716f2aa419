package montecarlo

import "math"

// Mean returns the arithmetic mean of xs, or NaN for an empty slice.
// Complexity: O(len(xs)).
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// Stddev returns the sample standard deviation of xs, using the N-1
// denominator. A single sample has no spread and yields 0; an empty slice
// yields NaN.
// Complexity: O(len(xs)).
func Stddev(xs []float64) float64 {
	switch len(xs) {
	case 0:
		return math.NaN()
	case 1:
		return 0
	}
	mu := Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}

	return math.Sqrt(ss / float64(len(xs)-1))
}

// ConfidenceInterval returns the 95% normal confidence bounds
// mean ∓ 1.96·stddev/√samples. samples must be positive.
func ConfidenceInterval(mean, stddev float64, samples int) (lo, hi float64) {
	half := confidence95 * stddev / math.Sqrt(float64(samples))

	return mean - half, mean + half
}
