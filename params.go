package freqsketch

import "math"

// DeriveFromError computes table dimensions (depth, width) from the
// approximation error bound epsilon and the failure probability delta,
// per w = ceil(e/epsilon), d = ceil(ln(1/delta)).
func DeriveFromError(epsilon, delta float64) (depth, width int) {
	if epsilon <= 0 || epsilon >= 1 {
		panic("freqsketch: epsilon must be in (0, 1)")
	}
	if delta <= 0 || delta >= 1 {
		panic("freqsketch: delta must be in (0, 1)")
	}
	width = int(math.Ceil(math.E / epsilon))
	depth = int(math.Ceil(math.Log(1 / delta)))
	return depth, width
}

// DeriveFromSize computes the inverse of DeriveFromError: the (epsilon,
// delta) bounds implied by a chosen (depth, width).
func DeriveFromSize(depth, width int) (epsilon, delta float64) {
	if depth <= 0 || width <= 0 {
		panic("freqsketch: depth and width must be positive")
	}
	epsilon = math.E / float64(width)
	delta = math.Exp(-float64(depth))
	return epsilon, delta
}
