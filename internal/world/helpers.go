package world

import "math"

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ceilHalf halves a damage amount, rounding up.
func ceilHalf(n int) int {
	return (n + 1) / 2
}

func fraction(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return clamp(v/max, 0, 1)
}
