package luckdraw

import "math"

// Exponential fit tuned for luck levels in the 0-100 range: the multiplier
// sits at the floor of 1 for low luck, reaches roughly 11 at 50 and 133 at
// 100. The coefficient and rate are tuning parameters; monotonicity and the
// floor hold for any positive values.
const (
	multiplierCoeff = 0.9
	multiplierRate  = 0.05
)

// Multiplier maps a luck level to the scalar multiplier applied to base
// weights and odds. Luck levels below 1 are clamped to 1, and the result is
// never less than 1. The function is pure and monotonically non-decreasing.
func Multiplier(luckLevel float64) float64 {
	x := math.Max(luckLevel, 1)
	y := multiplierCoeff * math.Exp(multiplierRate*x)
	return math.Max(y, 1)
}
