package luckdraw

import "math"

// DefaultOddsCap is the cap most callers want for OddsWithLuck: luck can
// boost a chance, but never make it a near-certainty.
const DefaultOddsCap = 0.9

// Probabilities are truncated to five decimal digits before comparison.
const oddsPrecision = 1e5

// RollOdds draws one uniform sample and reports whether it landed under the
// given probability. Probabilities at or below zero never succeed;
// probabilities at or above one always succeed.
func RollOdds(rng Entropy, probability float64) bool {
	p := math.Trunc(probability*oddsPrecision) / oddsPrecision
	if p <= 0 {
		return false
	}
	return entropy(rng).Float64() < p
}

// OddsWithLuck boosts a base probability by the luck multiplier, capped so
// that luck alone cannot push the odds past cap.
func OddsWithLuck(luckLevel, baseOdds, cap float64) float64 {
	return math.Min(baseOdds*Multiplier(luckLevel), cap)
}
