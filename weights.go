package luckdraw

import (
	"math"
	"sort"
)

// Effective weights keep three decimal digits of multiplier precision while
// staying in integer arithmetic for the sampler.
const weightScale = 1000

// Saturation ceilings keep the scaled multiplier and the final effective
// weight inside int64 arithmetic at extreme luck levels or base weights;
// without them the float conversion at high luck collapses to MinInt64 and
// the luckiest tier ends up with a negative weight.
const (
	maxScaledWeight    = int64(1) << 40
	maxEffectiveWeight = int64(1) << 56
)

// scaledMultiplier converts the multiplier for a running luck value into the
// integer weight scale, saturating at maxScaledWeight. The multiplier floor
// of 1 keeps the result at or above weightScale.
func scaledMultiplier(luck float64) int64 {
	scaled := math.Floor(Multiplier(luck) * weightScale)
	if scaled >= float64(maxScaledWeight) {
		return maxScaledWeight
	}
	return int64(scaled)
}

// effectiveWeight multiplies a base weight by a scaled multiplier,
// saturating instead of overflowing.
func effectiveWeight(base, scaled int64) int64 {
	if base > maxEffectiveWeight/scaled {
		return maxEffectiveWeight
	}
	return base * scaled
}

// weighted pairs a candidate with its derived sampling weight. It only lives
// between weight calculation and the draw.
type weighted[T any] struct {
	candidate Candidate[T]
	effective int64
}

// calcWeights derives a sampling weight for every candidate.
//
// The set is shuffled uniformly before the stable sort so that candidates
// with tied luckiness do not inherit a positional bias across repeated
// calls; the stable sort then preserves the shuffled order within each tie
// group. Walking the sorted set, each candidate's base weight is scaled by
// the multiplier for a running luck value that starts at luckLevel and loses
// luckLevel/10 every time the walk crosses into a strictly lower luckiness
// tier. Candidates sharing a tier see the same multiplier. The decay step
// uses the unclamped luck level even though Multiplier clamps its input.
func calcWeights[T any](rng Entropy, luckLevel float64, candidates []Candidate[T]) []weighted[T] {
	sorted := make([]Candidate[T], len(candidates))
	copy(sorted, candidates)
	rng.Shuffle(len(sorted), func(i, j int) {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	})
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Luckiness > sorted[j].Luckiness
	})

	out := make([]weighted[T], 0, len(sorted))
	luckRunning := luckLevel
	for i, candidate := range sorted {
		base := candidate.Weight
		if base == 0 {
			base = 1
		}
		out = append(out, weighted[T]{
			candidate: candidate,
			effective: effectiveWeight(base, scaledMultiplier(luckRunning)),
		})

		if i+1 < len(sorted) && sorted[i+1].Luckiness < candidate.Luckiness {
			luckRunning -= luckLevel / 10
		}
	}
	return out
}
