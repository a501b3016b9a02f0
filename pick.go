package luckdraw

import "strconv"

// PickLucky selects num candidates without replacement, favoring higher
// luckiness more strongly as luckLevel rises, and returns their payloads in
// draw order.
//
// # Determinism
//
// Randomness comes only from rng; callers that supply a source they seeded
// themselves get a reproducible draw sequence. A nil rng uses the
// process-wide source from DefaultEntropy.
//
// # Clamping
//
// num greater than the candidate count returns every payload, in random
// order. A luckLevel below 1 behaves like 1 for multiplier purposes.
//
// # Errors
//
//   - num must be non-negative, otherwise ErrInvalidCount is returned.
//   - At least one candidate must be provided when num > 0, otherwise
//     ErrNoCandidates is returned.
//   - Identifiers must be unique and weights non-negative, otherwise
//     ErrDuplicateID or ErrInvalidCandidateWeight is returned.
//   - A pool whose weights sum to zero fails with ErrInvalidWeight.
//
// Either a full, correctly sized result is returned or an error; there are
// no partial results.
func PickLucky[T any](rng Entropy, luckLevel float64, candidates []Candidate[T], num int) ([]T, error) {
	if num < 0 {
		return nil, ErrInvalidCount
	}
	if len(candidates) == 0 {
		if num > 0 {
			return nil, ErrNoCandidates
		}
		return []T{}, nil
	}

	byID := make(map[string]Candidate[T], len(candidates))
	for _, candidate := range candidates {
		if _, ok := byID[candidate.ID]; ok {
			return nil, ErrDuplicateID
		}
		if candidate.Weight < 0 {
			return nil, ErrInvalidCandidateWeight
		}
		byID[candidate.ID] = candidate
	}

	src := entropy(rng)
	weights := calcWeights(src, luckLevel, candidates)

	pool := make([]poolEntry, len(weights))
	for i, w := range weights {
		pool[i] = poolEntry{id: w.candidate.ID, weight: w.effective}
	}

	ids, err := fetchWeighted(src, pool, num)
	if err != nil {
		return nil, err
	}

	payloads := make([]T, len(ids))
	for i, id := range ids {
		payloads[i] = byID[id].Payload
	}
	return payloads, nil
}

// PickLuckyOne is PickLucky for a single pick, returning the payload
// unwrapped.
func PickLuckyOne[T any](rng Entropy, luckLevel float64, candidates []Candidate[T]) (T, error) {
	picks, err := PickLucky(rng, luckLevel, candidates, 1)
	if err != nil {
		var zero T
		return zero, err
	}
	return picks[0], nil
}

// LuckyRandInt returns a random integer in [min, max], biased toward max as
// luckLevel rises. Every value in the range is a candidate whose luckiness
// equals the value itself, so higher values occupy the luckier tiers.
func LuckyRandInt(rng Entropy, luckLevel float64, min, max int) (int, error) {
	if min > max {
		return 0, ErrInvalidRange
	}

	candidates := make([]Candidate[int], 0, max-min+1)
	for v := min; v <= max; v++ {
		candidates = append(candidates, Candidate[int]{
			ID:        strconv.Itoa(v),
			Luckiness: float64(v),
			Payload:   v,
		})
	}
	return PickLuckyOne(rng, luckLevel, candidates)
}
