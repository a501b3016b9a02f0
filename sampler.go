package luckdraw

// poolEntry is one remaining entry in the sampling pool.
type poolEntry struct {
	id     string
	weight int64
}

// attemptFactor bounds the number of draws at attemptFactor times the pool
// size, so pathological weight inputs fail instead of spinning.
const attemptFactor = 10

// fetchWeighted draws num identifiers from the pool without replacement.
//
// Each draw picks a uniform integer in [1, total remaining weight] and walks
// the pool in entry order, subtracting weights until the value drops to zero
// or below; the entry reached is selected and removed. Identifiers come back
// in draw order. num is clamped to the pool size.
//
// A pool whose remaining total weight is not positive cannot produce a draw
// and fails with ErrInvalidWeight; this also covers the case where every
// remaining entry has weight zero. If the attempt budget runs out first,
// ErrSelectionExhausted is returned instead.
func fetchWeighted(rng Entropy, entries []poolEntry, num int) ([]string, error) {
	if num > len(entries) {
		num = len(entries)
	}

	pool := make([]poolEntry, len(entries))
	copy(pool, entries)

	picked := make([]string, 0, num)
	budget := attemptFactor * len(entries)
	attempts := 0
	for len(picked) < num {
		total := poolTotal(pool)
		if total <= 0 {
			return nil, ErrInvalidWeight
		}
		attempts++
		if attempts > budget {
			return nil, ErrSelectionExhausted
		}

		r := drawWeight(rng, total)
		for i, entry := range pool {
			r -= entry.weight
			if r <= 0 {
				picked = append(picked, entry.id)
				pool = append(pool[:i], pool[i+1:]...)
				break
			}
		}
	}
	return picked, nil
}

// Pool totals saturate at a ceiling drawWeight can cover on any platform.
const maxPoolWeight = int64(1) << 62

// poolTotal sums the remaining weights, saturating at maxPoolWeight so the
// sum cannot wrap however heavy the pool is.
func poolTotal(pool []poolEntry) int64 {
	var total int64
	for _, entry := range pool {
		if entry.weight >= maxPoolWeight-total {
			return maxPoolWeight
		}
		total += entry.weight
	}
	return total
}

// drawWeight returns a uniform draw in [1, total]. Intn takes a platform
// int, so totals past its range are composed from three draws covering 62
// bits, rejecting values beyond the largest clean multiple of total.
func drawWeight(rng Entropy, total int64) int64 {
	if total <= int64(^uint(0)>>1) {
		return int64(rng.Intn(int(total))) + 1
	}

	limit := (maxPoolWeight / total) * total
	for {
		v := int64(rng.Intn(1<<30))<<32 | int64(rng.Intn(1<<30))<<2 | int64(rng.Intn(1<<2))
		if v < limit {
			return v%total + 1
		}
	}
}
