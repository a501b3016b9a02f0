package luckdraw

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"
)

func TestFetchWeighted_NoReplacement(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	pool := []poolEntry{
		{id: "a", weight: 10},
		{id: "b", weight: 20},
		{id: "c", weight: 30},
		{id: "d", weight: 40},
	}

	for i := 0; i < 100; i++ {
		picked, err := fetchWeighted(rng, pool, len(pool))
		if err != nil {
			t.Fatalf("fetchWeighted() error = %v", err)
		}
		if len(picked) != len(pool) {
			t.Fatalf("fetchWeighted() returned %d ids, want %d", len(picked), len(pool))
		}

		seen := make(map[string]bool, len(picked))
		for _, id := range picked {
			if seen[id] {
				t.Fatalf("fetchWeighted() returned %q twice", id)
			}
			seen[id] = true
		}
	}
}

func TestFetchWeighted_ClampsCount(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	pool := []poolEntry{
		{id: "a", weight: 1},
		{id: "b", weight: 1},
	}

	picked, err := fetchWeighted(rng, pool, 10)
	if err != nil {
		t.Fatalf("fetchWeighted() error = %v", err)
	}
	if len(picked) != len(pool) {
		t.Errorf("fetchWeighted() returned %d ids, want clamped to %d", len(picked), len(pool))
	}
}

func TestFetchWeighted_ZeroTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	pool := []poolEntry{
		{id: "a", weight: 0},
		{id: "b", weight: 0},
	}

	if _, err := fetchWeighted(rng, pool, 1); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("fetchWeighted() error = %v, want ErrInvalidWeight", err)
	}
}

func TestFetchWeighted_ZeroWeightNeverPicked(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	pool := []poolEntry{
		{id: "dead", weight: 0},
		{id: "live", weight: 5},
	}

	for i := 0; i < 1000; i++ {
		picked, err := fetchWeighted(rng, pool, 1)
		if err != nil {
			t.Fatalf("fetchWeighted() error = %v", err)
		}
		if picked[0] != "live" {
			t.Fatalf("fetchWeighted() picked %q, want only positive-weight entry", picked[0])
		}
	}

	// Asking for more picks than there is probability mass fails once the
	// positive entries run out.
	if _, err := fetchWeighted(rng, pool, 2); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("fetchWeighted() error = %v, want ErrInvalidWeight", err)
	}
}

func TestFetchWeighted_Deterministic(t *testing.T) {
	pool := []poolEntry{
		{id: "a", weight: 10},
		{id: "b", weight: 20},
		{id: "c", weight: 30},
	}

	first, err := fetchWeighted(rand.New(rand.NewSource(9)), pool, 3)
	if err != nil {
		t.Fatalf("fetchWeighted() error = %v", err)
	}
	second, err := fetchWeighted(rand.New(rand.NewSource(9)), pool, 3)
	if err != nil {
		t.Fatalf("fetchWeighted() error = %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced %v and %v, want identical draw order", first, second)
		}
	}
}

func TestFetchWeighted_HeavyWeightDominates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	pool := []poolEntry{
		{id: "rare", weight: 1},
		{id: "common", weight: 999},
	}

	const trials = 10000
	common := 0
	for i := 0; i < trials; i++ {
		picked, err := fetchWeighted(rng, pool, 1)
		if err != nil {
			t.Fatalf("fetchWeighted() error = %v", err)
		}
		if picked[0] == "common" {
			common++
		}
	}

	if common < 9900 {
		t.Errorf("common picked %d of %d trials, want about 999 in 1000", common, trials)
	}
}

func TestFetchWeighted_HeavyPoolTotalSaturates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// Enough max-weight entries to push the raw sum past the total ceiling;
	// the draw must still land on an entry instead of wrapping.
	pool := make([]poolEntry, 100)
	for i := range pool {
		pool[i] = poolEntry{id: strconv.Itoa(i), weight: maxEffectiveWeight}
	}

	picked, err := fetchWeighted(rng, pool, 3)
	if err != nil {
		t.Fatalf("fetchWeighted() error = %v", err)
	}
	if len(picked) != 3 {
		t.Fatalf("fetchWeighted() returned %d ids, want 3", len(picked))
	}
}

// brokenEntropy violates the Intn contract by returning n itself, so the
// subtract walk never reaches an entry.
type brokenEntropy struct{}

func (brokenEntropy) Intn(n int) int                     { return n }
func (brokenEntropy) Float64() float64                   { return 0 }
func (brokenEntropy) Shuffle(n int, swap func(i, j int)) {}

func TestFetchWeighted_ExhaustsAttemptBudget(t *testing.T) {
	pool := []poolEntry{
		{id: "a", weight: 1},
		{id: "b", weight: 1},
	}

	if _, err := fetchWeighted(brokenEntropy{}, pool, 1); !errors.Is(err, ErrSelectionExhausted) {
		t.Errorf("fetchWeighted() error = %v, want ErrSelectionExhausted", err)
	}
}
