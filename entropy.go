package luckdraw

import (
	"math/rand"
	"sync"

	"github.com/louisbranch/luckdraw/internal/random"
)

// Entropy supplies the uniform randomness consumed by selection. It is
// satisfied by *math/rand.Rand, so callers control determinism by supplying
// a source they seeded themselves.
type Entropy interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a pseudo-random source seeded from crypto entropy,
// suitable for passing as the Entropy of repeated selection calls.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(random.MustSeed()))
}

// lockedEntropy serializes access to a shared source; *rand.Rand is not safe
// for concurrent use.
type lockedEntropy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedEntropy) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

func (l *lockedEntropy) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *lockedEntropy) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rng.Shuffle(n, swap)
}

var (
	defaultOnce sync.Once
	defaultSrc  *lockedEntropy
)

// DefaultEntropy returns the process-wide entropy source used whenever a nil
// Entropy is supplied.
func DefaultEntropy() Entropy {
	defaultOnce.Do(func() {
		defaultSrc = &lockedEntropy{rng: NewRand()}
	})
	return defaultSrc
}

// entropy resolves a caller-provided source, defaulting when nil.
func entropy(rng Entropy) Entropy {
	if rng == nil {
		return DefaultEntropy()
	}
	return rng
}
