// Package random provides seed generation for pseudo-random sources.
//
// Seeds come from crypto/rand so that independently constructed sources do
// not collide, while the sources themselves stay deterministic once seeded.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// MustSeed returns a crypto seed, falling back to the wall clock when the
// platform entropy source is unavailable.
func MustSeed() int64 {
	seed, err := NewSeed()
	if err != nil {
		return time.Now().UnixNano()
	}
	return seed
}
