package exercise

import (
	"math/rand/v2"
	"sync"
)

// lockedSource serializes access to an underlying source so a single
// *rand.Rand can be shared across request goroutines. rand/v2.Rand
// keeps no state of its own; guarding the source is sufficient.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

// NewSharedRand returns a goroutine-safe seeded *rand.Rand for use by
// the pipeline and corruptor when they serve concurrent requests.
// Single-goroutine callers (tests, preview) can keep injecting a plain
// rand.New(rand.NewPCG(...)).
func NewSharedRand(seed1, seed2 uint64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewPCG(seed1, seed2)})
}
