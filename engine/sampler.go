package engine

import (
	"math/rand/v2"
	"sync"
)

// Sampler selects which models serve the agent slots of a layer.
type Sampler interface {
	// Sample returns n models drawn from pool without replacement; the
	// returned order is the dispatch order. When n exceeds the pool size
	// the result is a permutation of the whole pool. The input slice is
	// never mutated.
	Sample(pool []string, n int) []string
}

type randSampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandSampler returns a Sampler backed by rnd, for callers that need a
// seeded, reproducible selection. A nil rnd falls back to the shared global
// source.
func NewRandSampler(rnd *rand.Rand) Sampler {
	return &randSampler{rnd: rnd}
}

// Sample implements Sampler. The global source is already goroutine-safe; a
// caller-supplied *rand.Rand is not, so it is serialized here.
func (s *randSampler) Sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	if n < 0 {
		n = 0
	}

	var perm []int
	if s.rnd != nil {
		s.mu.Lock()
		perm = s.rnd.Perm(len(pool))
		s.mu.Unlock()
	} else {
		perm = rand.Perm(len(pool))
	}

	out := make([]string, n)
	for i := range out {
		out[i] = pool[perm[i]]
	}

	return out
}
