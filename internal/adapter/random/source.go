package random

import (
	"math/rand/v2"
	"sync"
)

// Source is a goroutine-safe uniform [0,1) generator. A zero seed draws from
// the runtime's random state.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(seed uint64) *Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
