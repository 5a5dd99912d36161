package identify

import (
	"math/rand/v2"
	"sync"
)

// Rand is the random source used for low-confidence picks and issue draws.
// IntN returns a uniform value in [0, n). *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// RandFunc adapts a plain function to Rand.
type RandFunc func(n int) int

func (f RandFunc) IntN(n int) int { return f(n) }

// DefaultRand returns a source backed by the global generator. Safe for
// concurrent use.
func DefaultRand() Rand { return RandFunc(rand.IntN) }

// NewSeeded returns a deterministic source that is safe for concurrent use.
func NewSeeded(seed uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
