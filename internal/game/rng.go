package game

import (
	"math/rand"
	"sync"
	"time"
)

// DrawSource is the single randomness seam for every game. Evaluators never
// touch a generator directly; tests substitute a scripted source.
type DrawSource interface {
	// Intn returns a uniform int in [0, n). n must be > 0.
	Intn(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// NewDrawSource returns a time-seeded source safe for concurrent use.
func NewDrawSource() DrawSource {
	return &lockedSource{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededDrawSource returns a reproducible source for tests.
func NewSeededDrawSource(seed int64) DrawSource {
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

// shuffle runs Fisher-Yates over n elements using src.
func shuffle(src DrawSource, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}
