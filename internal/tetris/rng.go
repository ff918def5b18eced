package tetris

import "math/rand/v2"

// RNG is the single injectable source of randomness the core uses for bag
// shuffling and garbage hole placement. Production code defaults to
// defaultRNG (math/rand/v2); tests inject a seeded or scripted double to
// replay exact trajectories, the same split internal/snake/game.go draws
// with its randFunc field and internal/blackjack/game_test.go draws with
// ShuffleFunc.
type RNG interface {
	// IntN returns a pseudo-random number in [0, n).
	IntN(n int) int
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64
	// Shuffle randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// defaultRNG backs RNG with math/rand/v2's top-level generator.
type defaultRNG struct{}

func (defaultRNG) IntN(n int) int                    { return rand.IntN(n) }
func (defaultRNG) Float64() float64                  { return rand.Float64() }
func (defaultRNG) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// NewDefaultRNG returns the production RNG implementation.
func NewDefaultRNG() RNG { return defaultRNG{} }

// seededRNG is a deterministic test double over math/rand/v2's PCG source.
type seededRNG struct {
	r *rand.Rand
}

// NewSeededRNG returns a deterministic RNG for replay tests.
func NewSeededRNG(seed1, seed2 uint64) RNG {
	return &seededRNG{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s *seededRNG) IntN(n int) int   { return s.r.IntN(n) }
func (s *seededRNG) Float64() float64 { return s.r.Float64() }
func (s *seededRNG) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}
