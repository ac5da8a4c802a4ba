package prng

import (
	"math/rand"
	"time"
)

// Session is the run-scoped deterministic PRNG context shared by every
// domain evaluated during one run. All domains in a run must draw from
// the same Session for the reproducibility contract to hold.
type Session struct {
	seed   uint64
	source *rand.Rand
}

// NewSession creates a Session seeded with seed. A seed of 0 derives one
// from the current time; the derived value is still recorded on the
// Session so a caller can log it for replay.
func NewSession(seed uint64) *Session {
	s := &Session{}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s.SetSeed(seed)
	return s
}

// GetSeed returns the seed this Session was most recently (re)seeded
// with. The runner reports this value so a failing run can be replayed.
func (s *Session) GetSeed() uint64 {
	return s.seed
}

// SetSeed reseeds the Session in place. Any iterator already drawing
// from this Session will observe the new sequence from this point
// forward; callers must not reseed mid-property unless they intend to
// break that property's reproducibility.
func (s *Session) SetSeed(seed uint64) {
	s.seed = seed
	s.source = rand.New(rand.NewSource(int64(seed)))
}

// Intn returns a pseudo-random integer in [0, n). Panics if n <= 0.
func (s *Session) Intn(n int) int {
	if n <= 0 {
		panic("prng: Intn argument must be positive")
	}
	return s.source.Intn(n)
}

// IntRange returns a pseudo-random integer in [min, max]. Panics if
// min > max.
func (s *Session) IntRange(min, max int) int {
	if min > max {
		panic("prng: IntRange min must be <= max")
	}
	if min == max {
		return min
	}
	return min + s.source.Intn(max-min+1)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (s *Session) Float64() float64 {
	return s.source.Float64()
}

// Float64Range returns a pseudo-random float64 in [min, max). Panics if
// min >= max.
func (s *Session) Float64Range(min, max float64) float64 {
	if min >= max {
		panic("prng: Float64Range min must be < max")
	}
	return min + s.source.Float64()*(max-min)
}

// Uint64 returns a pseudo-random 64-bit unsigned integer.
func (s *Session) Uint64() uint64 {
	return s.source.Uint64()
}

// Bool returns a pseudo-random boolean value.
func (s *Session) Bool() bool {
	return s.source.Intn(2) == 1
}

// Choice returns a pseudo-random index in [0, n). It is the same
// operation as Intn, named separately so call sites read like "pick an
// alternative" rather than "pick a number."
func (s *Session) Choice(n int) int {
	return s.Intn(n)
}

// Perm returns a pseudo-random permutation of [0, n).
func (s *Session) Perm(n int) []int {
	return s.source.Perm(n)
}

// Shuffle pseudo-randomizes the order of elements in a sequence of
// length n using the supplied swap function.
func (s *Session) Shuffle(n int, swap func(i, j int)) {
	s.source.Shuffle(n, swap)
}

// Sample draws k distinct indices from [0, n) without replacement,
// returned in random order. Panics if k > n.
func (s *Session) Sample(n, k int) []int {
	if k > n {
		panic("prng: Sample k must be <= n")
	}
	perm := s.source.Perm(n)
	return perm[:k]
}
