// Package rng provides the random sources consumed by the tile generator:
// a seeded deterministic source, an entropy-backed source and a fixed
// replay sequence for tests.
package rng

import (
	"fmt"
	"math/rand/v2"
	"time"

	"lukechampine.com/frand"
)

// Seeded is a deterministic source built on math/rand/v2's PCG.
// The same seed always yields the same stream. Not safe for concurrent use.
type Seeded struct {
	seed int64
	r    *rand.Rand
}

// NewSeeded creates a deterministic source. A zero seed is replaced by the
// current time, so each session differs unless a seed is given explicitly.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeded{
		seed: seed,
		r:    rand.New(rand.NewPCG(uint64(seed), 0)),
	}
}

// Seed returns the seed actually in use.
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Float64 returns a uniform value in [0,1).
func (s *Seeded) Float64() float64 {
	return s.r.Float64()
}

// IntRange returns a uniform integer in [lo,hi). Panics if hi <= lo.
func (s *Seeded) IntRange(lo, hi int) int {
	return lo + s.r.IntN(hi-lo)
}

// Crypto draws from frand's package-level CSPRNG and is safe for concurrent use.
type Crypto struct{}

// Float64 returns a uniform value in [0,1).
func (Crypto) Float64() float64 {
	return frand.Float64()
}

// IntRange returns a uniform integer in [lo,hi). Panics if hi <= lo.
func (Crypto) IntRange(lo, hi int) int {
	return lo + frand.Intn(hi-lo)
}

// Sequence replays fixed draws in order. It is meant for tests and
// reproductions. Drawing past the end of either list panics.
type Sequence struct {
	Floats []float64
	Ints   []int

	floatPos int
	intPos   int
}

// NewSequence creates a replay source. Ints are returned as offsets from lo,
// so a recorded 2 answers IntRange(0, n) with 2.
func NewSequence(floats []float64, ints []int) *Sequence {
	return &Sequence{Floats: floats, Ints: ints}
}

// Float64 returns the next recorded float.
func (s *Sequence) Float64() float64 {
	if s.floatPos >= len(s.Floats) {
		panic(fmt.Sprintf("rng: float sequence exhausted after %d draws", s.floatPos))
	}
	v := s.Floats[s.floatPos]
	s.floatPos++
	return v
}

// IntRange returns lo plus the next recorded int. Panics if the result is
// outside [lo,hi).
func (s *Sequence) IntRange(lo, hi int) int {
	if s.intPos >= len(s.Ints) {
		panic(fmt.Sprintf("rng: int sequence exhausted after %d draws", s.intPos))
	}
	v := lo + s.Ints[s.intPos]
	s.intPos++
	if v < lo || v >= hi {
		panic(fmt.Sprintf("rng: recorded int %d outside [%d,%d)", v, lo, hi))
	}
	return v
}

// Draws returns how many floats and ints have been consumed.
func (s *Sequence) Draws() (floats, ints int) {
	return s.floatPos, s.intPos
}
