package rng

import "math/rand"

// TrialSeeds derives k per-trial seeds from a single user seed s by
// drawing k successive 32-bit outputs from a master MT19937 seeded with
// s. This is spec.md §4.3's harness: the same s always yields the same
// seed table regardless of how trials are later partitioned across
// threads (P1), and trial i's samples depend only on t_i (P2) because
// each trial gets its own independent generator below.
func TrialSeeds(userSeed uint32, k int) []uint32 {
	master := NewMT19937(userSeed)
	seeds := make([]uint32, k)
	for i := range seeds {
		seeds[i] = master.Uint32()
	}
	return seeds
}

// NewTrialRand builds a *rand.Rand backed by a fresh MT19937 stream
// seeded with the given per-trial seed, for simulators that want the
// standard math/rand.Float64/Intn surface.
func NewTrialRand(seed uint32) *rand.Rand {
	return rand.New(NewMT19937(seed))
}
