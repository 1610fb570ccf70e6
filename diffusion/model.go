// Package diffusion implements the stochastic diffusion engine: the
// Independent Cascade and Linear Threshold Monte Carlo simulators that
// every selector in this module treats as a spread oracle (spec.md §4.4,
// §4.5), plus their reverse-sampling counterpart used by the RIS family
// (§4.8).
package diffusion

import (
	"math/rand"

	"github.com/gilchrisn/influence-maximization/graph"
)

// Model is the capability set spec.md §9 asks selectors to depend on
// instead of a deep class hierarchy: a forward single-trial simulator
// for Greedy/CELF, and a reverse RR-set sampler for the RIS family. IC
// and LT both implement it directly; there is no shared base type.
type Model interface {
	// Graph returns the bound graph snapshot.
	Graph() *graph.Graph

	// Seeds returns the current seed set.
	Seeds() []int

	// SetSeeds replaces the seed set.
	SetSeeds(seeds []int)

	// RunSingleTrial runs one stochastic cascade from the current seed
	// set using r for all randomness, and returns the number of
	// activated nodes (spec.md §4.4/§4.5's run_single_trial / per-trial
	// LT pass).
	RunSingleTrial(r *rand.Rand) int

	// SampleRRSet draws one reverse-reachable set rooted at root, using
	// r for all randomness (spec.md §4.8).
	SampleRRSet(root int, r *rand.Rand) map[int]struct{}
}

// Trace is the supplemented per-wave diffusion record (SPEC_FULL §5,
// supplement #1), mirroring pynetim's record_states option: Activated
// is the final activated set, and Waves[i] is the set of nodes newly
// activated in wave i (Waves[0] is the seed set).
type Trace struct {
	Activated map[int]struct{}
	Waves     []map[int]struct{}
}

func newActivatedSet(seeds []int) map[int]struct{} {
	activated := make(map[int]struct{}, len(seeds))
	for _, s := range seeds {
		activated[s] = struct{}{}
	}
	return activated
}

func cloneSeedSet(seeds []int) []int {
	out := make([]int, len(seeds))
	copy(out, seeds)
	return out
}
