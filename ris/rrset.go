// Package ris implements the Reverse Influence Sampling family: RR-set
// generation, greedy max-cover node selection, and the two selectors
// built on them, BaseRIS and IMM (spec.md §4.8/§4.9). Like selector, it
// depends only on diffusion.Model's reverse-sampling capability, not on
// any concrete model type.
package ris

import (
	"math/rand"

	"github.com/gilchrisn/influence-maximization/diffusion"
	"github.com/gilchrisn/influence-maximization/graph"
)

// ModelCtor builds a fresh diffusion.Model bound to g. RR-set generation
// never seeds the model — SampleRRSet only reads the graph's structure
// and weights — so every call passes a nil seed set.
type ModelCtor func(g *graph.Graph, seeds []int) diffusion.Model

// GenerateRRSets draws count reverse-reachable sets rooted uniformly at
// random over g's nodes (spec.md §4.8).
func GenerateRRSets(g *graph.Graph, ctor ModelCtor, count int, r *rand.Rand) []map[int]struct{} {
	m := ctor(g, nil)
	n := g.NumNodes()
	sets := make([]map[int]struct{}, count)
	for i := 0; i < count; i++ {
		root := r.Intn(n)
		sets[i] = m.SampleRRSet(root, r)
	}
	return sets
}

// growRRSets extends an existing RR-set collection up to target total
// sets, preserving everything already drawn (spec.md §4.9's "extend RR-set
// collection to θ").
func growRRSets(g *graph.Graph, ctor ModelCtor, existing []map[int]struct{}, target int, r *rand.Rand) []map[int]struct{} {
	m := ctor(g, nil)
	n := g.NumNodes()
	for len(existing) < target {
		root := r.Intn(n)
		existing = append(existing, m.SampleRRSet(root, r))
	}
	return existing
}
