package diffusion

import (
	"math/rand"
	"sort"

	"github.com/gilchrisn/influence-maximization/graph"
)

// IC implements the Independent Cascade model (spec.md §4.4): each
// newly activated node gets one chance to activate each out-neighbor,
// succeeding with probability equal to the edge weight.
type IC struct {
	g     *graph.Graph
	seeds []int
}

// NewIC binds an Independent Cascade model to g with the given initial
// seed set. Duplicate seeds are collapsed (spec.md §4.4 edge case).
func NewIC(g *graph.Graph, seeds []int) *IC {
	ic := &IC{g: g}
	ic.SetSeeds(seeds)
	return ic
}

func (m *IC) Graph() *graph.Graph { return m.g }
func (m *IC) Seeds() []int        { return cloneSeedSet(m.seeds) }

func (m *IC) SetSeeds(seeds []int) {
	dedup := make(map[int]struct{}, len(seeds))
	out := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if _, ok := dedup[s]; !ok {
			dedup[s] = struct{}{}
			out = append(out, s)
		}
	}
	m.seeds = out
}

// RunSingleTrial runs one IC cascade and returns the number of activated
// nodes. Empty seed sets activate nothing (spec.md §4.4 edge case).
func (m *IC) RunSingleTrial(r *rand.Rand) int {
	n := m.g.NumNodes()
	activated := make([]bool, n)
	queue := make([]int, 0, len(m.seeds))
	for _, s := range m.seeds {
		if !activated[s] {
			activated[s] = true
			queue = append(queue, s)
		}
	}

	count := len(queue)
	for front := 0; front < len(queue); front++ {
		u := queue[front]
		// Neighbors are visited in ascending id order so that each draw
		// from r goes to the same edge on every run with the same seed.
		neighbors := m.g.OutNeighbors(u)
		sort.Ints(neighbors)
		for _, v := range neighbors {
			if activated[v] {
				continue
			}
			w, _ := m.g.EdgeWeight(u, v)
			if r.Float64() < w {
				activated[v] = true
				count++
				queue = append(queue, v)
			}
		}
	}
	return count
}

// Diffuse runs one IC cascade, optionally recording the per-wave
// activation frontier (SPEC_FULL §5 supplement #1).
func (m *IC) Diffuse(r *rand.Rand, recordStates bool) *Trace {
	n := m.g.NumNodes()
	activated := make([]bool, n)
	queue := make([]int, 0, len(m.seeds))
	for _, s := range m.seeds {
		if !activated[s] {
			activated[s] = true
			queue = append(queue, s)
		}
	}

	trace := &Trace{Activated: newActivatedSet(m.seeds)}
	if recordStates {
		trace.Waves = append(trace.Waves, copySet(trace.Activated))
	}

	front, waveStart := 0, 0
	for waveStart < len(queue) {
		wave := make(map[int]struct{})
		waveEnd := len(queue)
		for ; front < waveEnd; front++ {
			u := queue[front]
			for _, v := range m.g.OutNeighbors(u) {
				if activated[v] {
					continue
				}
				w, _ := m.g.EdgeWeight(u, v)
				if r.Float64() < w {
					activated[v] = true
					trace.Activated[v] = struct{}{}
					wave[v] = struct{}{}
					queue = append(queue, v)
				}
			}
		}
		if recordStates && len(wave) > 0 {
			trace.Waves = append(trace.Waves, wave)
		}
		waveStart = waveEnd
	}
	return trace
}

// SampleRRSet draws a reverse-reachable set for IC, rooted at root
// (spec.md §4.8): a node u is included if, walking backward from the
// root, each traversed edge (y, x) is sampled live with probability
// w(y, x).
func (m *IC) SampleRRSet(root int, r *rand.Rand) map[int]struct{} {
	active := map[int]struct{}{root: {}}
	queue := []int{root}

	for front := 0; front < len(queue); front++ {
		x := queue[front]
		inNeighbors := m.g.InNeighbors(x)
		sort.Ints(inNeighbors)
		for _, y := range inNeighbors {
			if _, ok := active[y]; ok {
				continue
			}
			w, _ := m.g.EdgeWeight(y, x)
			if r.Float64() < w {
				active[y] = struct{}{}
				queue = append(queue, y)
			}
		}
	}
	return active
}

func copySet(s map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
