package diffusion

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/gilchrisn/influence-maximization/graph"
	"github.com/gilchrisn/influence-maximization/imerr"
)

// LT implements the Linear Threshold model (spec.md §4.5): a node
// activates once the summed edge weight from its activated in-neighbors
// reaches a threshold sampled uniformly from [ThetaLo, ThetaHi).
type LT struct {
	g               *graph.Graph
	seeds           []int
	ThetaLo, ThetaHi float64
}

// NewLT binds a Linear Threshold model to g. thetaLo/thetaHi must lie
// in [0, 1] with thetaLo <= thetaHi, or construction fails with
// InvalidParameter. thetaLo=0, thetaHi=1 recovers the classical LT
// model (spec.md §9 open question).
func NewLT(g *graph.Graph, seeds []int, thetaLo, thetaHi float64) (*LT, error) {
	if thetaLo < 0 || thetaHi > 1 || thetaLo > thetaHi {
		return nil, fmt.Errorf("NewLT(thetaLo=%v, thetaHi=%v): %w", thetaLo, thetaHi, imerr.InvalidParameter)
	}
	m := &LT{g: g, ThetaLo: thetaLo, ThetaHi: thetaHi}
	m.SetSeeds(seeds)
	return m, nil
}

func (m *LT) Graph() *graph.Graph { return m.g }
func (m *LT) Seeds() []int        { return cloneSeedSet(m.seeds) }

func (m *LT) SetSeeds(seeds []int) {
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

func (m *LT) sampleThresholds(r *rand.Rand) []float64 {
	n := m.g.NumNodes()
	span := m.ThetaHi - m.ThetaLo
	theta := make([]float64, n)
	for v := 0; v < n; v++ {
		theta[v] = m.ThetaLo + r.Float64()*span
	}
	return theta
}

// RunSingleTrial runs one LT cascade and returns the number of
// activated nodes.
func (m *LT) RunSingleTrial(r *rand.Rand) int {
	n := m.g.NumNodes()
	theta := m.sampleThresholds(r)
	influence := make([]float64, n)
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
		for _, v := range m.g.OutNeighbors(u) {
			if activated[v] {
				continue
			}
			w, _ := m.g.EdgeWeight(u, v)
			influence[v] += w
			if influence[v] >= theta[v] {
				activated[v] = true
				count++
				queue = append(queue, v)
			}
		}
	}
	return count
}

// Diffuse runs one LT cascade, optionally recording the per-wave
// activation frontier.
func (m *LT) Diffuse(r *rand.Rand, recordStates bool) *Trace {
	n := m.g.NumNodes()
	theta := m.sampleThresholds(r)
	influence := make([]float64, n)
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
				influence[v] += w
				if influence[v] >= theta[v] {
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

// SampleRRSet draws a reverse-reachable set for LT (spec.md §4.8): a
// simple backward walk that, at each node x, either stops (with
// probability 1 - Σ w(y,x)) or continues to the in-neighbor y whose
// cumulative weight prefix first exceeds the draw.
func (m *LT) SampleRRSet(root int, r *rand.Rand) map[int]struct{} {
	active := map[int]struct{}{root: {}}
	current := root

	for {
		inNeighbors := m.g.InNeighbors(current)
		if len(inNeighbors) == 0 {
			break
		}
		sort.Ints(inNeighbors)

		sum := 0.0
		weights := make([]float64, len(inNeighbors))
		for i, y := range inNeighbors {
			w, _ := m.g.EdgeWeight(y, current)
			weights[i] = w
			sum += w
		}

		draw := r.Float64()
		if draw >= sum {
			break
		}

		cum := 0.0
		chosen := -1
		for i, w := range weights {
			cum += w
			if draw < cum {
				chosen = inNeighbors[i]
				break
			}
		}
		if chosen == -1 {
			chosen = inNeighbors[len(inNeighbors)-1]
		}

		if _, seen := active[chosen]; seen {
			break
		}
		active[chosen] = struct{}{}
		current = chosen
	}
	return active
}
