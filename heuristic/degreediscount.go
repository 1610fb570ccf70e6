package heuristic

import (
	"github.com/gilchrisn/influence-maximization/graph"
	"github.com/gilchrisn/influence-maximization/internal/topk"
)

// DegreeDiscount selects k seeds using the closed-form discount of
// Chen et al. (spec.md §6): for a node v with out-degree d_v and t_v
// already-selected out-neighbors, score(v) = d_v − 2t_v − (d_v−t_v)·t_v·p,
// where p is the uniform activation probability the caller expects the
// graph's edges to carry. Ties break on smallest node id.
type DegreeDiscount struct {
	g *graph.Graph
}

// NewDegreeDiscount binds a DegreeDiscount selector to g.
func NewDegreeDiscount(g *graph.Graph) *DegreeDiscount {
	return &DegreeDiscount{g: g}
}

// Run selects up to k seeds. k > n clamps to n.
func (sel *DegreeDiscount) Run(k int, p float64) []int {
	n := sel.g.NumNodes()
	if k > n {
		k = n
	}
	if k <= 0 {
		return []int{}
	}

	outDeg := make([]float64, n)
	selectedNeighborCount := make([]int, n)
	selected := make([]bool, n)
	for v := 0; v < n; v++ {
		outDeg[v] = float64(sel.g.OutDegree(v))
	}

	out := make([]int, 0, k)
	for round := 0; round < k; round++ {
		scores := make(map[int]float64, n-round)
		for v := 0; v < n; v++ {
			if selected[v] {
				continue
			}
			t := float64(selectedNeighborCount[v])
			d := outDeg[v]
			scores[v] = d - 2*t - (d-t)*t*p
		}
		top := topk.Select(scores, 1, true)
		if len(top) == 0 {
			break
		}
		best := top[0]
		selected[best] = true
		out = append(out, best)
		for _, w := range sel.g.InNeighbors(best) {
			if !selected[w] {
				selectedNeighborCount[w]++
			}
		}
	}
	return out
}
