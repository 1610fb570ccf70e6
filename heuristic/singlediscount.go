// Package heuristic implements the two cheap degree-bookkeeping
// selectors spec.md §6 specifies only by their external contract:
// SingleDiscount and DegreeDiscount. Neither runs a single diffusion
// trial; both rank candidates from the graph's static degree structure,
// grounded on pynetim's SingleDiscountAlgorithm/DegreeDiscountAlgorithm
// (SPEC_FULL §1).
package heuristic

import (
	"github.com/gilchrisn/influence-maximization/graph"
	"github.com/gilchrisn/influence-maximization/internal/topk"
)

// SingleDiscount selects k seeds by repeatedly picking the
// not-yet-selected node of highest remaining out-degree, then
// discounting the out-degree of that node's neighbors by one — as if
// the chosen node's influence on them no longer needs separate credit
// (spec.md §6). Ties break on smallest node id.
type SingleDiscount struct {
	g *graph.Graph
}

// NewSingleDiscount binds a SingleDiscount selector to g.
func NewSingleDiscount(g *graph.Graph) *SingleDiscount {
	return &SingleDiscount{g: g}
}

// Run selects up to k seeds. k > n clamps to n.
func (sel *SingleDiscount) Run(k int) []int {
	n := sel.g.NumNodes()
	if k > n {
		k = n
	}
	if k <= 0 {
		return []int{}
	}

	degree := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = sel.g.OutDegree(v)
	}
	selected := make([]bool, n)
	out := make([]int, 0, k)

	for round := 0; round < k; round++ {
		scores := make(map[int]float64, n-round)
		for v := 0; v < n; v++ {
			if !selected[v] {
				scores[v] = float64(degree[v])
			}
		}
		top := topk.Select(scores, 1, true)
		if len(top) == 0 {
			break
		}
		best := top[0]
		selected[best] = true
		out = append(out, best)
		for _, w := range sel.g.OutNeighbors(best) {
			if !selected[w] {
				degree[w]--
			}
		}
	}
	return out
}
