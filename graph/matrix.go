package graph

import (
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// AdjMatrix returns the dense n×n weighted adjacency matrix, backed by
// gonum's mat.Dense as the teacher's parser and coordinate-generation
// code build their dense matrices (pkg/parser/sample.go,
// coordinates/mds.go). O(n²) memory; intended only for small graphs per
// spec.md §4.1.
func (g *Graph) AdjMatrix() *mat.Dense {
	m := mat.NewDense(g.n, g.n, nil)
	for u := 0; u < g.n; u++ {
		for v := range g.outAdj[u] {
			w, _ := g.EdgeWeight(u, v)
			m.Set(u, v, w)
		}
	}
	return m
}

// PageRank computes unweighted PageRank scores over the graph's
// directed structure via gonum/graph/network, the same routine the
// teacher's coordinate-generation backend uses for centrality-based
// node sizing. This is a diagnostic supplement (SPEC_FULL §4's
// centrality cross-check), independent of any selector: a quick sanity
// check that an IM selector's seeds overlap with the classic
// "high-PageRank nodes are decent seeds" heuristic.
func (g *Graph) PageRank(damping, tolerance float64) map[int]float64 {
	dg := simple.NewDirectedGraph()
	for i := 0; i < g.n; i++ {
		dg.AddNode(simple.Node(int64(i)))
	}
	for u := 0; u < g.n; u++ {
		for v := range g.outAdj[u] {
			if u == v {
				continue
			}
			dg.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})
		}
	}

	scores := network.PageRank(dg, damping, tolerance)
	out := make(map[int]float64, len(scores))
	for id, score := range scores {
		out[int(id)] = score
	}
	return out
}

// InfectionThreshold computes ⟨k⟩ / (⟨k²⟩ - ⟨k⟩) over the degree
// distribution, the epidemic threshold used in degree-based diffusion
// analysis. Grounded directly on pynetim.utils.infection_threshold, which
// takes its degree from networkx's G.degree(): total in+out degree on a
// directed graph, and plain degree (OutDegree, equal to InDegree) on an
// undirected one.
func (g *Graph) InfectionThreshold() float64 {
	var k, k2 float64
	for u := 0; u < g.n; u++ {
		d := float64(g.OutDegree(u))
		if g.directed {
			d += float64(g.InDegree(u))
		}
		k += d
		k2 += d * d
	}
	denom := k2 - k
	if denom == 0 {
		return 0
	}
	return k / denom
}
