package graph

import (
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum exports the adjacency store as a gonum weighted graph, for
// callers who want to run gonum's traversal or analysis algorithms
// (shortest paths, connected components, ...) on top of an IM graph.
// Grounded on the same simple.DirectedGraph/simple.Node conversion the
// teacher's coordinate-generation code (graph_adapter.go) performs when
// handing a louvain.Graph to gonum.
func (g *Graph) ToGonum() *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, 0)
	for i := 0; i < g.n; i++ {
		wg.AddNode(simple.Node(int64(i)))
	}
	for u := 0; u < g.n; u++ {
		for v := range g.outAdj[u] {
			w, _ := g.EdgeWeight(u, v)
			wg.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(int64(u)),
				T: simple.Node(int64(v)),
				W: w,
			})
		}
	}
	return wg
}
