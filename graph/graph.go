// Package graph implements the compact directed (optionally undirected)
// weighted adjacency store shared by every diffusion model and selector
// in this module. Out- and in-adjacency are hashed sets rather than
// sorted vectors, per the design decision in spec.md §4.1: add/remove/
// contains are O(1) amortized, and edge weights live in a separate hash
// keyed by (u, v). Iteration order over a node's neighbors is undefined
// and callers must not depend on it.
package graph

import (
	"fmt"

	"github.com/gilchrisn/influence-maximization/imerr"
)

type edgeKey struct {
	u, v int
}

// Graph is a directed (or undirected) weighted adjacency store over the
// integer node space [0, n). It is read-only from the point of view of
// every simulator and selector in this module: callers must not mutate
// a Graph while a simulation is in flight (spec.md §5).
type Graph struct {
	n        int
	directed bool
	outAdj   []map[int]struct{}
	inAdj    []map[int]struct{}
	weight   map[edgeKey]float64
	m        int
}

// New creates an empty graph over n nodes. directed selects whether
// out-adjacency and in-adjacency are tracked separately (true) or are
// the same structure (false).
func New(n int, directed bool) *Graph {
	g := &Graph{
		n:        n,
		directed: directed,
		outAdj:   make([]map[int]struct{}, n),
		weight:   make(map[edgeKey]float64),
	}
	for i := range g.outAdj {
		g.outAdj[i] = make(map[int]struct{})
	}
	if directed {
		g.inAdj = make([]map[int]struct{}, n)
		for i := range g.inAdj {
			g.inAdj[i] = make(map[int]struct{})
		}
	} else {
		g.inAdj = g.outAdj
	}
	return g
}

func (g *Graph) validNode(u int) bool { return u >= 0 && u < g.n }

// NumNodes returns n.
func (g *Graph) NumNodes() int { return g.n }

// NumEdges returns m, the logical edge count (an undirected edge counts
// once even though it is stored bidirectionally).
func (g *Graph) NumEdges() int { return g.m }

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool { return g.directed }

// AddEdge inserts (u, v) with weight w, or, if the edge already exists,
// updates its weight without incrementing NumEdges (spec.md I4). For an
// undirected graph both directions are recorded with the same weight
// (I3).
func (g *Graph) AddEdge(u, v int, w float64) error {
	if !g.validNode(u) || !g.validNode(v) {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, imerr.InvalidNode)
	}

	_, existed := g.outAdj[u][v]
	g.outAdj[u][v] = struct{}{}
	g.weight[edgeKey{u, v}] = w
	if g.directed {
		g.inAdj[v][u] = struct{}{}
	} else if u != v {
		g.outAdj[v][u] = struct{}{}
		g.weight[edgeKey{v, u}] = w
	}

	if !existed {
		g.m++
	}
	return nil
}

// AddEdges batch-inserts edges, one weight per edge when weights is
// non-nil. Fails with LengthMismatch if len(weights) != len(edges).
func (g *Graph) AddEdges(edges [][2]int, weights []float64) error {
	if weights != nil && len(weights) != len(edges) {
		return fmt.Errorf("AddEdges: %d edges vs %d weights: %w", len(edges), len(weights), imerr.LengthMismatch)
	}
	for i, e := range edges {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		if err := g.AddEdge(e[0], e[1], w); err != nil {
			return err
		}
	}
	return nil
}

// UpdateEdgeWeight sets the weight of an existing edge. Fails with
// EdgeNotFound if the edge is absent.
func (g *Graph) UpdateEdgeWeight(u, v int, w float64) error {
	if !g.validNode(u) || !g.validNode(v) {
		return fmt.Errorf("UpdateEdgeWeight(%d, %d): %w", u, v, imerr.InvalidNode)
	}
	if _, ok := g.outAdj[u][v]; !ok {
		return fmt.Errorf("UpdateEdgeWeight(%d, %d): %w", u, v, imerr.EdgeNotFound)
	}
	g.weight[edgeKey{u, v}] = w
	if !g.directed && u != v {
		g.weight[edgeKey{v, u}] = w
	}
	return nil
}

// RemoveEdge deletes (u, v). Fails with EdgeNotFound if absent.
func (g *Graph) RemoveEdge(u, v int) error {
	if !g.validNode(u) || !g.validNode(v) {
		return fmt.Errorf("RemoveEdge(%d, %d): %w", u, v, imerr.InvalidNode)
	}
	if _, ok := g.outAdj[u][v]; !ok {
		return fmt.Errorf("RemoveEdge(%d, %d): %w", u, v, imerr.EdgeNotFound)
	}
	delete(g.outAdj[u], v)
	delete(g.weight, edgeKey{u, v})
	if g.directed {
		delete(g.inAdj[v], u)
	} else if u != v {
		delete(g.outAdj[v], u)
		delete(g.weight, edgeKey{v, u})
	}
	g.m--
	return nil
}

// RemoveEdges batch-removes edges; fails with EdgeNotFound on the first
// absent edge, leaving earlier removals in place.
func (g *Graph) RemoveEdges(edges [][2]int) error {
	for _, e := range edges {
		if err := g.RemoveEdge(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

// EdgeWeight returns the weight of (u, v) and whether it exists.
func (g *Graph) EdgeWeight(u, v int) (float64, bool) {
	if !g.validNode(u) || !g.validNode(v) {
		return 0, false
	}
	w, ok := g.weight[edgeKey{u, v}]
	return w, ok
}

// OutNeighbors returns the out-neighbors of u in unspecified order.
func (g *Graph) OutNeighbors(u int) []int {
	if !g.validNode(u) {
		return nil
	}
	out := make([]int, 0, len(g.outAdj[u]))
	for v := range g.outAdj[u] {
		out = append(out, v)
	}
	return out
}

// InNeighbors returns the in-neighbors of u in unspecified order. For an
// undirected graph this equals OutNeighbors(u) (spec.md I2/mirror rule).
func (g *Graph) InNeighbors(u int) []int {
	if !g.validNode(u) {
		return nil
	}
	out := make([]int, 0, len(g.inAdj[u]))
	for v := range g.inAdj[u] {
		out = append(out, v)
	}
	return out
}

// OutDegree returns |out_adj[u]|.
func (g *Graph) OutDegree(u int) int {
	if !g.validNode(u) {
		return 0
	}
	return len(g.outAdj[u])
}

// InDegree returns |in_adj[u]|.
func (g *Graph) InDegree(u int) int {
	if !g.validNode(u) {
		return 0
	}
	return len(g.inAdj[u])
}

// Degree returns OutDegree(u), per spec.md §4.1.
func (g *Graph) Degree(u int) int { return g.OutDegree(u) }

// HasEdge reports whether (u, v) exists.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.validNode(u) || !g.validNode(v) {
		return false
	}
	_, ok := g.outAdj[u][v]
	return ok
}
