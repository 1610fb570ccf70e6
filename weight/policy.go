// Package weight materializes edge probabilities on a graph.Graph from
// a closed set of policies (spec.md §4.2), plus the additional
// TypicalValues policy carried over from pynetim.utils.set_edge_weight's
// 'TV' mode (SPEC_FULL §5 supplement #4).
package weight

import (
	"fmt"
	"math/rand"

	"github.com/gilchrisn/influence-maximization/graph"
)

// Policy selects how edge weights are assigned.
type Policy int

const (
	// WC (weighted cascade): w(u,v) := 1 / in_degree(v); edges into a
	// node with in_degree 0 keep their existing weight (unreachable
	// anyway). On an undirected graph there is only one weight per
	// logical edge, set once from the larger-indexed endpoint's degree
	// (matching pynetim, where graph[u][v] and graph[v][u] are the same
	// slot) — the per-node sum-to-1 property this gives a directed graph
	// does not generally hold here.
	WC Policy = iota
	// Uniform sets every edge weight to a fixed p.
	Uniform
	// Random draws each edge weight uniformly from [lo, hi).
	Random
	// Keep leaves weights exactly as provided at construction.
	Keep
	// TypicalValues draws each edge weight from the fixed set
	// {0.001, 0.01, 0.1}, mirroring pynetim's 'TV' policy.
	TypicalValues
)

var typicalValues = []float64{0.001, 0.01, 0.1}

// Params bundles the policy-specific parameters. Only the fields
// relevant to the chosen Policy are read.
type Params struct {
	// Uniform
	P float64
	// Random
	Lo, Hi float64
	// Random / TypicalValues
	Rand *rand.Rand
}

// Assign mutates g's edge weights in place according to policy.
func Assign(g *graph.Graph, policy Policy, params Params) error {
	switch policy {
	case Keep:
		return nil

	case Uniform:
		return forEachEdge(g, func(u, v int) error {
			return g.UpdateEdgeWeight(u, v, params.P)
		})

	case Random:
		if params.Rand == nil {
			return fmt.Errorf("weight.Assign(Random): rand.Rand is required")
		}
		if params.Hi < params.Lo {
			return fmt.Errorf("weight.Assign(Random): hi < lo")
		}
		span := params.Hi - params.Lo
		return forEachEdge(g, func(u, v int) error {
			w := params.Lo + params.Rand.Float64()*span
			return g.UpdateEdgeWeight(u, v, w)
		})

	case TypicalValues:
		if params.Rand == nil {
			return fmt.Errorf("weight.Assign(TypicalValues): rand.Rand is required")
		}
		return forEachEdge(g, func(u, v int) error {
			w := typicalValues[params.Rand.Intn(len(typicalValues))]
			return g.UpdateEdgeWeight(u, v, w)
		})

	case WC:
		if !g.Directed() {
			// pynetim's set_edge_weight stores one weight per undirected
			// edge (networkx keeps a single dict slot for graph[u][v] and
			// graph[v][u]) and sets it from whichever endpoint its edge
			// iterator hands it as v. forEachEdge already visits each
			// logical undirected edge once (canonical direction u < v),
			// so this just needs the larger-indexed endpoint's degree.
			return forEachEdge(g, func(u, v int) error {
				deg := g.Degree(v)
				if deg == 0 {
					return nil
				}
				return g.UpdateEdgeWeight(u, v, 1.0/float64(deg))
			})
		}
		return forEachEdge(g, func(u, v int) error {
			inDeg := g.InDegree(v)
			if inDeg == 0 {
				return nil
			}
			return g.UpdateEdgeWeight(u, v, 1.0/float64(inDeg))
		})

	default:
		return fmt.Errorf("weight.Assign: unsupported policy %d", policy)
	}
}

// forEachEdge visits every logical edge of g exactly once: for a
// directed graph that's every (u, v) adjacency entry; for an undirected
// graph — where adjacency mirrors both directions but UpdateEdgeWeight
// keeps a single weight per edge — that's every (u, v) with u < v, so a
// policy that draws (Random, TypicalValues) or derives from a mutable
// quantity (WC's degree) can't be run twice against the same edge and
// have the second draw silently clobber the first.
func forEachEdge(g *graph.Graph, fn func(u, v int) error) error {
	for u := 0; u < g.NumNodes(); u++ {
		for _, v := range g.OutNeighbors(u) {
			if !g.Directed() && u > v {
				continue
			}
			if err := fn(u, v); err != nil {
				return err
			}
		}
	}
	return nil
}
