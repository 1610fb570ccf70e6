package selector

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gilchrisn/influence-maximization/diffusion"
	"github.com/gilchrisn/influence-maximization/graph"
	"github.com/gilchrisn/influence-maximization/imconfig"
	"github.com/gilchrisn/influence-maximization/imerr"
	"github.com/gilchrisn/influence-maximization/weight"
)

func icCtor(g *graph.Graph, seeds []int) diffusion.Model {
	return diffusion.NewIC(g, seeds)
}

// smallClubGraph is a synthetic stand-in for spec.md S4's karate-club
// scenario, sized down so the Greedy/CELF equality check below runs
// quickly and deterministically: a few overlapping triangles and
// bridges, dense enough for marginal gains to actually tie and cross.
func smallClubGraph(t *testing.T) *graph.Graph {
	t.Helper()
	edges := [][2]int{
		{0, 1}, {1, 0}, {0, 2}, {2, 0}, {1, 2}, {2, 1},
		{2, 3}, {3, 2}, {3, 4}, {4, 3}, {3, 5}, {5, 3},
		{4, 5}, {5, 4}, {5, 6}, {6, 5}, {6, 7}, {7, 6},
		{6, 8}, {8, 6}, {7, 8}, {8, 7}, {8, 9}, {9, 8},
		{0, 9}, {9, 0}, {1, 9}, {9, 1}, {4, 7}, {7, 4},
	}
	g := graph.New(10, true)
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 0.0); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	if err := weight.Assign(g, weight.WC, weight.Params{}); err != nil {
		t.Fatalf("weight.Assign: %v", err)
	}
	return g
}

// TestCELFMatchesGreedy is spec.md S4's contract: CELF and Greedy must
// return identical ordered seed lists given identical (graph, model,
// rounds, seed).
func TestCELFMatchesGreedy(t *testing.T) {
	g := smallClubGraph(t)
	logger := zerolog.Nop()

	greedy, err := NewGreedy(g, icCtor, logger).Run(3, 200, 42)
	require.NoError(t, err)
	celf, err := NewCELF(g, icCtor, logger).Run(3, 200, 42)
	require.NoError(t, err)

	require.Equal(t, greedy, celf, "greedy and celf must return identical seed order")
}

func TestCELFFromConfigBuildsLogger(t *testing.T) {
	g := smallClubGraph(t)
	cfg := imconfig.New()
	cfg.Set("logging.enable_progress", false)

	sel := NewCELFFromConfig(g, icCtor, cfg)
	out, err := sel.Run(2, 50, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestGreedyZeroK(t *testing.T) {
	g := graph.New(4, true)
	out, err := NewGreedy(g, icCtor, zerolog.Nop()).Run(0, 10, 1)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestGreedyBudgetExceedsNodesClamps(t *testing.T) {
	g := graph.New(3, true)
	_ = g.AddEdge(0, 1, 1.0)
	_ = g.AddEdge(1, 2, 1.0)
	out, err := NewGreedy(g, icCtor, zerolog.Nop()).Run(10, 20, 1)
	require.NoError(t, err)
	require.Len(t, out, 3, "k clamps to n")
}

func TestGreedyStrictBudgetExceedsNodesFails(t *testing.T) {
	g := graph.New(3, true)
	_ = g.AddEdge(0, 1, 1.0)
	sel := NewGreedy(g, icCtor, zerolog.Nop())
	sel.Strict = true
	_, err := sel.Run(10, 20, 1)
	require.ErrorIs(t, err, imerr.BudgetExceedsNodes)
}

func TestGreedyNegativeKIsInvalidParameter(t *testing.T) {
	g := graph.New(3, true)
	_, err := NewGreedy(g, icCtor, zerolog.Nop()).Run(-1, 10, 1)
	require.ErrorIs(t, err, imerr.InvalidParameter)
}

func TestGreedyFromConfigUsesConfiguredWorkers(t *testing.T) {
	g := smallClubGraph(t)
	cfg := imconfig.New()
	cfg.Set("performance.num_workers", 2)
	cfg.Set("logging.level", "error")

	sel := NewGreedyFromConfig(g, icCtor, cfg)
	if sel.Config != cfg {
		t.Fatal("NewGreedyFromConfig did not retain cfg")
	}
	out, err := sel.Run(2, 50, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestGreedyPicksHighestOutDegreeFirst(t *testing.T) {
	// Star graph: 0 -> {1,2,3,4} with equal weight. The first seed must
	// be the hub, since it alone reaches the most nodes.
	g := graph.New(5, true)
	for i := 1; i <= 4; i++ {
		_ = g.AddEdge(0, i, 1.0)
	}
	out, err := NewGreedy(g, icCtor, zerolog.Nop()).Run(1, 50, 7)
	require.NoError(t, err)
	require.Equal(t, []int{0}, out)
}
