package selector

import (
	"github.com/rs/zerolog"

	"github.com/gilchrisn/influence-maximization/graph"
	"github.com/gilchrisn/influence-maximization/imconfig"
)

// Greedy selects seeds one at a time, at each round picking the
// candidate whose addition to the current set maximizes mean spread
// (spec.md §4.6). It issues k·(n−|S|) spread evaluations, each an
// R-round Monte Carlo batch.
type Greedy struct {
	g      *graph.Graph
	ctor   ModelCtor
	logger zerolog.Logger

	// Strict, when set, makes Run fail with imerr.BudgetExceedsNodes
	// instead of clamping k to n. Defaults to false (clamp).
	Strict bool

	// Config, when set, controls the worker count and multithreading of
	// every spread evaluation Run performs. Nil runs single-threaded.
	Config *imconfig.Config
}

// NewGreedy binds a Greedy selector to g. ctor constructs the diffusion
// model (IC or LT) each spread evaluation simulates.
func NewGreedy(g *graph.Graph, ctor ModelCtor, logger zerolog.Logger) *Greedy {
	return &Greedy{g: g, ctor: ctor, logger: logger}
}

// NewGreedyFromConfig binds a Greedy selector to g with cfg driving its
// logger and every spread evaluation's worker count.
func NewGreedyFromConfig(g *graph.Graph, ctor ModelCtor, cfg *imconfig.Config) *Greedy {
	return &Greedy{g: g, ctor: ctor, logger: cfg.CreateLogger("greedy"), Config: cfg}
}

// Run selects up to k seeds. rounds is the Monte Carlo batch size per
// spread evaluation and seed is the Monte Carlo user seed shared by
// every evaluation, which is what makes the per-round argmax
// deterministic. k > n clamps to n, or fails with BudgetExceedsNodes if
// sel.Strict is set (spec.md §7).
func (sel *Greedy) Run(k, rounds int, seed int64) ([]int, error) {
	n := sel.g.NumNodes()
	k, err := clampBudget("selector.Greedy.Run", k, n, sel.Strict)
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return []int{}, nil
	}

	chosen := make([]int, 0, k)
	chosenSet := make(map[int]struct{}, k)

	for round := 1; round <= k; round++ {
		bestNode := -1
		bestGain := 0.0
		bestIsFirst := true

		for v := 0; v < n; v++ {
			if _, ok := chosenSet[v]; ok {
				continue
			}
			candidate := append(append([]int{}, chosen...), v)
			gain := spread(sel.g, sel.ctor, candidate, rounds, seed, sel.Config, sel.logger)
			if bestIsFirst || gain > bestGain {
				bestNode, bestGain, bestIsFirst = v, gain, false
			}
		}

		if bestNode == -1 {
			break
		}
		chosen = append(chosen, bestNode)
		chosenSet[bestNode] = struct{}{}

		progress := sel.logger.Info()
		if sel.Config != nil && !sel.Config.EnableProgress() {
			progress = sel.logger.Debug()
		}
		progress.
			Int("round", round).
			Int("node", bestNode).
			Float64("spread", bestGain).
			Msg("greedy selected seed")
	}

	return chosen, nil
}
