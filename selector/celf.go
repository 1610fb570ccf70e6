package selector

import (
	"container/heap"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/influence-maximization/graph"
	"github.com/gilchrisn/influence-maximization/imconfig"
)

// celfItem is one candidate's lazily-tracked marginal gain. flag is the
// round index as of which gain is known to be correct; a popped item
// whose flag lags the current round must be refreshed before it can be
// trusted (spec.md §4.7).
type celfItem struct {
	node int
	gain float64
	flag int
}

type celfHeap []celfItem

func (h celfHeap) Len() int { return len(h) }
func (h celfHeap) Less(i, j int) bool {
	if h[i].gain != h[j].gain {
		return h[i].gain > h[j].gain
	}
	return h[i].node < h[j].node
}
func (h celfHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *celfHeap) Push(x any)        { *h = append(*h, x.(celfItem)) }
func (h *celfHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// CELF is the lazy-forward accelerant for Greedy: it exploits
// submodularity of spread to avoid recomputing every candidate's
// marginal gain on every round, while returning the identical seed
// order (spec.md §4.7, contract with §4.6).
type CELF struct {
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

// NewCELF binds a CELF selector to g.
func NewCELF(g *graph.Graph, ctor ModelCtor, logger zerolog.Logger) *CELF {
	return &CELF{g: g, ctor: ctor, logger: logger}
}

// NewCELFFromConfig binds a CELF selector to g with cfg driving its
// logger and every spread evaluation's worker count.
func NewCELFFromConfig(g *graph.Graph, ctor ModelCtor, cfg *imconfig.Config) *CELF {
	return &CELF{g: g, ctor: ctor, logger: cfg.CreateLogger("celf"), Config: cfg}
}

// Run selects up to k seeds with the same semantics as Greedy.Run.
func (sel *CELF) Run(k, rounds int, seed int64) ([]int, error) {
	n := sel.g.NumNodes()
	k, err := clampBudget("selector.CELF.Run", k, n, sel.Strict)
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return []int{}, nil
	}

	h := &celfHeap{}
	heap.Init(h)
	for v := 0; v < n; v++ {
		gain := spread(sel.g, sel.ctor, []int{v}, rounds, seed, sel.Config, sel.logger)
		heap.Push(h, celfItem{node: v, gain: gain, flag: 1})
	}

	chosen := make([]int, 0, k)

	for round := 1; round <= k; round++ {
		var baseSigma float64
		if len(chosen) > 0 {
			baseSigma = spread(sel.g, sel.ctor, chosen, rounds, seed, sel.Config, sel.logger)
		}

		for {
			top := heap.Pop(h).(celfItem)
			if top.flag == round {
				chosen = append(chosen, top.node)
				progress := sel.logger.Info()
				if sel.Config != nil && !sel.Config.EnableProgress() {
					progress = sel.logger.Debug()
				}
				progress.
					Int("round", round).
					Int("node", top.node).
					Float64("gain", top.gain).
					Msg("celf selected seed")
				break
			}

			candidate := make([]int, len(chosen)+1)
			copy(candidate, chosen)
			candidate[len(chosen)] = top.node
			sigmaCandidate := spread(sel.g, sel.ctor, candidate, rounds, seed, sel.Config, sel.logger)

			top.gain = sigmaCandidate - baseSigma
			top.flag = round
			heap.Push(h, top)
		}
	}

	return chosen, nil
}
