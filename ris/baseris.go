package ris

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/influence-maximization/graph"
	"github.com/gilchrisn/influence-maximization/imconfig"
	"github.com/gilchrisn/influence-maximization/imerr"
)

// BaseRIS selects seeds by drawing a fixed-size RR-set collection and
// running max-cover once, with no adaptive stopping rule (spec.md §4.8's
// "BaseRIS(graph, model_ctor).run(k, θ, seed)" in §6).
type BaseRIS struct {
	g      *graph.Graph
	ctor   ModelCtor
	logger zerolog.Logger

	// Strict, when set, makes Run fail with imerr.BudgetExceedsNodes
	// instead of clamping k to n. Defaults to false (clamp).
	Strict bool
}

// NewBaseRIS binds a BaseRIS selector to g.
func NewBaseRIS(g *graph.Graph, ctor ModelCtor, logger zerolog.Logger) *BaseRIS {
	return &BaseRIS{g: g, ctor: ctor, logger: logger}
}

// NewBaseRISFromConfig binds a BaseRIS selector to g with its logger
// built from cfg. RR-set sampling draws from a single rand.Rand
// (spec.md §4.8's determinism requirement), so cfg's worker settings
// don't apply here the way they do in diffusion/selector.
func NewBaseRISFromConfig(g *graph.Graph, ctor ModelCtor, cfg *imconfig.Config) *BaseRIS {
	return NewBaseRIS(g, ctor, cfg.CreateLogger("base-ris"))
}

// Run draws theta RR sets and returns the max-cover seed set of size k.
// Once every RR set is covered, the remaining budget is filled with the
// smallest unselected node ids. k > n clamps to n (returning all nodes),
// or fails with BudgetExceedsNodes if b.Strict is set (spec.md §7).
func (b *BaseRIS) Run(k, theta int, seed int64) ([]int, error) {
	n := b.g.NumNodes()
	k, err := imerr.ClampBudget("ris.BaseRIS.Run", k, n, b.Strict)
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return []int{}, nil
	}
	if theta <= 0 {
		return nil, fmt.Errorf("ris.BaseRIS.Run: theta=%d: %w", theta, imerr.InvalidParameter)
	}

	r := rand.New(rand.NewSource(seed))
	sets := GenerateRRSets(b.g, b.ctor, theta, r)
	seeds, covered := MaxCover(sets, n, k)
	if len(seeds) < k {
		picked := make(map[int]bool, len(seeds))
		for _, s := range seeds {
			picked[s] = true
		}
		for v := 0; v < n && len(seeds) < k; v++ {
			if !picked[v] {
				seeds = append(seeds, v)
			}
		}
	}

	b.logger.Info().
		Int("theta", theta).
		Int("k", len(seeds)).
		Float64("estimated_spread", float64(n)*float64(covered)/float64(theta)).
		Msg("base ris completed")
	return seeds, nil
}
