// Package selector implements simulation-based seed selection: Greedy
// and CELF (spec.md §4.6/§4.7), both built on the diffusion package's
// Monte Carlo spread oracle rather than any model-specific code, so the
// same selector works unmodified over IC or LT (spec.md §9's capability-set
// design note).
package selector

import (
	"github.com/rs/zerolog"

	"github.com/gilchrisn/influence-maximization/diffusion"
	"github.com/gilchrisn/influence-maximization/graph"
	"github.com/gilchrisn/influence-maximization/imconfig"
	"github.com/gilchrisn/influence-maximization/imerr"
)

// ModelCtor builds a fresh diffusion.Model bound to g with the given
// seed set. Selectors call it once per spread evaluation so every
// candidate is simulated from a clean model instance.
type ModelCtor func(g *graph.Graph, seeds []int) diffusion.Model

// spread evaluates the mean activated-node count of seeds under a model
// built by ctor, using a fixed seed so every candidate evaluation in a
// given round draws from the same Monte Carlo trial-seed table (spec.md
// §4.6's "independent Monte Carlo seeded deterministically"). cfg may be
// nil, in which case spread runs single-threaded (the selectors' cheap
// default, since each round already fans out over candidates).
func spread(g *graph.Graph, ctor ModelCtor, seeds []int, rounds int, userSeed int64, cfg *imconfig.Config, logger zerolog.Logger) float64 {
	m := ctor(g, seeds)
	if cfg == nil {
		return diffusion.RunMonteCarloDiffusion(m, rounds, userSeed, false, 0, logger)
	}
	return diffusion.RunMonteCarloDiffusion(m, rounds, userSeed, cfg.UseMultithread(), cfg.NumWorkers(), logger)
}

// clampBudget applies the §7 BudgetExceedsNodes default: k > n clamps
// to n rather than failing, unless strict is set, in which case it
// fails with BudgetExceedsNodes instead. The clamp-vs-fail rule itself
// lives in imerr.ClampBudget, shared with ris.BaseRIS/IMM.
func clampBudget(op string, k, n int, strict bool) (int, error) {
	return imerr.ClampBudget(op, k, n, strict)
}
