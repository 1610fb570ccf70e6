package diffusion

import (
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/gilchrisn/influence-maximization/rng"
)

// RunMonteCarloDiffusion runs rounds independent trials of m and returns
// the mean activated-node count (spec.md §4.4/§4.5's
// run_monte_carlo_diffusion). rounds <= 0 returns 0.0 with no error.
//
// Per-trial seeds are derived once from userSeed via the RNG harness
// (rng.TrialSeeds), so trial i's samples depend only on its own seed
// and not on how trials are later split across goroutines (spec.md
// §4.3 P1/P2). When useMultithread is true, trials are partitioned
// round-robin across workers goroutines (workers <= 0 defaults to
// runtime.NumCPU(), imconfig.Config.NumWorkers()'s own default), but
// every trial's result is written to its own slot in a results slice
// indexed by trial number; the mean is always taken as a single
// sequential reduction (gonum/stat.Mean) over that slice in
// trial-index order, so the returned value is identical bit-for-bit
// regardless of thread count (spec.md §4.3 P3, §8 property 1).
func RunMonteCarloDiffusion(m Model, rounds int, userSeed int64, useMultithread bool, workers int, logger zerolog.Logger) float64 {
	if rounds <= 0 {
		return 0.0
	}

	seeds := rng.TrialSeeds(uint32(userSeed), rounds)
	results := make([]float64, rounds)

	if !useMultithread {
		for i := 0; i < rounds; i++ {
			r := rng.NewTrialRand(seeds[i])
			results[i] = float64(m.RunSingleTrial(r))
		}
	} else {
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		if workers < 1 {
			workers = 1
		}
		if workers > rounds {
			workers = rounds
		}

		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func(worker int) {
				defer wg.Done()
				for i := worker; i < rounds; i += workers {
					r := rng.NewTrialRand(seeds[i])
					results[i] = float64(m.RunSingleTrial(r))
				}
			}(w)
		}
		wg.Wait()
	}

	mean := stat.Mean(results, nil)
	logger.Debug().
		Int("rounds", rounds).
		Bool("multithread", useMultithread).
		Float64("mean_spread", mean).
		Msg("completed Monte Carlo diffusion")
	return mean
}
