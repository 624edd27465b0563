package sim

import (
	"context"
	"sync"
)

// BuildFunc creates an independent simulator for one seed.
type BuildFunc func(seed int64) (*Simulator, error)

// Ensemble runs the same setup under consecutive seeds, one goroutine
// per run. Each run owns its own scene, so nothing is shared.
type Ensemble struct {
	build     BuildFunc
	numRuns   int
	seedStart int64
}

func NewEnsemble(build BuildFunc, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{build: build, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			sim, err := e.build(e.seedStart + int64(idx))
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = sim.Run(ctx, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// MeanFinal averages each metric's final value across results.
func MeanFinal(results []*Result) map[string]float64 {
	mean := make(map[string]float64)
	if len(results) == 0 {
		return mean
	}
	for _, r := range results {
		for name, v := range r.Final {
			mean[name] += v
		}
	}
	for name := range mean {
		mean[name] /= float64(len(results))
	}
	return mean
}
