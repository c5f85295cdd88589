package models

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

var rngPool = sync.Pool{
	New: func() interface{} {
		return rand.New(rand.NewSource(uint64(rand.Int63())))
	},
}

// MonteCarloResult carries the estimator value and its sampling error.
// The estimate converges to the closed-form price at a rate of O(1/sqrt(M)).
type MonteCarloResult struct {
	Price    float64
	StdError float64
}

// MonteCarlo estimates a European call or put price by drawing terminal
// prices under geometric Brownian motion and averaging discounted payoffs.
// Samples are split across GOMAXPROCS workers. A non-zero seed makes the
// draw deterministic for a fixed worker count; seed 0 uses the pooled
// time-seeded generators.
func MonteCarlo(p PricingParams, optionType OptionType, samples int, seed uint64) (MonteCarloResult, error) {
	if err := p.Validate(); err != nil {
		return MonteCarloResult{}, err
	}
	if samples <= 0 {
		return MonteCarloResult{}, fmt.Errorf("%w: monte carlo samples must be positive, got %d", ErrInvalidSampleCount, samples)
	}

	drift := (p.RiskFreeRate - p.DividendYield - 0.5*p.Volatility*p.Volatility) * p.TimeToMaturity
	diffusion := p.Volatility * math.Sqrt(p.TimeToMaturity)
	discount := math.Exp(-p.RiskFreeRate * p.TimeToMaturity)

	payoffs := make([]float64, samples)

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > samples {
		numWorkers = samples
	}

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * samples / numWorkers
		end := (w + 1) * samples / numWorkers

		wg.Add(1)
		go func(worker, start, end int) {
			defer wg.Done()

			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewSource(seed + uint64(worker)))
			} else {
				rng = rngPool.Get().(*rand.Rand)
				defer rngPool.Put(rng)
			}

			for i := start; i < end; i++ {
				terminal := p.UnderlyingPrice * math.Exp(drift+diffusion*rng.NormFloat64())
				payoffs[i] = discount * optionType.Payoff(terminal, p.Strike)
			}
		}(w, start, end)
	}
	wg.Wait()

	mean, std := stat.MeanStdDev(payoffs, nil)
	return MonteCarloResult{
		Price:    mean,
		StdError: std / math.Sqrt(float64(samples)),
	}, nil
}
