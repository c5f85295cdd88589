package sweep

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/cpu"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"github.com/bcdannyboy/optprice/models"
)

const jobBatchSize = 256

// Config describes a spot-price sweep of a single contract: the same strike,
// rate, maturity, volatility, and yield are priced at every spot level on the
// grid with each method.
type Config struct {
	Params        models.PricingParams // UnderlyingPrice is ignored; the grid supplies it
	OptionType    models.OptionType
	SpotMin       float64
	SpotMax       float64
	SpotSteps     int
	BinomialSteps int
	MCSamples     int
	MCSeed        uint64
	ShowProgress  bool
	MonitorCPU    bool
}

// Row holds every method's price at one spot level, plus each numerical
// method's absolute deviation from the closed form.
type Row struct {
	Spot             float64 `json:"spot"`
	ClosedForm       float64 `json:"closed_form"`
	Binomial         float64 `json:"binomial"`
	MonteCarlo       float64 `json:"monte_carlo"`
	MonteCarloSE     float64 `json:"monte_carlo_se"`
	BinomialAbsErr   float64 `json:"binomial_abs_err"`
	MonteCarloAbsErr float64 `json:"monte_carlo_abs_err"`
}

type job struct {
	index int
	spot  float64
}

func (c Config) validate() error {
	probe := c.Params
	probe.UnderlyingPrice = c.SpotMin
	if err := probe.Validate(); err != nil {
		return err
	}
	if c.SpotMax <= c.SpotMin {
		return fmt.Errorf("%w: spot range [%g, %g] is empty", models.ErrInvalidParameter, c.SpotMin, c.SpotMax)
	}
	if c.SpotSteps < 2 {
		return fmt.Errorf("%w: spot grid needs at least 2 points, got %d", models.ErrInvalidSampleCount, c.SpotSteps)
	}
	if c.BinomialSteps <= 0 {
		return fmt.Errorf("%w: binomial steps must be positive, got %d", models.ErrInvalidSampleCount, c.BinomialSteps)
	}
	if c.MCSamples <= 0 {
		return fmt.Errorf("%w: monte carlo samples must be positive, got %d", models.ErrInvalidSampleCount, c.MCSamples)
	}
	return nil
}

// Run prices the configured contract at every spot level on the grid,
// fanning jobs out over one worker per CPU. Rows come back ordered by spot.
func Run(cfg Config) ([]Row, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	jobs := generateJobs(cfg)

	numCPU := runtime.NumCPU()
	if numCPU > len(jobs) {
		numCPU = len(jobs)
	}

	var bar *mpb.Bar
	var progress *mpb.Progress
	if cfg.ShowProgress {
		progress = mpb.New(mpb.WithWidth(64))
		bar = progress.AddBar(int64(len(jobs)),
			mpb.PrependDecorators(
				decor.Name("Sweep"),
				decor.Percentage(decor.WCSyncSpace),
			),
			mpb.AppendDecorators(
				decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
			),
		)
	}

	if cfg.MonitorCPU {
		done := make(chan struct{})
		defer close(done)
		go monitorCPUUsage(done)
	}

	rows, err := processJobs(cfg, jobs, numCPU, bar)
	if progress != nil {
		progress.Wait()
	}
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func generateJobs(cfg Config) []job {
	step := (cfg.SpotMax - cfg.SpotMin) / float64(cfg.SpotSteps-1)
	jobs := make([]job, cfg.SpotSteps)
	for i := 0; i < cfg.SpotSteps; i++ {
		jobs[i] = job{index: i, spot: cfg.SpotMin + float64(i)*step}
	}
	return jobs
}

func processJobs(cfg Config, jobs []job, numWorkers int, bar *mpb.Bar) ([]Row, error) {
	rows := make([]Row, len(jobs))
	errs := make([]error, len(jobs))
	jobChan := make(chan job, jobBatchSize)

	var wg sync.WaitGroup
	var processed int64

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				rows[j.index], errs[j.index] = priceAtSpot(cfg, j.spot)
				atomic.AddInt64(&processed, 1)
				if bar != nil {
					bar.Increment()
				}
			}
		}()
	}

	for _, j := range jobs {
		jobChan <- j
	}
	close(jobChan)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func priceAtSpot(cfg Config, spot float64) (Row, error) {
	p := cfg.Params
	p.UnderlyingPrice = spot

	closed, err := models.Vanilla(p, cfg.OptionType)
	if err != nil {
		return Row{}, err
	}
	tree, err := models.Binomial(p, cfg.OptionType, models.European, cfg.BinomialSteps)
	if err != nil {
		return Row{}, err
	}
	mc, err := models.MonteCarlo(p, cfg.OptionType, cfg.MCSamples, cfg.MCSeed)
	if err != nil {
		return Row{}, err
	}

	return Row{
		Spot:             spot,
		ClosedForm:       closed,
		Binomial:         tree,
		MonteCarlo:       mc.Price,
		MonteCarloSE:     mc.StdError,
		BinomialAbsErr:   math.Abs(tree - closed),
		MonteCarloAbsErr: math.Abs(mc.Price - closed),
	}, nil
}

func monitorCPUUsage(done <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			percentage, err := cpu.Percent(time.Second, false)
			if err == nil && len(percentage) > 0 {
				fmt.Printf("\nCPU Usage: %.2f%%\n", percentage[0])
			}
		}
	}
}
