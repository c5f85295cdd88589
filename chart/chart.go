package chart

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/bcdannyboy/optprice/models"
	"github.com/bcdannyboy/optprice/sweep"
)

// ComparisonPNG draws price-versus-spot curves for the closed-form, binomial,
// and Monte Carlo methods from the output of a sweep.
func ComparisonPNG(rows []sweep.Row, path string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no sweep rows to plot")
	}

	pl := plot.New()
	pl.Title.Text = "Option price by pricing method"
	pl.X.Label.Text = "Spot price"
	pl.Y.Label.Text = "Option price"

	closed := make(plotter.XYs, len(rows))
	binomial := make(plotter.XYs, len(rows))
	monteCarlo := make(plotter.XYs, len(rows))
	for i, row := range rows {
		closed[i] = plotter.XY{X: row.Spot, Y: row.ClosedForm}
		binomial[i] = plotter.XY{X: row.Spot, Y: row.Binomial}
		monteCarlo[i] = plotter.XY{X: row.Spot, Y: row.MonteCarlo}
	}

	err := plotutil.AddLinePoints(pl,
		"Closed form", closed,
		"Binomial", binomial,
		"Monte Carlo", monteCarlo,
	)
	if err != nil {
		return fmt.Errorf("failed to add sweep curves: %w", err)
	}

	return pl.Save(8*vg.Inch, 6*vg.Inch, path)
}

// PathsPNG draws simulated geometric Brownian motion sample paths for the
// given contract parameters, one line per path.
func PathsPNG(p models.PricingParams, numPaths, steps int, seed uint64, path string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if numPaths <= 0 || steps <= 0 {
		return fmt.Errorf("%w: need positive path and step counts, got %d paths, %d steps",
			models.ErrInvalidSampleCount, numPaths, steps)
	}

	rng := rand.New(rand.NewSource(seed))
	dt := p.TimeToMaturity / float64(steps)
	drift := (p.RiskFreeRate - p.DividendYield - 0.5*p.Volatility*p.Volatility) * dt
	diffusion := p.Volatility * math.Sqrt(dt)

	pl := plot.New()
	pl.Title.Text = "Simulated price paths"
	pl.X.Label.Text = "Time (years)"
	pl.Y.Label.Text = "Price"

	for i := 0; i < numPaths; i++ {
		points := make(plotter.XYs, steps+1)
		spot := p.UnderlyingPrice
		points[0] = plotter.XY{X: 0, Y: spot}
		for j := 1; j <= steps; j++ {
			spot *= math.Exp(drift + diffusion*rng.NormFloat64())
			points[j] = plotter.XY{X: float64(j) * dt, Y: spot}
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("failed to build path line: %w", err)
		}
		line.Color = plotutil.Color(i)
		pl.Add(line)
	}

	return pl.Save(8*vg.Inch, 6*vg.Inch, path)
}
