package sweep

import (
	"errors"
	"testing"

	"github.com/bcdannyboy/optprice/models"
)

func baseConfig() Config {
	return Config{
		Params: models.PricingParams{
			Strike:         1.1,
			RiskFreeRate:   0.05,
			TimeToMaturity: 1,
			Volatility:     0.2,
		},
		OptionType:    models.Call,
		SpotMin:       0.5,
		SpotMax:       2.0,
		SpotSteps:     7,
		BinomialSteps: 200,
		MCSamples:     50_000,
		MCSeed:        42,
	}
}

func TestRunProducesOrderedRows(t *testing.T) {
	cfg := baseConfig()

	rows, err := Run(cfg)
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	if len(rows) != cfg.SpotSteps {
		t.Fatalf("expected %d rows, got %d", cfg.SpotSteps, len(rows))
	}

	if rows[0].Spot != cfg.SpotMin || rows[len(rows)-1].Spot != cfg.SpotMax {
		t.Fatalf("grid endpoints wrong: first=%v last=%v", rows[0].Spot, rows[len(rows)-1].Spot)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Spot <= rows[i-1].Spot {
			t.Fatalf("rows not ordered by spot at index %d: %v <= %v", i, rows[i].Spot, rows[i-1].Spot)
		}
	}
}

func TestRunRowsMatchPricers(t *testing.T) {
	cfg := baseConfig()

	rows, err := Run(cfg)
	if err != nil {
		t.Fatalf("run err: %v", err)
	}

	for _, row := range rows {
		p := cfg.Params
		p.UnderlyingPrice = row.Spot
		closed, err := models.Vanilla(p, cfg.OptionType)
		if err != nil {
			t.Fatalf("vanilla err: %v", err)
		}
		if row.ClosedForm != closed {
			t.Fatalf("closed form mismatch at spot=%v: row=%v direct=%v", row.Spot, row.ClosedForm, closed)
		}

		// The numerical methods should stay close to the closed form on a
		// grid this coarse.
		if row.BinomialAbsErr > 0.01 {
			t.Fatalf("binomial deviation too large at spot=%v: %v", row.Spot, row.BinomialAbsErr)
		}
		if row.MonteCarloAbsErr > 0.05 {
			t.Fatalf("monte carlo deviation too large at spot=%v: %v", row.Spot, row.MonteCarloAbsErr)
		}
	}
}

func TestRunInvalidConfigs(t *testing.T) {
	cases := []func(Config) Config{
		func(c Config) Config { c.SpotMin = -1; return c },
		func(c Config) Config { c.SpotMax = c.SpotMin; return c },
		func(c Config) Config { c.SpotSteps = 1; return c },
		func(c Config) Config { c.BinomialSteps = 0; return c },
		func(c Config) Config { c.MCSamples = 0; return c },
		func(c Config) Config { c.Params.Volatility = 0; return c },
	}

	for i, mutate := range cases {
		_, err := Run(mutate(baseConfig()))
		if err == nil {
			t.Fatalf("case %d: expected error, got none", i)
		}
		if !errors.Is(err, models.ErrInvalidParameter) && !errors.Is(err, models.ErrInvalidSampleCount) {
			t.Fatalf("case %d: unexpected error type: %v", i, err)
		}
	}
}
