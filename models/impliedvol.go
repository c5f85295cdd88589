package models

import (
	"fmt"
	"math"
)

const (
	ivMaxIterations = 100
	ivEpsilon       = 1e-8
	ivMinVega       = 1e-10
)

// ImpliedVolatility solves for the volatility that reproduces marketPrice
// under the vanilla pricer, using Newton-Raphson on vega. The Volatility
// field of p is ignored.
func ImpliedVolatility(p PricingParams, optionType OptionType, marketPrice float64) (float64, error) {
	p.Volatility = 0.5 // initial guess
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if marketPrice <= 0 {
		return 0, fmt.Errorf("%w: market price must be positive, got %g", ErrInvalidParameter, marketPrice)
	}

	sigma := p.Volatility
	for i := 0; i < ivMaxIterations; i++ {
		p.Volatility = sigma
		price, err := Vanilla(p, optionType)
		if err != nil {
			return 0, err
		}

		diff := price - marketPrice
		if math.Abs(diff) < ivEpsilon {
			return sigma, nil
		}

		vega := vanillaVega(p)
		if vega < ivMinVega {
			break
		}

		sigma -= diff / vega
		if sigma <= 0 {
			sigma = 1e-4
		}
		if sigma > 5 {
			sigma = 5
		}
	}

	return 0, fmt.Errorf("implied volatility did not converge for market price %g", marketPrice)
}
