package models

import (
	"fmt"
	"math"
)

// Binomial prices a call or put on a Cox-Ross-Rubinstein lattice with the
// given number of time steps. For American exercise the propagated value at
// each interior node is floored at the immediate exercise payoff.
//
// Numerical stability requires steps large enough that the up and down
// factors are well separated from 1; no upper bound is enforced.
func Binomial(p PricingParams, optionType OptionType, style ExerciseStyle, steps int) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if steps <= 0 {
		return 0, fmt.Errorf("%w: binomial steps must be positive, got %d", ErrInvalidSampleCount, steps)
	}

	dt := p.TimeToMaturity / float64(steps)
	u := math.Exp(p.Volatility * math.Sqrt(dt))
	d := 1 / u
	prob := (math.Exp((p.RiskFreeRate-p.DividendYield)*dt) - d) / (u - d)
	disc := math.Exp(-p.RiskFreeRate * dt)

	// Terminal layer. Node j of layer n sits at S*u^(2j-n).
	values := make([]float64, steps+1)
	for j := 0; j <= steps; j++ {
		spot := p.UnderlyingPrice * math.Pow(u, float64(2*j-steps))
		values[j] = optionType.Payoff(spot, p.Strike)
	}

	for layer := steps - 1; layer >= 0; layer-- {
		for j := 0; j <= layer; j++ {
			value := disc * (prob*values[j+1] + (1-prob)*values[j])
			if style == American {
				spot := p.UnderlyingPrice * math.Pow(u, float64(2*j-layer))
				if exercise := optionType.Payoff(spot, p.Strike); exercise > value {
					value = exercise
				}
			}
			values[j] = value
		}
	}

	return values[0], nil
}
