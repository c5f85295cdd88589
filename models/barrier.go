package models

import (
	"fmt"
	"math"
)

// DownAndOutCall prices a European call that is knocked out if the
// underlying trades at or below the barrier before maturity. Both barrier
// regimes are handled: H >= X uses the x1/y1 four-term closed form, H < X
// prices the knock-in directly and applies in/out parity.
func DownAndOutCall(p PricingParams, barrier float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if barrier <= 0 {
		return 0, fmt.Errorf("%w: barrier must be positive, got %g", ErrInvalidParameter, barrier)
	}

	// Spot at or below the barrier: knocked out immediately.
	if p.UnderlyingPrice <= barrier {
		return 0, nil
	}

	sigma := p.Volatility
	sqrtT := math.Sqrt(p.TimeToMaturity)
	lambda := (p.RiskFreeRate - p.DividendYield + 0.5*sigma*sigma) / (sigma * sigma)
	hs := barrier / p.UnderlyingPrice
	discS := p.UnderlyingPrice * math.Exp(-p.DividendYield*p.TimeToMaturity)
	discX := p.Strike * math.Exp(-p.RiskFreeRate*p.TimeToMaturity)

	if barrier >= p.Strike {
		x1 := math.Log(p.UnderlyingPrice/barrier)/(sigma*sqrtT) + lambda*sigma*sqrtT
		y1 := math.Log(barrier/p.UnderlyingPrice)/(sigma*sqrtT) + lambda*sigma*sqrtT

		out := discS*stdNormal.CDF(x1) -
			discX*stdNormal.CDF(x1-sigma*sqrtT) -
			discS*math.Pow(hs, 2*lambda)*stdNormal.CDF(y1) +
			discX*math.Pow(hs, 2*lambda-2)*stdNormal.CDF(y1-sigma*sqrtT)
		return out, nil
	}

	vanilla, err := Vanilla(p, Call)
	if err != nil {
		return 0, err
	}

	y := math.Log(barrier*barrier/(p.UnderlyingPrice*p.Strike))/(sigma*sqrtT) + lambda*sigma*sqrtT
	in := discS*math.Pow(hs, 2*lambda)*stdNormal.CDF(y) -
		discX*math.Pow(hs, 2*lambda-2)*stdNormal.CDF(y-sigma*sqrtT)
	return vanilla - in, nil
}

// DownAndInCall prices a European call that only activates if the underlying
// trades at or below the barrier before maturity, via in/out parity against
// the vanilla price. At the boundary S = H the contract is already knocked
// in and the vanilla price is returned exactly.
func DownAndInCall(p PricingParams, barrier float64) (float64, error) {
	vanilla, err := Vanilla(p, Call)
	if err != nil {
		return 0, err
	}
	out, err := DownAndOutCall(p, barrier)
	if err != nil {
		return 0, err
	}
	return vanilla - out, nil
}
