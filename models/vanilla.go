package models

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.UnitNormal

// Vanilla prices a European call or put under Black-Scholes-Merton with a
// continuous dividend yield.
func Vanilla(p PricingParams, optionType OptionType) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	d1, d2 := dValues(p)
	discS := p.UnderlyingPrice * math.Exp(-p.DividendYield*p.TimeToMaturity)
	discX := p.Strike * math.Exp(-p.RiskFreeRate*p.TimeToMaturity)

	if optionType == Call {
		return discS*stdNormal.CDF(d1) - discX*stdNormal.CDF(d2), nil
	}
	return discX*stdNormal.CDF(-d2) - discS*stdNormal.CDF(-d1), nil
}

func dValues(p PricingParams) (float64, float64) {
	sqrtT := math.Sqrt(p.TimeToMaturity)
	d1 := (math.Log(p.UnderlyingPrice/p.Strike) +
		(p.RiskFreeRate-p.DividendYield+0.5*p.Volatility*p.Volatility)*p.TimeToMaturity) /
		(p.Volatility * sqrtT)
	return d1, d1 - p.Volatility*sqrtT
}
