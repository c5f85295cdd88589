package models

import "math"

// GreeksResult carries the closed-form price and first-order sensitivities
// of a European option.
type GreeksResult struct {
	Price float64
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
}

// Greeks computes the Black-Scholes-Merton price and greeks for a European
// call or put.
func Greeks(p PricingParams, optionType OptionType) (GreeksResult, error) {
	price, err := Vanilla(p, optionType)
	if err != nil {
		return GreeksResult{}, err
	}

	d1, d2 := dValues(p)
	sqrtT := math.Sqrt(p.TimeToMaturity)
	qDisc := math.Exp(-p.DividendYield * p.TimeToMaturity)
	rDisc := math.Exp(-p.RiskFreeRate * p.TimeToMaturity)

	gamma := qDisc * stdNormal.Prob(d1) / (p.UnderlyingPrice * p.Volatility * sqrtT)
	vega := p.UnderlyingPrice * qDisc * stdNormal.Prob(d1) * sqrtT

	var delta, theta, rho float64
	if optionType == Call {
		delta = qDisc * stdNormal.CDF(d1)
		theta = -p.UnderlyingPrice*qDisc*stdNormal.Prob(d1)*p.Volatility/(2*sqrtT) -
			p.RiskFreeRate*p.Strike*rDisc*stdNormal.CDF(d2) +
			p.DividendYield*p.UnderlyingPrice*qDisc*stdNormal.CDF(d1)
		rho = p.Strike * p.TimeToMaturity * rDisc * stdNormal.CDF(d2)
	} else {
		delta = qDisc * (stdNormal.CDF(d1) - 1)
		theta = -p.UnderlyingPrice*qDisc*stdNormal.Prob(d1)*p.Volatility/(2*sqrtT) +
			p.RiskFreeRate*p.Strike*rDisc*stdNormal.CDF(-d2) -
			p.DividendYield*p.UnderlyingPrice*qDisc*stdNormal.CDF(-d1)
		rho = -p.Strike * p.TimeToMaturity * rDisc * stdNormal.CDF(-d2)
	}

	return GreeksResult{
		Price: price,
		Delta: delta,
		Gamma: gamma,
		Theta: theta,
		Vega:  vega,
		Rho:   rho,
	}, nil
}

func vanillaVega(p PricingParams) float64 {
	d1, _ := dValues(p)
	return p.UnderlyingPrice * math.Exp(-p.DividendYield*p.TimeToMaturity) *
		stdNormal.Prob(d1) * math.Sqrt(p.TimeToMaturity)
}
