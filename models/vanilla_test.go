package models

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestVanillaReferenceCase(t *testing.T) {
	// S=100, X=100, r=0.05, sigma=0.2, T=1, q=0
	p := PricingParams{
		UnderlyingPrice: 100,
		Strike:          100,
		RiskFreeRate:    0.05,
		TimeToMaturity:  1,
		Volatility:      0.2,
	}

	call, err := Vanilla(p, Call)
	if err != nil {
		t.Fatalf("call err: %v", err)
	}
	put, err := Vanilla(p, Put)
	if err != nil {
		t.Fatalf("put err: %v", err)
	}

	if !almostEqual(call, 10.450583572185565, 1e-9) {
		t.Fatalf("call price mismatch: got=%v", call)
	}
	if !almostEqual(put, 5.573526022256971, 1e-9) {
		t.Fatalf("put price mismatch: got=%v", put)
	}
}

func TestVanillaPutCallParity(t *testing.T) {
	// C - P = S*e^(-qT) - X*e^(-rT)
	cases := []PricingParams{
		{UnderlyingPrice: 100, Strike: 100, RiskFreeRate: 0.05, TimeToMaturity: 1, Volatility: 0.2},
		{UnderlyingPrice: 1, Strike: 1.1, RiskFreeRate: 0.05, TimeToMaturity: 1, Volatility: 0.2},
		{UnderlyingPrice: 50, Strike: 60, RiskFreeRate: 0.01, TimeToMaturity: 0.25, Volatility: 0.45, DividendYield: 0.03},
		{UnderlyingPrice: 120, Strike: 90, RiskFreeRate: 0.1, TimeToMaturity: 2.5, Volatility: 0.6, DividendYield: 0.02},
	}

	for _, p := range cases {
		call, err := Vanilla(p, Call)
		if err != nil {
			t.Fatalf("call err: %v", err)
		}
		put, err := Vanilla(p, Put)
		if err != nil {
			t.Fatalf("put err: %v", err)
		}

		left := call - put
		right := p.UnderlyingPrice*math.Exp(-p.DividendYield*p.TimeToMaturity) -
			p.Strike*math.Exp(-p.RiskFreeRate*p.TimeToMaturity)

		if !almostEqual(left, right, 1e-9) {
			t.Fatalf("parity mismatch for %+v: left=%v right=%v", p, left, right)
		}
	}
}

func TestVanillaDividendYieldLowersCall(t *testing.T) {
	p := PricingParams{
		UnderlyingPrice: 100,
		Strike:          100,
		RiskFreeRate:    0.05,
		TimeToMaturity:  1,
		Volatility:      0.2,
	}
	base, _ := Vanilla(p, Call)

	p.DividendYield = 0.03
	withYield, _ := Vanilla(p, Call)

	if withYield >= base {
		t.Fatalf("expected dividend yield to lower call price: base=%v withYield=%v", base, withYield)
	}
}

func TestVanillaInvalidInputs(t *testing.T) {
	valid := PricingParams{
		UnderlyingPrice: 100,
		Strike:          100,
		RiskFreeRate:    0.05,
		TimeToMaturity:  1,
		Volatility:      0.2,
	}

	cases := []func(PricingParams) PricingParams{
		func(p PricingParams) PricingParams { p.UnderlyingPrice = -1; return p },
		func(p PricingParams) PricingParams { p.Strike = 0; return p },
		func(p PricingParams) PricingParams { p.TimeToMaturity = 0; return p },
		func(p PricingParams) PricingParams { p.Volatility = -0.1; return p },
	}

	for i, mutate := range cases {
		_, err := Vanilla(mutate(valid), Call)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("case %d: expected ErrInvalidParameter, got %v", i, err)
		}
	}
}
