package models

import (
	"math"
	"testing"
)

func TestGreeksReferenceCase(t *testing.T) {
	p := PricingParams{
		UnderlyingPrice: 100,
		Strike:          100,
		RiskFreeRate:    0.05,
		TimeToMaturity:  1,
		Volatility:      0.2,
	}

	g, err := Greeks(p, Call)
	if err != nil {
		t.Fatalf("greeks err: %v", err)
	}

	if !almostEqual(g.Price, 10.450583572185565, 1e-9) {
		t.Fatalf("price mismatch: got=%v", g.Price)
	}
	if !almostEqual(g.Delta, 0.6368306511756191, 1e-9) {
		t.Fatalf("delta mismatch: got=%v", g.Delta)
	}
	if !almostEqual(g.Gamma, 0.018762017, 1e-6) {
		t.Fatalf("gamma mismatch: got=%v", g.Gamma)
	}
	if !almostEqual(g.Vega, 37.524035, 1e-3) {
		t.Fatalf("vega mismatch: got=%v", g.Vega)
	}
	if !almostEqual(g.Theta, -6.414028, 1e-3) {
		t.Fatalf("theta mismatch: got=%v", g.Theta)
	}
	if !almostEqual(g.Rho, 53.232482, 1e-3) {
		t.Fatalf("rho mismatch: got=%v", g.Rho)
	}
}

func TestGreeksCallPutDeltaRelation(t *testing.T) {
	// delta_call - delta_put = e^(-qT)
	p := PricingParams{
		UnderlyingPrice: 80,
		Strike:          95,
		RiskFreeRate:    0.03,
		TimeToMaturity:  0.5,
		Volatility:      0.35,
		DividendYield:   0.02,
	}

	callGreeks, err := Greeks(p, Call)
	if err != nil {
		t.Fatalf("call greeks err: %v", err)
	}
	putGreeks, err := Greeks(p, Put)
	if err != nil {
		t.Fatalf("put greeks err: %v", err)
	}

	want := math.Exp(-p.DividendYield * p.TimeToMaturity)
	if !almostEqual(callGreeks.Delta-putGreeks.Delta, want, 1e-9) {
		t.Fatalf("delta relation mismatch: got=%v want=%v", callGreeks.Delta-putGreeks.Delta, want)
	}

	// gamma and vega are identical for calls and puts
	if !almostEqual(callGreeks.Gamma, putGreeks.Gamma, 1e-12) {
		t.Fatalf("gamma should match: call=%v put=%v", callGreeks.Gamma, putGreeks.Gamma)
	}
	if !almostEqual(callGreeks.Vega, putGreeks.Vega, 1e-9) {
		t.Fatalf("vega should match: call=%v put=%v", callGreeks.Vega, putGreeks.Vega)
	}
}

func TestGreeksDeltaMatchesFiniteDifference(t *testing.T) {
	p := PricingParams{
		UnderlyingPrice: 100,
		Strike:          110,
		RiskFreeRate:    0.05,
		TimeToMaturity:  1,
		Volatility:      0.2,
	}

	g, err := Greeks(p, Call)
	if err != nil {
		t.Fatalf("greeks err: %v", err)
	}

	bump := 1e-4
	up := p
	up.UnderlyingPrice += bump
	down := p
	down.UnderlyingPrice -= bump

	upPrice, _ := Vanilla(up, Call)
	downPrice, _ := Vanilla(down, Call)
	fd := (upPrice - downPrice) / (2 * bump)

	if !almostEqual(g.Delta, fd, 1e-6) {
		t.Fatalf("delta vs finite difference: analytic=%v fd=%v", g.Delta, fd)
	}
}
