package models

import (
	"errors"
	"fmt"
	"math"
)

// OptionType selects the payoff direction of a contract.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// ExerciseStyle selects when a contract may be exercised.
type ExerciseStyle string

const (
	European ExerciseStyle = "european"
	American ExerciseStyle = "american"
)

var (
	// ErrInvalidParameter is returned when a market or contract parameter
	// is outside its valid domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidSampleCount is returned when a step or sample count is
	// non-positive.
	ErrInvalidSampleCount = errors.New("invalid sample count")
)

// PricingParams holds the flat market and contract inputs shared by every
// pricer. All pricers are pure functions over these values.
type PricingParams struct {
	UnderlyingPrice float64 // S
	Strike          float64 // X
	RiskFreeRate    float64 // r, annualized
	TimeToMaturity  float64 // T, in years
	Volatility      float64 // sigma, annualized
	DividendYield   float64 // q, continuous
}

func (p PricingParams) Validate() error {
	if p.UnderlyingPrice <= 0 {
		return fmt.Errorf("%w: underlying price must be positive, got %g", ErrInvalidParameter, p.UnderlyingPrice)
	}
	if p.Strike <= 0 {
		return fmt.Errorf("%w: strike must be positive, got %g", ErrInvalidParameter, p.Strike)
	}
	if p.TimeToMaturity <= 0 {
		return fmt.Errorf("%w: time to maturity must be positive, got %g", ErrInvalidParameter, p.TimeToMaturity)
	}
	if p.Volatility <= 0 {
		return fmt.Errorf("%w: volatility must be positive, got %g", ErrInvalidParameter, p.Volatility)
	}
	return nil
}

// Payoff returns the exercise value of the contract at the given spot.
func (t OptionType) Payoff(spot, strike float64) float64 {
	if t == Call {
		return math.Max(spot-strike, 0)
	}
	return math.Max(strike-spot, 0)
}
