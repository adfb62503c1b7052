// internal/benchmark/calculator/funding.go
package calculator

import (
	"math"

	"saas-benchmarks/internal/models"
)

const (
	minCapital       = 1.0
	minFirstRoundARR = 0.1
)

// FundingMetrics are the capital-efficiency ratios derived from a funding
// profile. Monetary inputs share one unit (usually $M), so ratios are
// unit-free.
type FundingMetrics struct {
	CapitalEfficiencyRatio float64 `json:"capitalEfficiencyRatio"`
	ARRGenerationMultiple  float64 `json:"arrGenerationMultiple"`
	YearsFromFounding      int     `json:"yearsFromFounding"`
	YearsFromFunding       int     `json:"yearsFromFunding"`
	CAGR                   float64 `json:"cagr"`
	AmountRaisedPerARR     float64 `json:"amountRaisedPerArr"`
}

// RoundMultiple is the valuation multiple at one funding round.
type RoundMultiple struct {
	Year       int     `json:"year"`
	Valuation  float64 `json:"valuation"`
	ARR        float64 `json:"arr"`
	Multiple   float64 `json:"multiple"`
	Computable bool    `json:"computable"`
}

// Funding derives every funding metric. currentYear is supplied by the caller;
// a zero founding or first-funding year counts as currentYear.
func Funding(p models.FundingProfile, currentYear int) FundingMetrics {
	foundingYear := p.FoundingYear
	if foundingYear == 0 {
		foundingYear = currentYear
	}
	firstFundingYear := p.FirstFundingYear
	if firstFundingYear == 0 {
		firstFundingYear = currentYear
	}

	yearsFromFunding := currentYear - firstFundingYear

	return FundingMetrics{
		CapitalEfficiencyRatio: CapitalEfficiency(p.CurrentARR, p.TotalCapitalRaised),
		ARRGenerationMultiple:  ARRGenerationMultiple(p.TotalARR, p.TotalCapitalRaised),
		YearsFromFounding:      currentYear - foundingYear,
		YearsFromFunding:       yearsFromFunding,
		CAGR:                   CAGR(p.CurrentARR, FirstRoundARR(p.Rounds), yearsFromFunding),
		AmountRaisedPerARR:     RaisedPerARR(p.TotalCapitalRaised, p.CurrentARR),
	}
}

// CapitalEfficiency is current ARR per dollar raised.
func CapitalEfficiency(currentARR, capital float64) float64 {
	return finite(currentARR/math.Max(capital, minCapital), 0)
}

// ARRGenerationMultiple is total ARR generated per dollar raised.
func ARRGenerationMultiple(totalARR, capital float64) float64 {
	return finite(totalARR/math.Max(capital, minCapital), 0)
}

// RaisedPerARR is dollars raised per dollar of current ARR. With no ARR it is
// the capital raised.
func RaisedPerARR(capital, currentARR float64) float64 {
	if currentARR > 0 {
		return finite(capital/currentARR, capital)
	}
	return capital
}

// FirstRoundARR is the ARR at the first listed round, or the minimum when
// there are no rounds or the first one reported none.
func FirstRoundARR(rounds []models.FundingRound) float64 {
	if len(rounds) == 0 || rounds[0].ARRAtTime <= 0 {
		return minFirstRoundARR
	}
	return rounds[0].ARRAtTime
}

// CAGR returns the compound annual ARR growth since first funding, in percent.
// It is 0 when no full year has passed.
func CAGR(currentARR, firstRoundARR float64, years int) float64 {
	if years <= 0 {
		return 0
	}
	ratio := math.Max(currentARR/math.Max(firstRoundARR, minFirstRoundARR), 0)
	return finite((math.Pow(ratio, 1/float64(years))-1)*100, 0)
}

// RoundMultiples computes valuation / ARR for each round in input order.
// Rounds without ARR are reported with Computable=false and a zero multiple.
func RoundMultiples(rounds []models.FundingRound) []RoundMultiple {
	out := make([]RoundMultiple, 0, len(rounds))
	for _, r := range rounds {
		rm := RoundMultiple{Year: r.Year, Valuation: r.Valuation, ARR: r.ARRAtTime}
		if r.ARRAtTime > 0 {
			rm.Multiple = finite(r.Valuation/r.ARRAtTime, 0)
			rm.Computable = true
		}
		out = append(out, rm)
	}
	return out
}
