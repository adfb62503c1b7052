// internal/benchmark/rating/highlights.go
package rating

import (
	"fmt"

	"saas-benchmarks/internal/benchmark/calculator"
	"saas-benchmarks/internal/models"
)

const (
	strongCAGR = 80.0
	weakCAGR   = 50.0
)

// FundingTiers are the stage medians a funding profile is compared against.
type FundingTiers struct {
	CapitalEfficiency     models.Tier
	ARRGenerationMultiple models.Tier
	RaisedPerARR          models.Tier
}

// FundingHighlights lists strengths (at or better than median) and areas
// for improvement for a funding analysis. Raised-per-ARR is lower-is-better.
func FundingHighlights(m calculator.FundingMetrics, tiers FundingTiers) (strengths, improvements []string) {
	strengths, improvements = []string{}, []string{}

	if m.CapitalEfficiencyRatio >= tiers.CapitalEfficiency.Median {
		strengths = append(strengths, "Strong capital efficiency ratio compared to peers")
	} else {
		improvements = append(improvements, "Capital efficiency ratio below industry median for your scale")
	}

	if m.ARRGenerationMultiple >= tiers.ARRGenerationMultiple.Median {
		strengths = append(strengths, "Effective conversion of capital into ARR over time")
	} else {
		improvements = append(improvements, "Total ARR generation relative to capital is below benchmarks")
	}

	if m.AmountRaisedPerARR <= tiers.RaisedPerARR.Median {
		strengths = append(strengths, "Efficient use of capital with lower dollars raised per ARR dollar")
	} else {
		improvements = append(improvements, "Higher than median capital requirements per dollar of ARR")
	}

	if m.CAGR >= strongCAGR {
		strengths = append(strengths, fmt.Sprintf("Impressive ARR growth rate of %.1f%% since first funding", m.CAGR))
	}
	if m.CAGR < weakCAGR {
		improvements = append(improvements, fmt.Sprintf("ARR growth rate of %.1f%% indicates potential for acceleration", m.CAGR))
	}

	return strengths, improvements
}

// FundingRecommendations are the standing strategy suggestions shown with
// every funding analysis.
func FundingRecommendations() []string {
	return []string{
		"Focus on improving your net retention rate to generate more ARR from existing customers with minimal additional capital.",
		"Analyze your customer acquisition costs across different channels to identify the most capital-efficient growth avenues.",
		"Consider optimizing your pricing strategy to improve your ARR to capital ratio without significant additional investment.",
		"Benchmark your operational expenses against peers to identify potential areas for efficiency improvements.",
	}
}
