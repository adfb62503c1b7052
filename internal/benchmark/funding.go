// internal/benchmark/funding.go
package benchmark

import (
	"saas-benchmarks/internal/benchmark/bucket"
	"saas-benchmarks/internal/benchmark/calculator"
	"saas-benchmarks/internal/benchmark/rating"
	"saas-benchmarks/internal/benchmark/store"
	"saas-benchmarks/internal/models"
)

// FundingAnalysis is the funding-efficiency view of a capital history.
type FundingAnalysis struct {
	Stage           bucket.Stage               `json:"stage"`
	Metrics         calculator.FundingMetrics  `json:"metrics"`
	Results         []MetricResult             `json:"results"`
	Assessment      models.Assessment          `json:"assessment"`
	Strengths       []string                   `json:"strengths"`
	Improvements    []string                   `json:"improvements"`
	Recommendations []string                   `json:"recommendations"`
	RoundMultiples  []calculator.RoundMultiple `json:"roundMultiples"`
}

// AnalyzeFunding derives the funding metrics for currentYear and rates them
// against the stage implied by current ARR.
func (e *Engine) AnalyzeFunding(p models.FundingProfile, currentYear int) FundingAnalysis {
	fm := calculator.Funding(p, currentYear)
	stage := bucket.StageFromARRMillions(p.CurrentARR)

	capEff := e.store.StageTier(store.MetricCapitalEfficiency, stage)
	arrGen := e.store.StageTier(store.MetricARRGenerationMultiple, stage)
	raised := e.store.StageTier(store.MetricRaisedPerARR, stage)

	strengths, improvements := rating.FundingHighlights(fm, rating.FundingTiers{
		CapitalEfficiency:     capEff.Tier,
		ARRGenerationMultiple: arrGen.Tier,
		RaisedPerARR:          raised.Tier,
	})

	return FundingAnalysis{
		Stage:   stage,
		Metrics: fm,
		Results: []MetricResult{
			result(store.MetricCapitalEfficiency, fm.CapitalEfficiencyRatio, capEff),
			result(store.MetricARRGenerationMultiple, fm.ARRGenerationMultiple, arrGen),
			result(store.MetricRaisedPerARR, fm.AmountRaisedPerARR, raised),
		},
		Assessment:      rating.Assess(string(store.MetricCapitalEfficiency), fm.CapitalEfficiencyRatio, capEff.Tier, capEff.Direction),
		Strengths:       strengths,
		Improvements:    improvements,
		Recommendations: rating.FundingRecommendations(),
		RoundMultiples:  calculator.RoundMultiples(p.Rounds),
	}
}
