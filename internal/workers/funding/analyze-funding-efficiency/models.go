// internal/workers/funding/analyze-funding-efficiency/models.go
package analyzefundingefficiency

import (
	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/models"
)

type Input struct {
	Funding     *models.FundingProfile `json:"funding"`
	CurrentYear int                    `json:"currentYear,omitempty"`
}

// Output repeats the headline fields next to the full analysis so gateway
// conditions can read them without a path expression.
type Output struct {
	Stage             string                    `json:"stage"`
	CapitalEfficiency float64                   `json:"capitalEfficiency"`
	Rating            string                    `json:"rating"`
	CurrentYear       int                       `json:"currentYear"`
	Analysis          benchmark.FundingAnalysis `json:"fundingAnalysis"`
}
