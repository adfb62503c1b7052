// internal/workers/scoring/calculate-resilience-score/models.go
package calculateresiliencescore

import (
	"saas-benchmarks/internal/benchmark/calculator"
	"saas-benchmarks/internal/models"
)

type Input struct {
	CompanyID string                 `json:"companyId,omitempty"`
	Company   *models.CompanyMetrics `json:"company"`
}

type Output struct {
	ResilienceScore int                   `json:"resilienceScore"`
	Category        string                `json:"category"`
	ScoreBreakdown  []calculator.SubScore `json:"scoreBreakdown"`
	// WeakestFactor is the weighted factor with the lowest score.
	WeakestFactor string `json:"weakestFactor"`
}
