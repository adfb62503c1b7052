// internal/workers/scoring/calculate-ipo-readiness/models.go
package calculateiporeadiness

import (
	"saas-benchmarks/internal/benchmark/calculator"
	"saas-benchmarks/internal/models"
)

type Input struct {
	CompanyID string                 `json:"companyId,omitempty"`
	Company   *models.CompanyMetrics `json:"company"`
}

type Output struct {
	IPOReadinessScore int                   `json:"ipoReadinessScore"`
	ReadinessLabel    string                `json:"readinessLabel"`
	ScoreBreakdown    []calculator.SubScore `json:"scoreBreakdown"`
	Gaps              []Gap                 `json:"gaps"`
}

// Gap is a sub-score still short of its target.
type Gap struct {
	Metric string  `json:"metric"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Target float64 `json:"target"`
}
