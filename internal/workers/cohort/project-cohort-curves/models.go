// internal/workers/cohort/project-cohort-curves/models.go
package projectcohortcurves

import (
	"saas-benchmarks/internal/benchmark/series"
	"saas-benchmarks/internal/models"
)

type Input struct {
	Company *models.CompanyMetrics `json:"company"`
}

// Output carries the full curves plus the end-of-horizon values a gateway
// can branch on.
type Output struct {
	FinalRetention          float64               `json:"finalRetention"`
	FinalNetDollarRetention float64               `json:"finalNetDollarRetention"`
	LTV                     float64               `json:"ltv"`
	BenchmarkLTV            float64               `json:"benchmarkLtv"`
	BeatsBenchmark          bool                  `json:"beatsBenchmark"`
	Cohort                  series.CohortAnalysis `json:"cohort"`
}
