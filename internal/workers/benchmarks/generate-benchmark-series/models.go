// internal/workers/benchmarks/generate-benchmark-series/models.go
package generatebenchmarkseries

import (
	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/benchmark/series"
	"saas-benchmarks/internal/models"
)

const (
	SeriesQuarterly = "quarterly"
	SeriesCohort    = "cohort"
	SeriesValuation = "valuation"
	SeriesFunnel    = "funnel"
)

type Input struct {
	Company *models.CompanyMetrics `json:"company"`
	Series  []string               `json:"series,omitempty"`
}

type Output struct {
	Bucket    string                     `json:"bucket"`
	Generated []string                   `json:"generated"`
	Quarterly *benchmark.QuarterlySeries `json:"quarterly,omitempty"`
	Cohort    *series.CohortAnalysis     `json:"cohort,omitempty"`
	Valuation []series.ValuationPoint    `json:"valuation,omitempty"`
	Funnel    []series.FunnelStep        `json:"funnel,omitempty"`
}
