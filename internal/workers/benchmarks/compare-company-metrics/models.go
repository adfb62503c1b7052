// internal/workers/benchmarks/compare-company-metrics/models.go
package comparecompanymetrics

import (
	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/models"
)

type Input struct {
	Company *models.CompanyMetrics `json:"company"`
}

type Output struct {
	Bucket          string               `json:"bucket"`
	Industry        string               `json:"industry"`
	AtOrAboveMedian int                  `json:"atOrAboveMedian"`
	BelowMedian     int                  `json:"belowMedian"`
	HasFallbacks    bool                 `json:"hasFallbacks"`
	Comparison      benchmark.Comparison `json:"comparison"`
}
