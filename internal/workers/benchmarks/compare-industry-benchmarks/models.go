// internal/workers/benchmarks/compare-industry-benchmarks/models.go
package compareindustrybenchmarks

import (
	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/models"
)

// Input.Industry overrides Company.Industry when set.
type Input struct {
	Company  *models.CompanyMetrics `json:"company"`
	Industry string                 `json:"industry,omitempty"`
}

type Output struct {
	Industry     string                       `json:"industry"`
	IndustryName string                       `json:"industryName"`
	Strongest    string                       `json:"strongest,omitempty"`
	Weakest      string                       `json:"weakest,omitempty"`
	Comparison   benchmark.IndustryComparison `json:"comparison"`
}
