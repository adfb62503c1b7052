// internal/workers/efficiency/evaluate-sales-efficiency/models.go
package evaluatesalesefficiency

import (
	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/models"
)

type Input struct {
	Company *models.CompanyMetrics `json:"company"`
}

type Output struct {
	CACPayback          float64                   `json:"cacPayback"`
	CACPaybackAvailable bool                      `json:"cacPaybackAvailable"`
	LTVToCAC            float64                   `json:"ltvToCac"`
	RowsAhead           int                       `json:"rowsAhead"`
	Efficiency          benchmark.SalesEfficiency `json:"salesEfficiency"`
}
