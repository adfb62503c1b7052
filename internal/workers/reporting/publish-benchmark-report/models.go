// internal/workers/reporting/publish-benchmark-report/models.go
package publishbenchmarkreport

import (
	"time"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/models"
)

type Input struct {
	CompanyName string                 `json:"companyName,omitempty"`
	Company     *models.CompanyMetrics `json:"company"`
	Funding     *models.FundingProfile `json:"funding,omitempty"`
	CurrentYear int                    `json:"currentYear,omitempty"`
	Seed        *uint64                `json:"seed,omitempty"`
}

type Output struct {
	ReportID          string    `json:"reportId"`
	ExpiresAt         time.Time `json:"expiresAt"`
	Bucket            string    `json:"bucket"`
	IPOReadinessScore int       `json:"ipoReadinessScore"`
	ResilienceScore   int       `json:"resilienceScore"`
	Indexed           bool      `json:"indexed"`
}

// StoredReport is the value kept in the report store under the report ID.
type StoredReport struct {
	Envelope models.ReportEnvelope `json:"envelope"`
	Report   benchmark.Report      `json:"report"`
}
