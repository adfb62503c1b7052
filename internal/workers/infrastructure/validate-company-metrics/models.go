// internal/workers/infrastructure/validate-company-metrics/models.go
package validatecompanymetrics

import "saas-benchmarks/internal/common/validation"

// Input keeps the company as a raw map so type mismatches surface as schema
// violations instead of decode errors.
type Input struct {
	Company        map[string]interface{} `json:"company"`
	TargetTaskType string                 `json:"targetTaskType,omitempty"`
	Strict         bool                   `json:"strict,omitempty"`
}

type Output struct {
	Valid          bool                         `json:"valid"`
	TargetTaskType string                       `json:"targetTaskType"`
	Violations     []validation.ValidationError `json:"violations"`
	Bucket         string                       `json:"bucket,omitempty"`
	Warnings       []string                     `json:"warnings"`
}
