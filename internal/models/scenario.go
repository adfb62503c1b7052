// internal/models/scenario.go
package models

import "time"

// SavedScenario is a named what-if plan persisted for later comparison.
type SavedScenario struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Baseline  CompanyMetrics `json:"baseline"`
	Scenario  CompanyMetrics `json:"scenario"`
	CreatedBy string         `json:"createdBy,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ReportEnvelope wraps a published report for hand-off between process
// steps.
type ReportEnvelope struct {
	ReportID    string    `json:"reportId"`
	CompanyName string    `json:"companyName,omitempty"`
	Bucket      string    `json:"bucket"`
	Industry    string    `json:"industry"`
	IPOScore    int       `json:"ipoReadinessScore"`
	Resilience  int       `json:"resilienceScore"`
	Fallbacks   []string  `json:"fallbacks,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
