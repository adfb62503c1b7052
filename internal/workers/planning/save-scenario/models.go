// internal/workers/planning/save-scenario/models.go
package savescenario

import (
	"time"

	"saas-benchmarks/internal/models"
)

// Input is a named plan. When Scenario is omitted and Name matches a preset,
// the preset applied to Baseline is saved.
type Input struct {
	Name      string                 `json:"name"`
	Baseline  *models.CompanyMetrics `json:"baseline"`
	Scenario  *models.CompanyMetrics `json:"scenario,omitempty"`
	CreatedBy string                 `json:"createdBy,omitempty"`
}

type Output struct {
	ScenarioID       string    `json:"scenarioId"`
	Name             string    `json:"name"`
	CreatedAt        time.Time `json:"createdAt"`
	ARRDifference    float64   `json:"arrDifference"`
	ARRChangePercent float64   `json:"arrChangePercent"`
}
