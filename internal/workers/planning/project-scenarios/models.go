// internal/workers/planning/project-scenarios/models.go
package projectscenarios

import (
	"saas-benchmarks/internal/benchmark/series"
	"saas-benchmarks/internal/models"
)

// Input selects what to compare against the baseline. A saved scenario,
// by ID or else by name, carries its own baseline and ignores Company.
// Otherwise CustomScenario wins over ScenarioName; with neither set every
// preset is compared.
type Input struct {
	Company           *models.CompanyMetrics `json:"company,omitempty"`
	ScenarioName      string                 `json:"scenarioName,omitempty"`
	CustomScenario    *series.Preset         `json:"customScenario,omitempty"`
	SavedScenarioID   string                 `json:"savedScenarioId,omitempty"`
	SavedScenarioName string                 `json:"savedScenarioName,omitempty"`
}

type Output struct {
	Comparisons     []series.ScenarioComparison `json:"comparisons"`
	BestScenario    string                      `json:"bestScenario"`
	BaselineARR     float64                     `json:"baselineArr"`
	SavedScenarioID string                      `json:"savedScenarioId,omitempty"`
}
