// internal/common/validation/schema_test.go
package validation

import (
	"path/filepath"
	"testing"

	"saas-benchmarks/internal/models"
	"saas-benchmarks/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadValidator(t *testing.T) *Validator {
	t.Helper()
	reg, err := registry.LoadRegistry(filepath.Join("..", "..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)
	v, err := NewValidator(reg)
	require.NoError(t, err)
	return v
}

func TestValidator_RegistrySchemas(t *testing.T) {
	v := loadValidator(t)

	for _, taskType := range []string{"compare-company-metrics", "save-scenario", "notify-report-ready"} {
		assert.True(t, v.Has(taskType), taskType)
	}
	assert.False(t, v.Has("unknown-task"))
}

func TestValidator_Validate(t *testing.T) {
	v := loadValidator(t)

	tests := []struct {
		name       string
		taskType   string
		document   interface{}
		wantValid  bool
		wantFields []string
	}{
		{
			name:      "default company",
			taskType:  "compare-company-metrics",
			document:  map[string]interface{}{"company": models.DefaultCompanyMetrics()},
			wantValid: true,
		},
		{
			name:       "missing company",
			taskType:   "compare-company-metrics",
			document:   map[string]interface{}{},
			wantFields: []string{"(root)"},
		},
		{
			name:     "out of range percentages",
			taskType: "calculate-resilience-score",
			document: map[string]interface{}{"company": map[string]interface{}{
				"arrScale": "$10M-$25M", "arrGrowth": 80, "netRetention": 110, "fcfMargin": -20,
				"magicNumber": 0.8, "growthMotion": "Hybrid", "grossMargin": 140, "churnRate": -3,
			}},
			wantFields: []string{"company.churnRate", "company.grossMargin"},
		},
		{
			name:      "saved scenario reference alone",
			taskType:  "project-scenarios",
			document:  map[string]interface{}{"savedScenarioId": "s-1"},
			wantValid: true,
		},
		{
			name:       "empty scenario name",
			taskType:   "save-scenario",
			document:   map[string]interface{}{"name": "", "baseline": models.DefaultCompanyMetrics(), "scenario": models.DefaultCompanyMetrics()},
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.Validate(tt.taskType, tt.document)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)

			var fields []string
			for _, e := range result.Errors {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
			assert.Len(t, result.Messages(), len(result.Errors))
		})
	}
}

func TestValidator_UnknownTaskType(t *testing.T) {
	v := loadValidator(t)
	_, err := v.Validate("nope", map[string]interface{}{})
	assert.ErrorContains(t, err, "no input schema registered")
}

func TestNewValidator_BadSchema(t *testing.T) {
	reg := &registry.ActivityRegistry{Activities: []registry.Activity{{
		TaskType:    "broken",
		InputSchema: map[string]interface{}{"type": "decimal"},
	}}}
	_, err := NewValidator(reg)
	assert.ErrorContains(t, err, "broken")
}
