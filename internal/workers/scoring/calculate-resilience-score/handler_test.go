// internal/workers/scoring/calculate-resilience-score/handler_test.go
package calculateresiliencescore

import (
	"context"
	"testing"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/benchmark/calculator"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(m *models.CompanyMetrics)
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:   "default company",
			mutate: func(*models.CompanyMetrics) {},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, 95, out.ResilienceScore)
				assert.Equal(t, "Highly Resilient", out.Category)
				assert.Len(t, out.ScoreBreakdown, 7)
				assert.Equal(t, "bottomlineAttainment", out.WeakestFactor)
			},
		},
		{
			name: "short runway and slow growth",
			mutate: func(m *models.CompanyMetrics) {
				m.ARRGrowth = 15
				m.Runway = 6
				m.ToplineAttainment = 70
				m.BottomlineAttainment = 60
			},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Less(t, out.ResilienceScore, 55)
				assert.Equal(t, "Needs Improvement", out.Category)
				assert.Equal(t, "netNewArr", out.WeakestFactor)
			},
		},
		{
			name: "attainment above plan is clamped",
			mutate: func(m *models.CompanyMetrics) {
				m.ToplineAttainment = 250
				m.BottomlineAttainment = 250
			},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, 100, out.ResilienceScore)
			},
		},
	}

	h := NewHandler(LoadConfig(), benchmark.NewEngine(), logger.NewTestLogger(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := models.DefaultCompanyMetrics()
			tt.mutate(&m)

			out, err := h.Execute(context.Background(), &Input{Company: &m})
			require.NoError(t, err)
			tt.validateOutput(t, out)
		})
	}
}

func TestWeakestFactor_SkipsUnweighted(t *testing.T) {
	got := weakestFactor([]calculator.SubScore{
		{Metric: "a", Score: 50, Weight: 0.5},
		{Metric: "b", Score: 10},
		{Metric: "c", Score: 40, Weight: 0.5},
	})
	assert.Equal(t, "c", got)
	assert.Empty(t, weakestFactor(nil))
}
