// internal/workers/efficiency/evaluate-sales-efficiency/handler_test.go
package evaluatesalesefficiency

import (
	"context"
	"testing"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/common/errors"
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
			name:   "default sales-led company",
			mutate: func(*models.CompanyMetrics) {},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, 15.0, out.CACPayback)
				assert.True(t, out.CACPaybackAvailable)
				assert.Equal(t, 4.0, out.LTVToCAC)
				assert.Equal(t, 1, out.RowsAhead)
				assert.Len(t, out.Efficiency.Comparison, 5)
			},
		},
		{
			name: "product-led tiers",
			mutate: func(m *models.CompanyMetrics) {
				m.GrowthMotion = models.MotionProductLed
			},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, 5.2, out.LTVToCAC)
				assert.Equal(t, models.Tier{Top: 8, Median: 5, Bottom: 3}, out.Efficiency.LTVToCACTier)
			},
		},
		{
			name: "zero magic number has no payback",
			mutate: func(m *models.CompanyMetrics) {
				m.MagicNumber = 0
			},
			validateOutput: func(t *testing.T, out *Output) {
				assert.False(t, out.CACPaybackAvailable)
				assert.Equal(t, 0.0, out.CACPayback)
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

func TestHandler_Execute_MissingCompany(t *testing.T) {
	h := NewHandler(LoadConfig(), benchmark.NewEngine(), logger.NewNoOpLogger())
	_, err := h.execute(context.Background(), &Input{})
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.Normalize(err).Code)
}
