// internal/workers/infrastructure/validate-company-metrics/handler_test.go
package validatecompanymetrics

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"testing"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/common/validation"
	"saas-benchmarks/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	reg, err := registry.LoadRegistry(filepath.Join("..", "..", "..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)
	v, err := validation.NewValidator(reg)
	require.NoError(t, err)
	return NewHandler(LoadConfig(), v, benchmark.NewEngine(), logger.NewTestLogger(t))
}

func validCompany() map[string]interface{} {
	return map[string]interface{}{
		"arrScale":     "$10M-$25M",
		"arrGrowth":    80,
		"netRetention": 110,
		"fcfMargin":    -20,
		"magicNumber":  0.8,
		"grossMargin":  75,
		"churnRate":    10,
		"runway":       24,
		"growthMotion": "Sales-led Growth",
		"industry":     "all",
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name           string
		mutate         func(c map[string]interface{})
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:   "valid company",
			mutate: func(map[string]interface{}) {},
			validateOutput: func(t *testing.T, out *Output) {
				assert.True(t, out.Valid)
				assert.Empty(t, out.Violations)
				assert.Equal(t, "$10M-$25M", out.Bucket)
				assert.Empty(t, out.Warnings)
			},
		},
		{
			name: "string where number expected",
			mutate: func(c map[string]interface{}) {
				c["arrGrowth"] = "eighty"
			},
			validateOutput: func(t *testing.T, out *Output) {
				assert.False(t, out.Valid)
				require.Len(t, out.Violations, 1)
				assert.Equal(t, "company.arrGrowth", out.Violations[0].Field)
				assert.Equal(t, "INVALID_TYPE", out.Violations[0].Code)
				assert.Empty(t, out.Bucket)
			},
		},
		{
			name: "missing required field",
			mutate: func(c map[string]interface{}) {
				delete(c, "netRetention")
			},
			validateOutput: func(t *testing.T, out *Output) {
				assert.False(t, out.Valid)
				require.Len(t, out.Violations, 1)
				assert.Equal(t, "REQUIRED", out.Violations[0].Code)
			},
		},
		{
			name: "unknown bucket and motion pass with warnings",
			mutate: func(c map[string]interface{}) {
				c["arrScale"] = "$1B+"
				c["growthMotion"] = "Community-led"
			},
			validateOutput: func(t *testing.T, out *Output) {
				assert.True(t, out.Valid)
				assert.Equal(t, "$10M-$25M", out.Bucket)
				assert.Contains(t, out.Warnings, `arrScale "$1B+" is not a known bucket; using $10M-$25M`)
				assert.Contains(t, out.Warnings, `growthMotion "Community-led" is not a known motion; using Sales-led Growth tables`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			company := validCompany()
			tt.mutate(company)

			out, err := h.Execute(context.Background(), &Input{Company: company})
			require.NoError(t, err)
			tt.validateOutput(t, out)
		})
	}
}

func TestHandler_Execute_StrictFails(t *testing.T) {
	h := newTestHandler(t)
	company := validCompany()
	company["grossMargin"] = 180

	_, err := h.execute(context.Background(), &Input{Company: company, Strict: true})
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.True(t, stderrors.As(err, &stdErr))
	assert.Equal(t, errors.ErrCodeSchemaValidationFailed, stdErr.Code)
	violations, ok := stdErr.Metadata["violations"].([]string)
	require.True(t, ok)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "company.grossMargin")
}

func TestHandler_Execute_UnknownTarget(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.execute(context.Background(), &Input{Company: validCompany(), TargetTaskType: "nope"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.Normalize(err).Code)
}

func TestHandler_Execute_OtherTarget(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.execute(context.Background(), &Input{Company: validCompany(), TargetTaskType: "calculate-ipo-readiness"})
	require.NoError(t, err)
	assert.True(t, out.Valid)
	assert.Equal(t, "calculate-ipo-readiness", out.TargetTaskType)
}
