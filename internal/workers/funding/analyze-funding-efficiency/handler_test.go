// internal/workers/funding/analyze-funding-efficiency/handler_test.go
package analyzefundingefficiency

import (
	"context"
	"testing"
	"time"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
		Now:     func() time.Time { return time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC) },
	}
}

type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Debug(msg string, fields map[string]interface{}) {
	tl.t.Logf("DEBUG: %s %v", msg, fields)
}

func (tl *testLogger) Info(msg string, fields map[string]interface{}) {
	tl.t.Logf("INFO: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return tl
}

func (tl *testLogger) WithError(err error) logger.Logger {
	return tl.WithFields(map[string]interface{}{"error": err})
}

func (tl *testLogger) With(fields map[string]interface{}) logger.Logger {
	return tl
}

func newTestLogger(t *testing.T) logger.Logger {
	return &testLogger{t: t}
}

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(createTestConfig(), benchmark.NewEngine(), newTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	efficient := models.FundingProfile{
		TotalCapitalRaised: 10,
		CurrentARR:         8,
		TotalARR:           12,
		FoundingYear:       2019,
		FirstFundingYear:   2022,
		Rounds:             []models.FundingRound{{Year: 2022, AmountRaised: 10, ARRAtTime: 1, Valuation: 30}},
	}

	tests := []struct {
		name           string
		input          *Input
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:  "default profile uses configured clock",
			input: &Input{Funding: ptr(models.DefaultFundingProfile())},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, 2025, out.CurrentYear)
				assert.Equal(t, "$10M-$50M", out.Stage)
				assert.Equal(t, 0.2, out.CapitalEfficiency)
				assert.Equal(t, "Below Average", out.Rating)
				assert.Len(t, out.Analysis.Improvements, 3)
				assert.Len(t, out.Analysis.RoundMultiples, 3)
			},
		},
		{
			name:  "efficient company with explicit year",
			input: &Input{Funding: &efficient, CurrentYear: 2025},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, "$5M-$10M", out.Stage)
				assert.Equal(t, "Exceptional", out.Rating)
				assert.Contains(t, out.Analysis.Strengths, "Impressive ARR growth rate of 100.0% since first funding")
			},
		},
		{
			name: "zero capital does not divide by zero",
			input: &Input{Funding: &models.FundingProfile{
				CurrentARR: 3, TotalARR: 3, FoundingYear: 2024, FirstFundingYear: 2024,
			}, CurrentYear: 2025},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, 3.0, out.CapitalEfficiency)
				assert.Empty(t, out.Analysis.RoundMultiples)
			},
		},
	}

	h := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), tt.input)
			require.NoError(t, err)
			tt.validateOutput(t, out)
		})
	}
}

func TestHandler_Execute_MissingFunding(t *testing.T) {
	_, err := newTestHandler(t).execute(context.Background(), &Input{})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.Normalize(err).Code)
}

func ptr[T any](v T) *T { return &v }
