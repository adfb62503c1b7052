// internal/common/errors/errors_test.go
package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name          string
		err           *StandardError
		expectedCode  string
		expectedRetry int
	}{
		{
			name:          "business error never retries",
			err:           NewUnknownScenarioError("Moonshot"),
			expectedCode:  "UNKNOWN_SCENARIO",
			expectedRetry: 0,
		},
		{
			name:          "missing saved scenario never retries",
			err:           NewScenarioNotFoundError("s-1"),
			expectedCode:  "SCENARIO_NOT_FOUND",
			expectedRetry: 0,
		},
		{
			name:          "report store failure retries",
			err:           NewReportStoreFailedError(stderrors.New("connection refused")),
			expectedCode:  "REPORT_STORE_FAILED",
			expectedRetry: 3,
		},
		{
			name:          "index failure retries twice",
			err:           NewReportIndexFailedError("benchmark-reports", stderrors.New("503")),
			expectedCode:  "REPORT_INDEX_FAILED",
			expectedRetry: 2,
		},
		{
			name:          "retryable code marked non-retryable",
			err:           &StandardError{Code: ErrCodeScenarioSaveFailed, Message: "x"},
			expectedCode:  "SCENARIO_SAVE_FAILED",
			expectedRetry: 0,
		},
		{
			name:          "unmapped code passes through",
			err:           &StandardError{Code: "SOMETHING_ELSE", Message: "x"},
			expectedCode:  "SOMETHING_ELSE",
			expectedRetry: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmn := ConvertToBPMNError(tt.err)
			assert.Equal(t, tt.expectedCode, bpmn.Code)
			assert.Equal(t, tt.expectedRetry, bpmn.Retries)
			assert.Equal(t, string(tt.err.Code), bpmn.ErrorVariables["originalErrorCode"])
		})
	}
}

func TestSchemaValidationError_CarriesViolations(t *testing.T) {
	err := NewSchemaValidationError("compare-company-metrics", []string{"arrGrowth is required", "runway must be a number"})

	assert.Contains(t, err.Details, "arrGrowth is required; runway must be a number")
	assert.False(t, err.Retryable)

	vars := ConvertToBPMNError(err).ToErrorVariables()
	assert.Equal(t, "SCHEMA_VALIDATION_FAILED", vars["errorCode"])
	assert.Equal(t, []string{"arrGrowth is required", "runway must be a number"}, vars["violations"])
}

func TestNormalize(t *testing.T) {
	wrapped := fmt.Errorf("publish: %w", NewReportNotFoundError("r-1"))
	got := Normalize(wrapped)
	assert.Equal(t, ErrCodeReportNotFound, got.Code)

	plain := Normalize(stderrors.New("boom"))
	assert.Equal(t, ErrCodeInternal, plain.Code)
	assert.Equal(t, "boom", plain.Details)
}

func TestStandardError_Unwrap(t *testing.T) {
	cause := stderrors.New("dial tcp: refused")
	err := NewDatabaseConnectionError(cause)

	require.ErrorIs(t, err, cause)
	assert.True(t, err.Retryable)
}

func TestGetErrorCategory(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrCodeScenarioSaveFailed:     "SCENARIO",
		ErrCodeReportIndexFailed:      "REPORT",
		ErrCodeDatabaseConnection:     "DATABASE",
		ErrCodeNotificationSendFailed: "NOTIFICATION",
		ErrCodeSchemaValidationFailed: "VALIDATION",
		ErrCodeInvalidInput:           "VALIDATION",
		ErrCodeInternal:               "OTHER",
	}
	for code, want := range cases {
		assert.Equal(t, want, GetErrorCategory(code), string(code))
	}
	assert.True(t, IsRetryableErrorCode(ErrCodeNotificationSendFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeInvalidInput))
}
