// internal/common/errors/errors.go
// Package errors provides the structured errors workers raise and their
// mapping to BPMN error codes.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidInput            ErrorCode = "INVALID_INPUT"
	ErrCodeSchemaValidationFailed  ErrorCode = "SCHEMA_VALIDATION_FAILED"
	ErrCodeRegistryLoadFailed      ErrorCode = "REGISTRY_LOAD_FAILED"
	ErrCodeUnknownScenario         ErrorCode = "UNKNOWN_SCENARIO"
	ErrCodeScenarioSaveFailed      ErrorCode = "SCENARIO_SAVE_FAILED"
	ErrCodeScenarioNotFound        ErrorCode = "SCENARIO_NOT_FOUND"
	ErrCodeDatabaseConnection      ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeReportStoreFailed       ErrorCode = "REPORT_STORE_FAILED"
	ErrCodeReportNotFound          ErrorCode = "REPORT_NOT_FOUND"
	ErrCodeReportIndexFailed       ErrorCode = "REPORT_INDEX_FAILED"
	ErrCodeNotificationSendFailed  ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeNotificationUnavailable ErrorCode = "NOTIFICATION_UNAVAILABLE"
	ErrCodeInternal                ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata returns e with key set in its metadata.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

func newError(code ErrorCode, message, details string, retryable bool, cause error) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewInvalidInputError reports job variables that do not decode or are
// missing a required field.
func NewInvalidInputError(details string) *StandardError {
	return newError(ErrCodeInvalidInput, "Invalid job input", details, false, nil)
}

// NewSchemaValidationError lists the schema violations of a payload.
func NewSchemaValidationError(taskType string, violations []string) *StandardError {
	return newError(ErrCodeSchemaValidationFailed, "Input does not match activity schema",
		fmt.Sprintf("taskType: %s, violations: %s", taskType, strings.Join(violations, "; ")), false, nil).
		WithMetadata("violations", violations)
}

func NewRegistryLoadError(path string, err error) *StandardError {
	return newError(ErrCodeRegistryLoadFailed, "Activity registry could not be loaded",
		fmt.Sprintf("path: %s, error: %v", path, err), true, err)
}

func NewUnknownScenarioError(name string) *StandardError {
	return newError(ErrCodeUnknownScenario, "Unknown scenario",
		fmt.Sprintf("scenario: %s", name), false, nil)
}

func NewScenarioSaveFailedError(err error) *StandardError {
	return newError(ErrCodeScenarioSaveFailed, "Scenario could not be saved", err.Error(), true, err)
}

// NewScenarioNotFoundError reports a saved scenario lookup with no match.
func NewScenarioNotFoundError(ref string) *StandardError {
	return newError(ErrCodeScenarioNotFound, "Saved scenario not found",
		fmt.Sprintf("scenario: %s", ref), false, nil)
}

func NewDatabaseConnectionError(err error) *StandardError {
	return newError(ErrCodeDatabaseConnection, "Database connection error", err.Error(), true, err)
}

// NewReportStoreFailedError wraps a Redis failure while storing or reading a
// report.
func NewReportStoreFailedError(err error) *StandardError {
	return newError(ErrCodeReportStoreFailed, "Report store error", err.Error(), true, err)
}

// NewReportNotFoundError is raised when a report key has expired or never
// existed.
func NewReportNotFoundError(reportID string) *StandardError {
	return newError(ErrCodeReportNotFound, "Report not found or expired",
		fmt.Sprintf("reportId: %s", reportID), false, nil)
}

func NewReportIndexFailedError(index string, err error) *StandardError {
	return newError(ErrCodeReportIndexFailed, "Report could not be indexed",
		fmt.Sprintf("index: %s, error: %v", index, err), true, err)
}

func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeNotificationSendFailed, "Notification send failed",
		fmt.Sprintf("channel: %s, error: %v", channel, err), true, err)
}

// NewNotificationUnavailableError reports that no notification channel is
// configured.
func NewNotificationUnavailableError(details string) *StandardError {
	return newError(ErrCodeNotificationUnavailable, "No notification channel available", details, false, nil)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false, err)
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal codes to the codes the process models catch.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInvalidInput:            "INVALID_INPUT",
	ErrCodeSchemaValidationFailed:  "SCHEMA_VALIDATION_FAILED",
	ErrCodeRegistryLoadFailed:      "REGISTRY_LOAD_FAILED",
	ErrCodeUnknownScenario:         "UNKNOWN_SCENARIO",
	ErrCodeScenarioSaveFailed:      "SCENARIO_SAVE_FAILED",
	ErrCodeScenarioNotFound:        "SCENARIO_NOT_FOUND",
	ErrCodeDatabaseConnection:      "DATABASE_CONNECTION_FAILED",
	ErrCodeReportStoreFailed:       "REPORT_STORE_FAILED",
	ErrCodeReportNotFound:          "REPORT_NOT_FOUND",
	ErrCodeReportIndexFailed:       "REPORT_INDEX_FAILED",
	ErrCodeNotificationSendFailed:  "NOTIFICATION_SEND_FAILED",
	ErrCodeNotificationUnavailable: "NOTIFICATION_UNAVAILABLE",
	ErrCodeInternal:                "INTERNAL_ERROR",
}

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnection,
		ErrCodeScenarioSaveFailed,
		ErrCodeReportStoreFailed,
		ErrCodeNotificationSendFailed:
		return 3

	case ErrCodeReportIndexFailed,
		ErrCodeRegistryLoadFailed:
		return 2

	default:
		return 0
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory groups codes for dashboards and logs.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "SCENARIO"):
		return "SCENARIO"
	case strings.Contains(codeStr, "REPORT"):
		return "REPORT"
	case strings.Contains(codeStr, "DATABASE"):
		return "DATABASE"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "INPUT") || strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "REGISTRY"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
