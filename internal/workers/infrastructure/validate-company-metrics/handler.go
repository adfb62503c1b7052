// internal/workers/infrastructure/validate-company-metrics/handler.go
package validatecompanymetrics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/common/metrics"
	"saas-benchmarks/internal/common/validation"
	"saas-benchmarks/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-company-metrics"
)

type Handler struct {
	config    *Config
	validator *validation.Validator
	engine    *benchmark.Engine
	logger    logger.Logger
}

func NewHandler(config *Config, validator *validation.Validator, engine *benchmark.Engine, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		validator: validator,
		engine:    engine,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		stdErr := errors.Normalize(err)
		h.failJob(client, job, string(stdErr.Code), stdErr.Details)
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	target := input.TargetTaskType
	if target == "" {
		target = h.config.DefaultTarget
	}
	if !h.validator.Has(target) {
		return nil, errors.NewInvalidInputError(fmt.Sprintf("no input schema registered for %s", target))
	}

	result, err := h.validator.Validate(target, map[string]interface{}{"company": input.Company})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	out := &Output{
		Valid:          result.Valid,
		TargetTaskType: target,
		Violations:     result.Errors,
		Warnings:       []string{},
	}
	if out.Violations == nil {
		out.Violations = []validation.ValidationError{}
	}

	if !result.Valid {
		h.logger.Warn("company metrics failed schema validation", map[string]interface{}{
			"target":     target,
			"violations": len(result.Errors),
		})
		if input.Strict {
			return nil, errors.NewSchemaValidationError(target, result.Messages())
		}
		return out, nil
	}

	company, err := decodeCompany(input.Company)
	if err != nil {
		return nil, errors.NewInvalidInputError(err.Error())
	}

	cmp := h.engine.CompareMetrics(company)
	out.Bucket = string(cmp.Bucket)
	out.Warnings = append(out.Warnings, cmp.Fallbacks...)
	metrics.CountFallbacks(TaskType, len(cmp.Fallbacks))

	h.logger.Info("company metrics validated", map[string]interface{}{
		"target":   target,
		"bucket":   out.Bucket,
		"warnings": len(out.Warnings),
	})
	return out, nil
}

func decodeCompany(raw map[string]interface{}) (models.CompanyMetrics, error) {
	var m models.CompanyMetrics
	data, err := json.Marshal(raw)
	if err != nil {
		return m, err
	}
	err = json.Unmarshal(data, &m)
	return m, err
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
