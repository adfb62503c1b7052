// internal/workers/benchmarks/compare-company-metrics/handler.go
package comparecompanymetrics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "compare-company-metrics"
)

type Handler struct {
	config *Config
	engine *benchmark.Engine
	logger logger.Logger
}

func NewHandler(config *Config, engine *benchmark.Engine, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		engine: engine,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
	if input.Company == nil {
		return nil, errors.NewInvalidInputError("company is required")
	}

	cmp := h.engine.CompareMetrics(*input.Company)

	out := &Output{
		Bucket:       string(cmp.Bucket),
		Industry:     cmp.Industry.Key,
		HasFallbacks: len(cmp.Fallbacks) > 0,
		Comparison:   cmp,
	}
	for _, r := range cmp.Metrics {
		metrics.CountRating(string(r.Metric), string(r.Rating))
		if r.Rating.AtLeastMedian() {
			out.AtOrAboveMedian++
		} else {
			out.BelowMedian++
		}
	}
	metrics.CountFallbacks(TaskType, len(cmp.Fallbacks))

	h.logger.Info("company metrics compared", map[string]interface{}{
		"bucket":          out.Bucket,
		"atOrAboveMedian": out.AtOrAboveMedian,
		"belowMedian":     out.BelowMedian,
		"fallbacks":       cmp.Fallbacks,
	})
	return out, nil
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
