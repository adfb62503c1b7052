// internal/workers/reporting/publish-benchmark-report/handler.go
package publishbenchmarkreport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/common/metrics"
	"saas-benchmarks/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "publish-benchmark-report"
)

// ReportStore is satisfied by database.ReportStore.
type ReportStore interface {
	PutWithID(ctx context.Context, id string, report interface{}) error
	Delete(ctx context.Context, id string) error
	TTL() time.Duration
}

// ReportIndex is satisfied by database.ReportIndexer.
type ReportIndex interface {
	Put(ctx context.Context, id string, doc interface{}) error
	Index() string
}

type Handler struct {
	config     *Config
	engine     *benchmark.Engine
	store      ReportStore
	index      ReportIndex
	errHandler *errors.ErrorHandler
	logger     logger.Logger
}

// NewHandler builds the worker. index may be nil when search indexing is
// disabled.
func NewHandler(config *Config, engine *benchmark.Engine, store ReportStore, index ReportIndex, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		engine:     engine,
		store:      store,
		index:      index,
		errHandler: errors.NewErrorHandler(log),
		logger:     log,
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

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.fail(ctx, client, job, errors.NewInvalidInputError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Company == nil {
		return nil, errors.NewInvalidInputError("company is required")
	}

	seed := h.config.DefaultSeed
	if input.Seed != nil {
		seed = *input.Seed
	}

	now := h.config.Now()
	year := input.CurrentYear
	if year <= 0 {
		year = now.Year()
	}

	report := h.engine.Evaluate(
		benchmark.Snapshot{Company: *input.Company, Funding: input.Funding},
		benchmark.EvaluateOptions{
			CurrentYear: year,
			Seed:        seed,
			Series:      benchmark.AllSeries(),
		},
	)
	metrics.CountFallbacks(TaskType, len(report.Fallbacks))

	envelope := models.ReportEnvelope{
		ReportID:    uuid.New().String(),
		CompanyName: input.CompanyName,
		Bucket:      string(report.Bucket),
		Industry:    report.Industry.Key,
		IPOScore:    report.Derived.IPOReadiness.Score,
		Resilience:  report.Derived.Resilience.Score,
		Fallbacks:   report.Fallbacks,
		PublishedAt: now,
		ExpiresAt:   now.Add(h.store.TTL()),
	}

	if err := h.store.PutWithID(ctx, envelope.ReportID, StoredReport{Envelope: envelope, Report: report}); err != nil {
		return nil, errors.NewReportStoreFailedError(err)
	}

	out := &Output{
		ReportID:          envelope.ReportID,
		ExpiresAt:         envelope.ExpiresAt,
		Bucket:            envelope.Bucket,
		IPOReadinessScore: envelope.IPOScore,
		ResilienceScore:   envelope.Resilience,
	}

	if h.index != nil {
		if err := h.index.Put(ctx, envelope.ReportID, envelope); err != nil {
			if h.config.RequireIndex {
				// a retry publishes under a new ID
				if derr := h.store.Delete(ctx, envelope.ReportID); derr != nil {
					h.logger.Warn("unindexed report not removed", map[string]interface{}{
						"reportId": envelope.ReportID,
						"error":    derr.Error(),
					})
				}
				return nil, errors.NewReportIndexFailedError(h.index.Index(), err)
			}
			h.logger.Warn("report not indexed", map[string]interface{}{
				"reportId": envelope.ReportID,
				"error":    err.Error(),
			})
		} else {
			out.Indexed = true
		}
	}

	h.logger.Info("report published", map[string]interface{}{
		"reportId":  out.ReportID,
		"bucket":    out.Bucket,
		"indexed":   out.Indexed,
		"expiresAt": out.ExpiresAt,
	})

	return out, nil
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	stdErr := errors.Normalize(err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
	h.errHandler.HandleJobError(ctx, client, job, err)
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

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
