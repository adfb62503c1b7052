// internal/workers/planning/save-scenario/handler.go
package savescenario

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/benchmark/series"
	"saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/common/metrics"
	"saas-benchmarks/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "save-scenario"
)

// ScenarioStore is satisfied by database.ScenarioRepository.
type ScenarioStore interface {
	Save(ctx context.Context, s models.SavedScenario) (models.SavedScenario, error)
}

type Handler struct {
	config     *Config
	store      ScenarioStore
	engine     *benchmark.Engine
	errHandler *errors.ErrorHandler
	logger     logger.Logger
}

func NewHandler(config *Config, store ScenarioStore, engine *benchmark.Engine, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		store:      store,
		engine:     engine,
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
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.NewInvalidInputError("name is required")
	}
	if len(name) > h.config.MaxNameLength {
		return nil, errors.NewInvalidInputError(fmt.Sprintf("name exceeds %d characters", h.config.MaxNameLength))
	}
	if input.Baseline == nil {
		return nil, errors.NewInvalidInputError("baseline is required")
	}

	scenario := input.Scenario
	if scenario == nil {
		p, ok := series.FindPreset(name)
		if !ok {
			return nil, errors.NewUnknownScenarioError(name)
		}
		applied := p.Apply(*input.Baseline)
		scenario = &applied
	}

	saved, err := h.store.Save(ctx, models.SavedScenario{
		Name:      name,
		Baseline:  *input.Baseline,
		Scenario:  *scenario,
		CreatedBy: input.CreatedBy,
	})
	if err != nil {
		return nil, errors.NewScenarioSaveFailedError(err)
	}

	cmp := h.engine.CompareCustom(name, *input.Baseline, *scenario)

	h.logger.Info("scenario saved", map[string]interface{}{
		"scenarioId": saved.ID,
		"name":       saved.Name,
		"createdBy":  saved.CreatedBy,
	})

	return &Output{
		ScenarioID:       saved.ID,
		Name:             saved.Name,
		CreatedAt:        saved.CreatedAt,
		ARRDifference:    cmp.ARRDifference,
		ARRChangePercent: cmp.ARRChangePercent,
	}, nil
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
