// internal/workers/planning/project-scenarios/handler.go
package projectscenarios

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/benchmark/series"
	"saas-benchmarks/internal/common/database"
	"saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/common/metrics"
	"saas-benchmarks/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "project-scenarios"
)

// SavedScenarios is satisfied by database.ScenarioRepository.
type SavedScenarios interface {
	Get(ctx context.Context, id string) (models.SavedScenario, error)
	ListByName(ctx context.Context, name string, limit int) ([]models.SavedScenario, error)
}

type Handler struct {
	config     *Config
	saved      SavedScenarios
	engine     *benchmark.Engine
	errHandler *errors.ErrorHandler
	logger     logger.Logger
}

// NewHandler builds the worker. saved may be nil, in which case inputs that
// reference a saved scenario are rejected.
func NewHandler(config *Config, saved SavedScenarios, engine *benchmark.Engine, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		saved:      saved,
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
	if input.SavedScenarioID != "" || input.SavedScenarioName != "" {
		saved, err := h.loadSaved(ctx, input)
		if err != nil {
			return nil, err
		}
		out := h.summarize([]series.ScenarioComparison{
			h.engine.CompareCustom(saved.Name, saved.Baseline, saved.Scenario),
		})
		out.SavedScenarioID = saved.ID
		return out, nil
	}

	if input.Company == nil {
		return nil, errors.NewInvalidInputError("company is required")
	}
	base := *input.Company

	var comparisons []series.ScenarioComparison
	switch {
	case input.CustomScenario != nil:
		name := input.CustomScenario.Name
		if name == "" {
			name = h.config.CustomName
		}
		comparisons = []series.ScenarioComparison{
			h.engine.CompareCustom(name, base, input.CustomScenario.Apply(base)),
		}
	default:
		comparisons = h.engine.Scenarios(base, input.ScenarioName)
		if comparisons == nil {
			return nil, errors.NewUnknownScenarioError(input.ScenarioName)
		}
	}

	return h.summarize(comparisons), nil
}

// loadSaved resolves the saved scenario by ID, or else the newest one saved
// under the name.
func (h *Handler) loadSaved(ctx context.Context, input *Input) (models.SavedScenario, error) {
	if h.saved == nil {
		return models.SavedScenario{}, errors.NewInvalidInputError("saved scenarios are not available")
	}

	if id := strings.TrimSpace(input.SavedScenarioID); id != "" {
		s, err := h.saved.Get(ctx, id)
		if stderrors.Is(err, database.ErrNotFound) {
			return models.SavedScenario{}, errors.NewScenarioNotFoundError(id)
		}
		if err != nil {
			return models.SavedScenario{}, errors.NewDatabaseConnectionError(err)
		}
		return s, nil
	}

	name := strings.TrimSpace(input.SavedScenarioName)
	list, err := h.saved.ListByName(ctx, name, 1)
	if err != nil {
		return models.SavedScenario{}, errors.NewDatabaseConnectionError(err)
	}
	if len(list) == 0 {
		return models.SavedScenario{}, errors.NewScenarioNotFoundError(name)
	}
	return list[0], nil
}

func (h *Handler) summarize(comparisons []series.ScenarioComparison) *Output {
	out := &Output{Comparisons: comparisons}
	best := 0
	for i, c := range comparisons {
		if c.ARRDifference > comparisons[best].ARRDifference {
			best = i
		}
	}
	out.BestScenario = comparisons[best].Name
	out.BaselineARR = comparisons[best].BaselineSummary.ARR

	h.logger.Info("scenarios projected", map[string]interface{}{
		"count":        len(comparisons),
		"bestScenario": out.BestScenario,
	})

	return out
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
