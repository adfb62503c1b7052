// internal/workers/positioning/generate-competitive-peers/handler.go
package generatecompetitivepeers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/benchmark/series"
	"saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "generate-competitive-peers"
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
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

	seed := h.config.DefaultSeed
	if input.Seed != nil {
		seed = *input.Seed
	}

	var fallbacks []string
	if input.XAxis != "" {
		if _, ok := series.FindAxis(input.XAxis); !ok {
			fallbacks = append(fallbacks, fmt.Sprintf("unknown x axis %q, using arrGrowth", input.XAxis))
		}
	}
	if input.YAxis != "" {
		if _, ok := series.FindAxis(input.YAxis); !ok {
			fallbacks = append(fallbacks, fmt.Sprintf("unknown y axis %q, using fcfMargin", input.YAxis))
		}
	}
	metrics.CountFallbacks(TaskType, len(fallbacks))

	pm := series.Positioning(*input.Company, input.XAxis, input.YAxis, benchmark.NewRand(seed))

	out := &Output{
		Seed:        seed,
		PeersAhead:  peersAhead(pm),
		Fallbacks:   fallbacks,
		Positioning: pm,
	}

	h.logger.Info("peers generated", map[string]interface{}{
		"seed":       seed,
		"xAxis":      pm.X.ID,
		"yAxis":      pm.Y.ID,
		"peersAhead": len(out.PeersAhead),
	})

	return out, nil
}

// peersAhead names the peers that beat the company on both plotted axes.
func peersAhead(pm series.PositioningMap) []string {
	ahead := []string{}
	for _, p := range pm.Peers {
		if beats(pm.X, p, pm.Company) && beats(pm.Y, p, pm.Company) {
			ahead = append(ahead, p.Name)
		}
	}
	return ahead
}

func beats(axis series.Axis, peer, company series.Peer) bool {
	pv, _ := peer.Value(axis.ID)
	cv, _ := company.Value(axis.ID)
	if axis.HigherIsBetter {
		return pv > cv
	}
	return pv < cv
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
