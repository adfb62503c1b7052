// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"time"

	"saas-benchmarks/internal/common/config"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// HandlerFunc is the signature every job worker's Handle method has.
type HandlerFunc func(client worker.JobClient, job entities.Job)

// Traced wraps h so each job runs under an OpenTelemetry span and its wall
// time lands in the job duration histogram.
func Traced(taskType string, h HandlerFunc, obs *observability.Observability) HandlerFunc {
	return func(client worker.JobClient, job entities.Job) {
		start := time.Now()
		ctx, span := obs.StartSpan(context.Background(), "job "+taskType)
		defer span.End()

		h(client, job)

		obs.RecordJobProcessed(ctx, taskType, "handled")
		obs.RecordJobDuration(ctx, taskType, time.Since(start), "handled")
	}
}

// StartWorker opens a job worker for taskType. It returns nil when the
// worker is disabled.
func StartWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, h HandlerFunc, obs *observability.Observability, log logger.Logger) worker.JobWorker {
	if !wcfg.Enabled {
		log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
		return nil
	}

	jw := client.NewJobWorker().
		JobType(taskType).
		Handler(worker.JobHandler(Traced(taskType, h, obs))).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeout_ms":    wcfg.Timeout,
	})
	return jw
}
