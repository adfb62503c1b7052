// cmd/tools/worker-generator/templates.go
package main

const configTemplate = `// internal/workers/{{ .Category }}/{{ .ID }}/config.go
package {{ .PackageName }}

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: {{ .TimeoutExpr }},
	}
}
`

const modelsTemplate = `// internal/workers/{{ .Category }}/{{ .ID }}/models.go
package {{ .PackageName }}

type Input struct {
{{- range .Input }}
	{{ .GoName }} {{ .GoType }} ` + "`json:\"{{ .JSONName }}{{ if not .Required }},omitempty{{ end }}\"`" + `{{ if .Description }} // {{ .Description }}{{ end }}
{{- end }}
}

type Output struct {
{{- range .Output }}
	{{ .GoName }} {{ .GoType }} ` + "`json:\"{{ .JSONName }}\"`" + `{{ if .Description }} // {{ .Description }}{{ end }}
{{- end }}
}
`

const handlerTemplate = `// internal/workers/{{ .Category }}/{{ .ID }}/handler.go
package {{ .PackageName }}

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
	TaskType = "{{ .TaskType }}"
)

// Handler runs the {{ .Name }} activity.
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
{{- range .Input }}{{ if .Check }}
	if {{ .Check }} {
		return nil, errors.NewInvalidInputError("{{ .JSONName }} is required")
	}
{{- end }}{{ end }}

	return nil, errors.NewInternalError(fmt.Errorf("%s is not implemented", TaskType))
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
`

const testTemplate = `// internal/workers/{{ .Category }}/{{ .ID }}/handler_test.go
package {{ .PackageName }}

import (
	"context"
	stderrors "errors"
	"testing"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), benchmark.NewEngine(), logger.NewTestLogger(t))
}

func TestHandler_Execute_RejectsEmptyInput(t *testing.T) {
	_, err := newHandler(t).Execute(context.Background(), &Input{})
	require.Error(t, err)

	var se *errors.StandardError
	require.True(t, stderrors.As(err, &se))
	assert.Equal(t, errors.ErrCode{{ if .HasRequired }}InvalidInput{{ else }}Internal{{ end }}, se.Code)
}
`
