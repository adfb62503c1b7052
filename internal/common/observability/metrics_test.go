// internal/common/observability/metrics_test.go
package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan_RecordsToExporter(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	o, err := New("saas-benchmarks-test", sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Shutdown(context.Background()) })

	_, span := o.StartSpan(context.Background(), "compare-company-metrics", attribute.Int64("jobKey", 42))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "compare-company-metrics", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.Int64("jobKey", 42))

	o.RecordJobProcessed(context.Background(), "compare-company-metrics", "completed")
	o.RecordJobDuration(context.Background(), "compare-company-metrics", 5*time.Millisecond, "completed")
}

func TestNoop_IsSafe(t *testing.T) {
	o := Noop()
	ctx, span := o.StartSpan(context.Background(), "x")
	span.End()

	assert.NotNil(t, ctx)
	o.RecordJobProcessed(ctx, "x", "failed")
	assert.NoError(t, o.Shutdown(ctx))

	var nilObs *Observability
	_, span = nilObs.StartSpan(ctx, "y")
	span.End()
}
