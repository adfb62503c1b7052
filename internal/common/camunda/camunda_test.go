// internal/common/camunda/camunda_test.go
package camunda

import (
	"context"
	"errors"
	"testing"
	"time"

	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func fastRetry(n int) RetryConfig {
	return RetryConfig{MaxRetries: n, BaseDelay: time.Millisecond, MaxDelay: 4 * time.Millisecond}
}

func TestRetryConfig_Delay(t *testing.T) {
	rc := RetryConfig{BaseDelay: time.Second, MaxDelay: 5 * time.Second}
	assert.Equal(t, time.Second, rc.Delay(0))
	assert.Equal(t, 4*time.Second, rc.Delay(2))
	assert.Equal(t, 5*time.Second, rc.Delay(3))
}

func TestRetryWithBackoff(t *testing.T) {
	log := logger.NewTestLogger(t)

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), fastRetry(5), log, "redis connection", func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), fastRetry(3), log, "postgres connection", func(context.Context) error {
			calls++
			return errors.New("dial tcp: connection refused")
		})
		require.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.Contains(t, err.Error(), "postgres connection failed after 3 attempts")
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := RetryWithBackoff(ctx, RetryConfig{MaxRetries: 3, BaseDelay: time.Hour}, log, "zeebe", func(context.Context) error {
			return errors.New("unavailable")
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, IsRetryableError(errors.New("rpc error: code = Unavailable")))
	assert.True(t, IsRetryableError(errors.New("context deadline exceeded")))
	assert.False(t, IsRetryableError(errors.New("permission denied")))
	assert.False(t, IsRetryableError(nil))
}

func TestTraced(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	obs, err := observability.New("test", sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { _ = obs.Shutdown(context.Background()) })

	var seen int64
	h := Traced("calculate-ipo-readiness", func(_ worker.JobClient, job entities.Job) {
		seen = job.Key
	}, obs)

	h(nil, entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 42}})

	assert.Equal(t, int64(42), seen)
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "job calculate-ipo-readiness", spans[0].Name())
}
