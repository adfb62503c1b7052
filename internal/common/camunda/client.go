// internal/common/camunda/client.go
package camunda

import (
	"context"
	"fmt"
	"strings"
	"time"

	"saas-benchmarks/internal/common/config"
	"saas-benchmarks/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// RetryConfig defines retry behavior for transient failures.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

var DefaultRetryConfig = RetryConfig{
	MaxRetries: 10,
	BaseDelay:  2 * time.Second,
	MaxDelay:   30 * time.Second,
}

// Delay is the backoff before retry number attempt (zero based).
func (r RetryConfig) Delay(attempt int) time.Duration {
	delay := r.BaseDelay * time.Duration(1<<attempt)
	if r.MaxDelay > 0 && (delay > r.MaxDelay || delay <= 0) {
		delay = r.MaxDelay
	}
	return delay
}

// RetryWithBackoff runs op until it succeeds, the retries run out or ctx is
// done. Every failed attempt except the last is logged as a warning.
func RetryWithBackoff(ctx context.Context, rc RetryConfig, log logger.Logger, name string, op func(context.Context) error) error {
	attempts := rc.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = op(ctx); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}

		delay := rc.Delay(i)
		log.Warn(name+" failed, retrying", map[string]interface{}{
			"error":       err.Error(),
			"attempt":     i + 1,
			"maxRetries":  attempts,
			"nextRetryIn": delay.String(),
		})

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("%s cancelled after %d attempts: %w", name, i+1, ctx.Err())
		}
	}
	return fmt.Errorf("%s failed after %d attempts: %w", name, attempts, err)
}

// Connect opens a gateway client and waits for a topology response.
func Connect(ctx context.Context, cfg config.CamundaConfig, rc RetryConfig, log logger.Logger) (zbc.Client, error) {
	var client zbc.Client
	err := RetryWithBackoff(ctx, rc, log, "zeebe client initialization", func(ctx context.Context) error {
		c, err := zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.BrokerAddress,
			UsePlaintextConnection: cfg.UsePlaintext,
		})
		if err != nil {
			return fmt.Errorf("failed to create Zeebe client: %w", err)
		}

		tctx, cancel := context.WithTimeout(ctx, requestTimeout(cfg))
		defer cancel()
		if _, err := c.NewTopologyCommand().Send(tctx); err != nil {
			c.Close()
			return fmt.Errorf("failed to connect to Zeebe broker at %s: %w", cfg.BrokerAddress, err)
		}
		client = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// HealthCheck asks the broker for its topology.
func HealthCheck(ctx context.Context, client zbc.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := client.NewTopologyCommand().Send(ctx); err != nil {
		return fmt.Errorf("zeebe health check failed: %w", err)
	}
	return nil
}

func requestTimeout(cfg config.CamundaConfig) time.Duration {
	if cfg.RequestTimeout > 0 {
		return time.Duration(cfg.RequestTimeout) * time.Millisecond
	}
	return 10 * time.Second
}

// IsRetryableError checks if the error is transient and worth retrying.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"deadline exceeded",
		"unavailable",
		"unreachable",
		"broken pipe",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}
