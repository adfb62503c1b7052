// internal/workers/reporting/notify-report-ready/config.go
package notifyreportready

import (
	"time"

	"saas-benchmarks/internal/common/config"
)

type Config struct {
	Timeout       time.Duration
	EmailEnabled  bool
	SNSEnabled    bool
	Recipients    []string
	SubjectPrefix string
	EventType     string
}

func LoadConfig(nc config.NotificationConfig) *Config {
	return &Config{
		Timeout:       15 * time.Second,
		EmailEnabled:  nc.EmailEnabled,
		SNSEnabled:    nc.SNSEnabled,
		Recipients:    nc.Recipients,
		SubjectPrefix: "Benchmark report ready",
		EventType:     "benchmark.report.ready",
	}
}
