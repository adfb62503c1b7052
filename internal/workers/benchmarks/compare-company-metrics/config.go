// internal/workers/benchmarks/compare-company-metrics/config.go
package comparecompanymetrics

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
