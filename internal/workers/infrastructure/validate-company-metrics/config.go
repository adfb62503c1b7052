// internal/workers/infrastructure/validate-company-metrics/config.go
package validatecompanymetrics

import "time"

type Config struct {
	Timeout time.Duration
	// DefaultTarget is the activity whose input schema is used when the job
	// does not name one.
	DefaultTarget string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:       10 * time.Second,
		DefaultTarget: "compare-company-metrics",
	}
}
