// internal/workers/cohort/project-cohort-curves/config.go
package projectcohortcurves

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
