// internal/workers/scoring/calculate-resilience-score/config.go
package calculateresiliencescore

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
