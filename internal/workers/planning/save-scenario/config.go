// internal/workers/planning/save-scenario/config.go
package savescenario

import "time"

type Config struct {
	Timeout       time.Duration
	MaxNameLength int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:       10 * time.Second,
		MaxNameLength: 120,
	}
}
