// internal/workers/planning/project-scenarios/config.go
package projectscenarios

import "time"

type Config struct {
	Timeout    time.Duration
	CustomName string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    10 * time.Second,
		CustomName: "Custom Scenario",
	}
}
