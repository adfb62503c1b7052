// internal/workers/benchmarks/compare-industry-benchmarks/config.go
package compareindustrybenchmarks

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
