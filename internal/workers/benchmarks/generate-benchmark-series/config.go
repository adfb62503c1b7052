// internal/workers/benchmarks/generate-benchmark-series/config.go
package generatebenchmarkseries

import "time"

type Config struct {
	Timeout time.Duration
	// DefaultSeries is used when the job does not request any.
	DefaultSeries []string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:       10 * time.Second,
		DefaultSeries: []string{SeriesQuarterly, SeriesValuation},
	}
}
