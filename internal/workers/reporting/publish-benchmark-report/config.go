// internal/workers/reporting/publish-benchmark-report/config.go
package publishbenchmarkreport

import "time"

type Config struct {
	Timeout      time.Duration
	DefaultSeed  uint64
	RequireIndex bool
	Now          func() time.Time
}

func LoadConfig(defaultSeed uint64) *Config {
	return &Config{
		Timeout:     30 * time.Second,
		DefaultSeed: defaultSeed,
		Now:         func() time.Time { return time.Now().UTC() },
	}
}
