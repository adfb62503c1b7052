// internal/workers/funding/analyze-funding-efficiency/config.go
package analyzefundingefficiency

import "time"

type Config struct {
	Timeout time.Duration
	// Now supplies the current year when the job does not carry one.
	Now func() time.Time
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
		Now:     time.Now,
	}
}
