// internal/workers/scoring/calculate-ipo-readiness/config.go
package calculateiporeadiness

import "time"

// No tuning beyond the timeout; the ladders live in the calculator.
type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
