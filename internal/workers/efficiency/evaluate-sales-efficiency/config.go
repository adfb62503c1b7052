// internal/workers/efficiency/evaluate-sales-efficiency/config.go
package evaluatesalesefficiency

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
