// internal/workers/positioning/generate-competitive-peers/config.go
package generatecompetitivepeers

import "time"

type Config struct {
	Timeout     time.Duration
	DefaultSeed uint64
}

// LoadConfig takes the seed used when a job does not pin one, normally
// benchmarks.peer_seed.
func LoadConfig(defaultSeed uint64) *Config {
	return &Config{
		Timeout:     10 * time.Second,
		DefaultSeed: defaultSeed,
	}
}
