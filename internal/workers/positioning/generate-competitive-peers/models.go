// internal/workers/positioning/generate-competitive-peers/models.go
package generatecompetitivepeers

import (
	"saas-benchmarks/internal/benchmark/series"
	"saas-benchmarks/internal/models"
)

type Input struct {
	Company *models.CompanyMetrics `json:"company"`
	XAxis   string                 `json:"xAxis"`
	YAxis   string                 `json:"yAxis"`
	Seed    *uint64                `json:"seed,omitempty"`
}

type Output struct {
	Seed        uint64                `json:"seed"`
	PeersAhead  []string              `json:"peersAhead"`
	Fallbacks   []string              `json:"fallbacks,omitempty"`
	Positioning series.PositioningMap `json:"positioning"`
}
