// cmd/benchctl/snapshot.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/models"

	"gopkg.in/yaml.v3"
)

// loadSnapshot reads a YAML snapshot. Fields the file leaves out keep the
// dashboard defaults, and a missing file yields the default company with
// the default funding history.
func loadSnapshot(path string) (benchmark.Snapshot, error) {
	funding := models.DefaultFundingProfile()
	defaults := benchmark.Snapshot{Company: models.DefaultCompanyMetrics(), Funding: &funding}
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return benchmark.Snapshot{}, err
	}

	snap := benchmark.Snapshot{Company: models.DefaultCompanyMetrics()}
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return benchmark.Snapshot{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return snap, nil
}
