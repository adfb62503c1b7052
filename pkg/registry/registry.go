// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// LoadRegistry reads an activity registry file.
func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return &reg, nil
}

// Save writes the registry back with two-space indentation and a fresh
// LastUpdated stamp.
func (r *ActivityRegistry) Save(path string) error {
	r.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Find returns the activity registered for taskType.
func (r *ActivityRegistry) Find(taskType string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// Add appends a new activity, rejecting duplicate IDs.
func (r *ActivityRegistry) Add(a Activity) error {
	for _, existing := range r.Activities {
		if existing.ID == a.ID {
			return fmt.Errorf("activity with ID %s already exists", a.ID)
		}
	}
	r.Activities = append(r.Activities, a)
	return nil
}

// TaskTypes lists the registered task types in file order.
func (r *ActivityRegistry) TaskTypes() []string {
	out := make([]string, 0, len(r.Activities))
	for _, a := range r.Activities {
		out = append(out, a.TaskType)
	}
	return out
}
