// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegistry_ProjectFile(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join("..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)

	assert.Len(t, reg.Activities, 14)

	a, ok := reg.Find("validate-company-metrics")
	require.True(t, ok)
	assert.Equal(t, "infrastructure", a.Category)
	assert.NotEmpty(t, a.InputSchema)

	_, ok = reg.Find("calculate-readiness-score")
	assert.False(t, ok)
}

func TestRegistry_AddAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	reg := &ActivityRegistry{Version: "1.0.0"}

	require.NoError(t, reg.Add(Activity{ID: "a", TaskType: "a"}))
	assert.Error(t, reg.Add(Activity{ID: "a", TaskType: "a"}))
	require.NoError(t, reg.Save(path))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, loaded.TaskTypes())
	assert.NotEmpty(t, loaded.LastUpdated)
}

func TestLoadRegistry_Errors(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, os.IsNotExist(err))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadRegistry(bad)
	assert.ErrorContains(t, err, "parse registry")
}
