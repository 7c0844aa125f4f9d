// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRegistry = `{
	"version": "1.0.0",
	"lastUpdated": "2026-08-20",
	"activities": [
		{"id": "a", "taskType": "generate-metadata", "retries": 3},
		{"id": "b", "taskType": "check-compliance", "retries": 3}
	]
}`

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry(writeRegistry(t, sampleRegistry))

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", reg.Version)
	assert.Len(t, reg.Activities, 2)
	assert.Equal(t, []string{"generate-metadata", "check-compliance"}, reg.TaskTypes())
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestLoadRegistry_MalformedJSON(t *testing.T) {
	_, err := LoadRegistry(writeRegistry(t, `{"activities": [`))

	assert.Error(t, err)
}

func TestFindByTaskType(t *testing.T) {
	reg, err := LoadRegistry(writeRegistry(t, sampleRegistry))
	require.NoError(t, err)

	found := reg.FindByTaskType("check-compliance")
	require.NotNil(t, found)
	assert.Equal(t, "b", found.ID)

	assert.Nil(t, reg.FindByTaskType("unknown-task"))
}
