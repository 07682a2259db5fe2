// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	reg := Default()

	codes := make([]string, 0, len(reg.EventTypes))
	for _, def := range reg.EventTypes {
		codes = append(codes, def.Code)
	}
	assert.ElementsMatch(t, []string{"NFD", "IF", "EDJ", "PS", "ATND"}, codes)
	assert.Equal(t, []string{"PS"}, reg.ExactMatchTypes)
	require.NotNil(t, reg.Rubric)
}

func TestLoadFillsOmittedSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"version": "2.0",
		"eventTypes": [{"code": "IF", "displayName": "Interview", "color": "#000000"}]
	}`), 0o644))

	reg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2.0", reg.Version)
	require.Len(t, reg.EventTypes, 1)
	assert.Equal(t, "Interview", reg.EventTypes[0].DisplayName)

	// Omitted sections come from the shipped defaults.
	assert.Equal(t, []string{"PS"}, reg.ExactMatchTypes)
	assert.NotNil(t, reg.Rubric)
}

func TestLoadOrDefault(t *testing.T) {
	assert.Equal(t, Default().Version, LoadOrDefault("").Version)
	assert.Equal(t, Default().Version, LoadOrDefault("/does/not/exist.json").Version)
}

func TestLoadRejectsMalformedFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"eventTypes": [`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
