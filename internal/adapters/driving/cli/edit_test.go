package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scribe-cli/internal/adapters/driven/config/file"
)

func newTestConfigStore(t *testing.T) *file.ConfigStore {
	t.Helper()
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestEditCmd_Registered(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Use == "edit" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRootCmd_RunsEditor(t *testing.T) {
	assert.NotNil(t, rootCmd.RunE)
}

func TestResolveConfigDir_Flag(t *testing.T) {
	original := configDir
	defer func() { configDir = original }()
	configDir = filepath.Join(t.TempDir(), "scribe-config")

	dir, err := resolveConfigDir()

	require.NoError(t, err)
	assert.Equal(t, configDir, dir)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBuildGenerativeService_NoKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	store := newTestConfigStore(t)

	assert.Nil(t, buildGenerativeService(store))
}

func TestBuildGenerativeService_EnvKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	store := newTestConfigStore(t)

	service := buildGenerativeService(store)

	require.NotNil(t, service)
	assert.NotEmpty(t, service.ModelName())
	assert.NoError(t, service.Close())
}

func TestBuildSearchService(t *testing.T) {
	store := newTestConfigStore(t)

	service := buildSearchService(store)

	require.NotNil(t, service)
	assert.NoError(t, service.Close())
}

func TestDefaultSeedText(t *testing.T) {
	assert.Contains(t, defaultSeedText, "Edit with AI")
}
