package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigStore tests store creation in a fresh directory
func TestNewConfigStore(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.filePath)
}

// TestConfigStore_SetGet tests round-tripping values
func TestConfigStore_SetGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyLLMModel, "gpt-4o-mini"))
	require.NoError(t, store.Set(KeySearchLimit, 5))
	require.NoError(t, store.Set(KeySearchRPS, 1.5))
	require.NoError(t, store.Set("tui.alt_screen", true))

	assert.Equal(t, "gpt-4o-mini", store.GetString(KeyLLMModel))
	assert.Equal(t, 5, store.GetInt(KeySearchLimit))
	assert.InDelta(t, 1.5, store.GetFloat(KeySearchRPS), 0.001)
	assert.True(t, store.GetBool("tui.alt_screen"))
}

// TestConfigStore_MissingKeys tests zero values for absent keys
func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, store.GetString("nope"))
	assert.Zero(t, store.GetInt("nope"))
	assert.Zero(t, store.GetFloat("nope"))
	assert.False(t, store.GetBool("nope"))

	_, ok := store.Get("nope")
	assert.False(t, ok)
}

// TestConfigStore_Persistence tests that values survive a reload
func TestConfigStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyLLMAPIKey, "secret"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "secret", reopened.GetString(KeyLLMAPIKey))
}

// TestConfigStore_NestedTOML tests dot-notation flattening of nested
// tables
func TestConfigStore_NestedTOML(t *testing.T) {
	dir := t.TempDir()
	content := "[llm]\nmodel = \"local\"\napi_key = \"k\"\n\n[search]\nlimit = 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "local", store.GetString(KeyLLMModel))
	assert.Equal(t, "k", store.GetString(KeyLLMAPIKey))
	assert.Equal(t, 3, store.GetInt(KeySearchLimit))
}

// TestConfigStore_FilePermissions tests restricted file permissions
func TestConfigStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("k", "v"))

	info, err := os.Stat(store.filePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
