package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *ViperManager {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	mgr, err := NewManager(configPath)
	require.NoError(t, err)
	return mgr
}

func TestManager_LoadDefaults(t *testing.T) {
	mgr := newTestManager(t)

	cfg, err := mgr.Load()
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider.Name)
	assert.Equal(t, "", cfg.Provider.APIKey)
	assert.Equal(t, 50, cfg.Provider.MaxTokens)
	assert.True(t, cfg.UI.ColorEnabled)
}

func TestManager_InitCreatesFileWithRestrictedPermissions(t *testing.T) {
	mgr := newTestManager(t)

	require.False(t, mgr.ConfigExists())
	require.NoError(t, mgr.Init())
	assert.True(t, mgr.ConfigExists())

	info, err := os.Stat(mgr.GetConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Second init fails instead of clobbering.
	assert.Error(t, mgr.Init())
}

func TestManager_SetAndGet(t *testing.T) {
	mgr := newTestManager(t)
	require.NoError(t, mgr.Init())

	require.NoError(t, mgr.Set("provider.name", "anthropic"))
	require.NoError(t, mgr.Set("provider.max_tokens", "80"))

	name, err := mgr.Get("provider.name")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", name)

	cfg, err := mgr.Load()
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.Provider.Name)
	assert.Equal(t, 80, cfg.Provider.MaxTokens)
}

func TestManager_GetUnknownKey(t *testing.T) {
	mgr := newTestManager(t)

	_, err := mgr.Get("does.not.exist")
	assert.Error(t, err)
}

func TestManager_EnvOverridesFile(t *testing.T) {
	mgr := newTestManager(t)
	require.NoError(t, mgr.Init())
	require.NoError(t, mgr.Set("provider.name", "openai"))

	t.Setenv("GITQUILL_PROVIDER_NAME", "ollama")
	t.Setenv("GITQUILL_PROVIDER_MAX_TOKENS", "99")

	// Env binding is read at load time, so a fresh manager sees it.
	fresh, err := NewManager(mgr.GetConfigPath())
	require.NoError(t, err)
	cfg, err := fresh.Load()
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.Provider.Name)
	assert.Equal(t, 99, cfg.Provider.MaxTokens)
}

func TestManager_FlagOverrideWinsOverEnv(t *testing.T) {
	mgr := newTestManager(t)

	t.Setenv("GITQUILL_PROVIDER_NAME", "ollama")

	fresh, err := NewManager(mgr.GetConfigPath())
	require.NoError(t, err)
	fresh.SetOverride("provider.name", "anthropic")

	cfg, err := fresh.Load()
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.Provider.Name)
}

func TestManager_List(t *testing.T) {
	mgr := newTestManager(t)

	settings := mgr.List()

	assert.Contains(t, settings, "provider")
	assert.Contains(t, settings, "ui")
}

func TestManager_MissingFileIsNotAnError(t *testing.T) {
	mgr := newTestManager(t)

	cfg, err := mgr.Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}
