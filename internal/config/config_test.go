package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, DefaultWalletID, cfg.Wallet.ID)
	assert.Equal(t, DefaultBridgeEndpoint, cfg.Bridge.Endpoint)
	assert.False(t, cfg.Bridge.Enabled)
	assert.False(t, cfg.UI.Demo)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := Path(dir)

	cfg := Defaults()
	cfg.Wallet.ID = "otherwallet"
	cfg.Bridge.Enabled = true
	cfg.Bridge.Endpoint = "http://127.0.0.1:9999/rpc"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "otherwallet", loaded.Wallet.ID)
	assert.True(t, loaded.Bridge.Enabled)
	assert.Equal(t, "http://127.0.0.1:9999/rpc", loaded.Bridge.Endpoint)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := Path(dir)
	require.NoError(t, os.WriteFile(path, []byte("wallet:\n  id: partial\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "partial", cfg.Wallet.ID)
	// Unset sections fall back to defaults
	assert.Equal(t, DefaultBridgeEndpoint, cfg.Bridge.Endpoint)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := Path(dir)
	require.NoError(t, os.WriteFile(path, []byte("wallet: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
