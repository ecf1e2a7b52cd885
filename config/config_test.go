package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		// viper errors on an explicitly named missing file; defaults path
		cfg, err = Load("")
	}
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.NotEmpty(t, cfg.State.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:8080", cfg.Mock.Addr())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
api:
  base_url: https://wallet.example.com/api
  timeout: 5s
state:
  dir: ` + dir + `
log:
  level: debug
  pretty: true
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://wallet.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, dir, cfg.State.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CRW_API_BASE_URL", "http://override:9999/api")
	t.Setenv("CRW_STATE_PASSPHRASE", "pw")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://override:9999/api", cfg.API.BaseURL)
	assert.Equal(t, "pw", cfg.State.Passphrase)
}
