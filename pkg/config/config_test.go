package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://api.dydx.exchange", cfg.Host)
	assert.Equal(t, 1, cfg.NetworkID)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
host: https://api.stage.dydx.exchange
network_id: 5
ethereum_address: "0x1234567890123456789012345678901234567890"
api_key:
  key: yaml-key
  secret: yaml-secret
  passphrase: yaml-pass
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.stage.dydx.exchange", cfg.Host)
	assert.Equal(t, 5, cfg.NetworkID)
	assert.Equal(t, "yaml-key", cfg.APIKey.Key)
	assert.Equal(t, "debug", cfg.Log.Level)

	creds := cfg.Credentials()
	assert.Equal(t, "yaml-key", creds.Key)
	assert.Equal(t, "yaml-secret", creds.Secret)
	assert.Equal(t, "yaml-pass", creds.Passphrase)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DYDX_API_KEY", "env-key")
	t.Setenv("DYDX_NETWORK_ID", "5")
	t.Setenv("DYDX_STARK_PRIVATE_KEY", "0xdeadbeef")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey.Key)
	assert.Equal(t, 5, cfg.NetworkID)
	assert.Equal(t, "0xdeadbeef", cfg.StarkPrivateKey)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Host: "", NetworkID: 1}
	assert.Error(t, cfg.Validate(), "空 host 应校验失败")

	cfg = &Config{Host: "https://api.dydx.exchange", NetworkID: 0}
	assert.Error(t, cfg.Validate(), "非法 network_id 应校验失败")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
