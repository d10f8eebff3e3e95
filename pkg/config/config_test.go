package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
endpoint: https://plunet.example.com
username: api
password: secret
timeoutMs: 5000
numericBoolParams:
  - enableNullOrEmptyValues
benignStatusCodes:
  getDeliveryDeadline: [-57, 7028]
requestLogSize: 100
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://plunet.example.com", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, []int{-57, 7028}, cfg.BenignStatusCodes["getDeliveryDeadline"])
	assert.Equal(t, 100, cfg.RequestLogSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_DefaultsFillGaps(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
endpoint: https://plunet.example.com
username: api
password: secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, 500, cfg.RequestLogSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Contains(t, cfg.NumericBoolParams, "enableNullOrEmptyValues")
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_Malformed(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "endpoint: [unclosed")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.ErrorIs(t, cfg.Validate(), ErrNoEndpoint)
	cfg.Endpoint = "https://x"
	assert.ErrorIs(t, cfg.Validate(), ErrNoUsername)
	cfg.Username = "api"
	assert.ErrorIs(t, cfg.Validate(), ErrNoPassword)
	cfg.Password = "secret"
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PLUNET_ENDPOINT", "https://env.example.com")
	t.Setenv("PLUNET_USERNAME", "envuser")
	t.Setenv("PLUNET_PASSWORD", "envpass")

	cfg := Default()
	cfg.Username = "filevalue"
	cfg.FromEnv()

	assert.Equal(t, "https://env.example.com", cfg.Endpoint)
	assert.Equal(t, "filevalue", cfg.Username, "file value wins over env")
	assert.Equal(t, "envpass", cfg.Password)
}
