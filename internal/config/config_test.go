package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvDataDir, t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultEnvironment, cfg.Environment)
	assert.Equal(t, DefaultStoreFile, cfg.StoreFile)
	assert.Empty(t, cfg.LegacyDir)
	assert.Contains(t, cfg.StorePath(), cfg.DataDir)
}

func TestLoadOverrides(t *testing.T) {
	setValidEnv(t)
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvLogFormat, "text")
	t.Setenv(EnvLegacyDir, "/srv/legacy")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "/srv/legacy", cfg.LegacyDir)
}

func TestLoadInvalidPort(t *testing.T) {
	setValidEnv(t)
	t.Setenv(EnvPort, "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidLogFormat(t *testing.T) {
	setValidEnv(t)
	t.Setenv(EnvLogFormat, "yaml")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateEnv(t *testing.T) {
	t.Run("missing schema version", func(t *testing.T) {
		t.Setenv(EnvSchemaVersion, "")
		t.Setenv(EnvAPIKey, "key")
		assert.Error(t, ValidateEnv())
	})

	t.Run("schema version mismatch", func(t *testing.T) {
		t.Setenv(EnvSchemaVersion, "0.9")
		t.Setenv(EnvAPIKey, "key")
		assert.Error(t, ValidateEnv())
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
		t.Setenv(EnvAPIKey, "")
		assert.Error(t, ValidateEnv())
	})

	t.Run("valid", func(t *testing.T) {
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
		t.Setenv(EnvAPIKey, "key")
		assert.NoError(t, ValidateEnv())
	})
}
