package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagraph/internal/config"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 0, cfg.Diagnose.TopN)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagraph.yaml")
	body := `
http:
  addr: ":9090"
  shutdown_timeout: 3s
data:
  dir: /srv/corpus
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "/srv/corpus", cfg.Data.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Fields the file omits keep their defaults.
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  addr: \":9090\"\n"), 0o644))

	t.Setenv("DIAGRAPH_HTTP_ADDR", ":7070")
	t.Setenv("DIAGRAPH_LOG_LEVEL", "warn")
	t.Setenv("DIAGRAPH_HTTP_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DIAGRAPH_DIAGNOSE_TOP_N", "5")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 5, cfg.Diagnose.TopN)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvPointerMayPointNowhere(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_ValidationRejectsBadValues(t *testing.T) {
	t.Setenv("DIAGRAPH_LOG_LEVEL", "loud")

	_, err := config.Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrBadConfig)
}

func TestDatasetConfig_ResolvesAgainstDir(t *testing.T) {
	data := config.Default().Data
	data.Dir = "/srv/corpus"
	data.SeverityFile = "sev.csv"

	dsCfg := data.DatasetConfig()
	assert.Equal(t, filepath.Join("/srv/corpus", "sev.csv"), dsCfg.SeverityPath)
	assert.Equal(t, filepath.Join("/srv/corpus", "dataset.csv"), dsCfg.DatasetPath)
}

func TestNewLogger_BuildsForEveryLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := config.LogConfig{Level: level, Format: "json"}.NewLogger()
		require.NoError(t, err, "level %s", level)
		require.NotNil(t, logger)
		_ = logger.Sync()
	}
}
