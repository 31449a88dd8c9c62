package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err, "explicit missing file should fail")

	// No explicit path and no file present: defaults apply.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, DriverPostgres, cfg.StorageDriver)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Empty(t, cfg.MetricsAddress)
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.yaml")
	contents := []byte("storage_driver: memory\nlog_level: debug\nmetrics_address: \":9100\"\n")
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DriverMemory, cfg.StorageDriver)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, ":9100", cfg.MetricsAddress)

	t.Setenv("TRACKER_LOG_LEVEL", "warn")
	t.Setenv("TRACKER_STORAGE_DRIVER", DriverPostgres)

	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, DriverPostgres, cfg.StorageDriver, "env overrides file")
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("TRACKER_STORAGE_DRIVER", "cassandra")
	_, err := Load("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "cassandra")
}
