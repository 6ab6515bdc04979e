package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/staffsync/go-staffsync/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STAFFSYNC_BASE_URL", "")
	t.Setenv("STAFFSYNC_SESSION_FILE", "")
	t.Setenv("STAFFSYNC_LOG_LEVEL", "")
	t.Setenv("STAFFSYNC_TIMEOUT", "")
	os.Unsetenv("STAFFSYNC_BASE_URL")
	os.Unsetenv("STAFFSYNC_SESSION_FILE")
	os.Unsetenv("STAFFSYNC_LOG_LEVEL")
	os.Unsetenv("STAFFSYNC_TIMEOUT")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000/api", cfg.BaseURL)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.Empty(t, cfg.SessionFile)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"base_url: https://staffsync.example.com/api\nlog_level: debug\ntimeout: 10s\n",
	), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://staffsync.example.com/api", cfg.BaseURL)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: https://from-file.example.com/api\n"), 0o600))
	t.Setenv("STAFFSYNC_BASE_URL", "https://from-env.example.com/api")
	t.Setenv("STAFFSYNC_TIMEOUT", "5s")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://from-env.example.com/api", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [broken\n"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestDefaultFilePath_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := config.DefaultFilePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/tmp/xdg", "staffsync", "config.yaml"), path)
}
