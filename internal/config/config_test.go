package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BUILDERP_CONFIG_PATH",
		"BUILDERP_SERVER_HOST",
		"BUILDERP_SERVER_PORT",
		"BUILDERP_DB_PATH",
		"BUILDERP_SEED",
		"BUILDERP_LOG_LEVEL",
		"BUILDERP_LOG_PATH",
		"BUILDERP_TRANSPORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: 9000\ndb:\n  path: /tmp/erp.db\n  seed: false\ntransport:\n  mode: stdio\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("BUILDERP_CONFIG_PATH", path)
	t.Setenv("BUILDERP_SERVER_PORT", "9100")
	t.Setenv("BUILDERP_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "/tmp/erp.db", cfg.DB.Path)
	require.False(t, cfg.DB.Seed)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, TransportStdio, cfg.Transport.Mode)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"BUILDERP_SERVER_PORT": "eighty",
		"BUILDERP_SEED":        "maybe",
		"BUILDERP_TRANSPORT":   "carrier-pigeon",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("BUILDERP_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}
