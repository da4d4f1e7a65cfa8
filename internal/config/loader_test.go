package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 500*time.Millisecond, cfg.Storage.FlushDelay)
	assert.Equal(t, CacheLRU, cfg.Cache.Backend)
	assert.Equal(t, 1024, cfg.Cache.Size)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":9000"
storage:
  sqlite_path: /tmp/x.db
  flush_delay: 2s
cache:
  backend: Redis
redis:
  address: redis:6379
`)
	t.Setenv("SERVER_ADDRESS", ":7000")
	t.Setenv("LOGGING_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Address)
	assert.Equal(t, "/tmp/x.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 2*time.Second, cfg.Storage.FlushDelay)
	assert.Equal(t, CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "cache:\n  backend: memcached\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "cache.backend")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
