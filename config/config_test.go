package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "blogly", cfg.Tracing.ServiceName)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BLOGLY_DATABASE_DRIVER", "postgres")
	t.Setenv("BLOGLY_DATABASE_DSN", "host=localhost dbname=blogly")
	t.Setenv("BLOGLY_SERVER_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost dbname=blogly", cfg.Database.DSN)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "mysql", DSN: "x"}}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Database: DatabaseConfig{Driver: "sqlite"}}
	assert.Error(t, cfg.Validate())

	cfg = &Config{
		Database: DatabaseConfig{Driver: "sqlite", DSN: "file::memory:"},
		Redis:    RedisConfig{Enabled: true},
	}
	assert.Error(t, cfg.Validate())
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
