package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "drivofy"
password = "secret"
dbname = "scheduling"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 72, cfg.Redis.BusyBlockTTL)
	assert.Equal(t, 10, cfg.CalendarSync.Timeout)
	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, "host=localhost port=5432 user=drivofy password=secret dbname=scheduling sslmode=disable",
		cfg.Database.DSN())
}

func TestLoadReadsSections(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "scheduling"
auto_migrate = true

[metrics]
enabled = true
service_name = "scheduling"

[redis]
addr = "redis:6379"
busy_block_ttl = 24

[calendar_sync]
url = "http://bridge:8081"
timeout = 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "scheduling", cfg.Metrics.ServiceName)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 24, cfg.Redis.BusyBlockTTL)
	assert.Equal(t, "http://bridge:8081", cfg.CalendarSync.URL)
	assert.Equal(t, 3, cfg.CalendarSync.Timeout)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `[database]
host = "db"
`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `[database
host = "db"`))
	assert.Error(t, err)
}
