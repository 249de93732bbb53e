package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hmiq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HMIQ_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Catalog.Path)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadFromYAMLWithEnvOverride(t *testing.T) {
	path := writeYAML(t, `
catalog:
  path: /srv/catalog.yaml
server:
  port: 9090
log:
  level: DEBUG
  format: json
`)
	t.Setenv("HMIQ_CONFIG", path)
	t.Setenv("HMIQ_SERVER_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/catalog.yaml", cfg.Catalog.Path)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	t.Setenv("HMIQ_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 8080, ReadTimeout: time.Second, WriteTimeout: time.Second},
			Log:    LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "level is case-insensitive", mutate: func(c *Config) { c.Log.Level = "WARN" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIndexPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	cfg := &Config{}
	assert.Equal(t, filepath.Join("/tmp/xdg", "hmiq", "index.db"), cfg.IndexPath())

	cfg.Index.Path = "/var/lib/hmiq.db"
	assert.Equal(t, "/var/lib/hmiq.db", cfg.IndexPath())
}
