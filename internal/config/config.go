package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the root configuration shared by all hmiq binaries
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Index   IndexConfig   `yaml:"index"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// CatalogConfig selects the questionnaire catalog. An empty path means the bundled one.
type CatalogConfig struct {
	Path string `yaml:"path" env:"HMIQ_CATALOG"`
}

// IndexConfig locates the SQLite inverted index. An empty path means DefaultIndexPath().
type IndexConfig struct {
	Path string `yaml:"path" env:"HMIQ_INDEX"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"HMIQ_SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"HMIQ_SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"HMIQ_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"HMIQ_SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"HMIQ_SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	RequestTimeout  time.Duration `yaml:"request_timeout"  env:"HMIQ_SERVER_REQUEST_TIMEOUT"  env-default:"15s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HMIQ_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	AllowedOrigins  []string      `yaml:"allowed_origins"  env:"HMIQ_CORS_ALLOWED_ORIGINS"    env-default:"*"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"  env:"HMIQ_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"HMIQ_LOG_FORMAT" env-default:"text"`
	File   string `yaml:"file"   env:"HMIQ_LOG_FILE"`
}

// IndexPath returns the configured index location or the XDG default
func (c *Config) IndexPath() string {
	if c.Index.Path != "" {
		return c.Index.Path
	}
	return DefaultIndexPath()
}

// DefaultIndexPath places the index under $XDG_DATA_HOME/hmiq
func DefaultIndexPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "hmiq", "index.db")
}
