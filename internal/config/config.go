// Package config loads uuidstore settings from UUIDSTORE_* environment
// variables. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Storage backends.
const (
	BackendPebble = "pebble"
	BackendMySQL  = "mysql"
)

// Config holds runtime configuration for uuidstore.
type Config struct {
	// Backend selects where records live: "pebble" or "mysql".
	Backend string `env:"UUIDSTORE_BACKEND" envDefault:"pebble"`

	// DataDir is the Pebble database directory.
	DataDir string `env:"UUIDSTORE_DATA_DIR" envDefault:"./uuidstore-data"`

	// MySQLDSN is required when Backend is "mysql".
	MySQLDSN string `env:"UUIDSTORE_MYSQL_DSN"`

	LogLevel string `env:"UUIDSTORE_LOG_LEVEL" envDefault:"info"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// LoadFrom is like Load but reads from environ instead of the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// Validate checks the backend choice and its settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendPebble:
		if c.DataDir == "" {
			return errors.New("config: data dir is required for the pebble backend")
		}
	case BackendMySQL:
		if c.MySQLDSN == "" {
			return errors.New("config: mysql dsn is required for the mysql backend")
		}
		if _, err := mysql.ParseDSN(c.MySQLDSN); err != nil {
			return fmt.Errorf("config: invalid mysql dsn: %w", err)
		}
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("config: invalid log level: %w", err)
	}
	return lvl.Level(), nil
}
