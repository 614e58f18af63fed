// Package config loads the storefront configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"github.com/rai/storefront-checkout-go/internal/platform/httpserver"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete storefront configuration. Unset variables keep
// the defaults from Default.
type Config struct {
	HTTP struct {
		Host string `env:"STOREFRONT_HTTP_HOST"`
		Port int    `env:"STOREFRONT_HTTP_PORT"`
	}

	Log struct {
		Level string `env:"STOREFRONT_LOG_LEVEL"`
	}

	Catalog struct {
		ProductAPIURL string `env:"STOREFRONT_PRODUCT_API_URL"`
		SeedPath      string `env:"STOREFRONT_CATALOG_SEED"`
	}

	Orders struct {
		OrderAPIURL        string `env:"STOREFRONT_ORDER_API_URL"`
		APITimeout         string `env:"STOREFRONT_API_TIMEOUT"`
		BreakerFailures    int    `env:"STOREFRONT_BREAKER_FAILURES"`
		BreakerOpenTimeout string `env:"STOREFRONT_BREAKER_OPEN_TIMEOUT"`
	}
}

func Default() Config {
	var cfg Config
	cfg.HTTP.Port = httpserver.DefaultConfig().Port
	cfg.Log.Level = "info"
	cfg.Orders.APITimeout = "10s"
	cfg.Orders.BreakerFailures = 5
	cfg.Orders.BreakerOpenTimeout = "30s"
	return cfg
}

// Load reads the given .env files, when present, and then the process
// environment. Variables already set in the environment win over .env files.
func Load(dotenvFiles ...string) (Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	cfg := Default()
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.HTTP.Port)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.APITimeout(); err != nil {
		return err
	}
	if _, err := c.BreakerOpenTimeout(); err != nil {
		return err
	}
	if c.Orders.BreakerFailures < 1 {
		return fmt.Errorf("%w: breaker failures must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// Server returns the HTTP server settings.
func (c Config) Server() httpserver.Config {
	srv := httpserver.DefaultConfig()
	srv.Host = c.HTTP.Host
	srv.Port = c.HTTP.Port
	return srv
}

func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return level, nil
}

func (c Config) APITimeout() (time.Duration, error) {
	return positiveDuration("api timeout", c.Orders.APITimeout)
}

func (c Config) BreakerOpenTimeout() (time.Duration, error) {
	return positiveDuration("breaker open timeout", c.Orders.BreakerOpenTimeout)
}

func positiveDuration(name, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidConfig, name, raw)
	}
	return d, nil
}
