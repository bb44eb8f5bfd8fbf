// Package config loads the driver configuration from PATTERNS_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Prefix is prepended to every variable name.
const Prefix = "PATTERNS_"

// ErrInvalidConfig is returned when a parsed value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of the example drivers.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// FlyweightWorkers is the size of the flyweight worker pool.
	FlyweightWorkers int `env:"FLYWEIGHT_WORKERS" envDefault:"5"`

	// FlyweightTimeout bounds each shutdown phase of the worker pool.
	FlyweightTimeout time.Duration `env:"FLYWEIGHT_TIMEOUT" envDefault:"60s"`

	// ProxyLoadAttempts is how many times the image proxy tries to load.
	ProxyLoadAttempts uint `env:"PROXY_LOAD_ATTEMPTS" envDefault:"3"`

	// IteratorFile is read by the iterator demo; empty means the bundled sample.
	IteratorFile string `env:"ITERATOR_FILE"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom parses the given variables instead of the process environment.
// Keys carry the full name, prefix included.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports ErrInvalidConfig for non-positive sizes and timeouts.
func (c Config) Validate() error {
	switch {
	case c.FlyweightWorkers <= 0:
		return fmt.Errorf("%w: FLYWEIGHT_WORKERS must be positive, got %d", ErrInvalidConfig, c.FlyweightWorkers)
	case c.FlyweightTimeout <= 0:
		return fmt.Errorf("%w: FLYWEIGHT_TIMEOUT must be positive, got %s", ErrInvalidConfig, c.FlyweightTimeout)
	case c.ProxyLoadAttempts == 0:
		return fmt.Errorf("%w: PROXY_LOAD_ATTEMPTS must be positive", ErrInvalidConfig)
	}

	return nil
}
