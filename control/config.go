// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Benchmark configuration: YAML file, defaults, validation.

package control

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/momentics/lfkit/local"
)

// Back-off modes for contended workloads.
const (
	BackoffNone   = "none"
	BackoffExp    = "exp"
	BackoffJitter = "jitter"
)

// Storage modes for thread-local state.
const (
	StorageDynamic = "dynamic"
	StorageStatic  = "static"
)

// Config describes one lfbench run.
type Config struct {
	Workers    int    `yaml:"workers"`
	Iterations int    `yaml:"iterations"`
	Backoff    string `yaml:"backoff"`
	Storage    string `yaml:"storage"`
	Capacity   int    `yaml:"capacity"`
	PinThreads bool   `yaml:"pin_threads"`
	LogLevel   string `yaml:"log_level"`
}

// Default returns a config with every field at its default.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// setDefaults applies default values to unset fields.
func (c *Config) setDefaults() {
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Iterations == 0 {
		c.Iterations = 100_000
	}
	if c.Backoff == "" {
		c.Backoff = BackoffJitter
	}
	if c.Storage == "" {
		c.Storage = StorageDynamic
	}
	if c.Storage == StorageStatic && c.Capacity == 0 {
		c.Capacity = local.DefaultStaticCapacity
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", c.Iterations)
	}
	switch c.Backoff {
	case BackoffNone, BackoffExp, BackoffJitter:
	default:
		return fmt.Errorf("unknown backoff mode %q", c.Backoff)
	}
	switch c.Storage {
	case StorageDynamic:
	case StorageStatic:
		if c.Capacity < c.Workers {
			return fmt.Errorf("static capacity %d is below worker count %d", c.Capacity, c.Workers)
		}
	default:
		return fmt.Errorf("unknown storage mode %q", c.Storage)
	}
	return nil
}

// LocalOptions translates the storage settings into ThreadLocal options.
func (c *Config) LocalOptions() []local.Option {
	if c.Storage == StorageStatic {
		return []local.Option{local.WithCapacity(c.Capacity)}
	}
	return []local.Option{local.WithDynamic()}
}
