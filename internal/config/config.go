package config

import (
	"fmt"
	"time"
)

// Build modes. In build mode the query-tracking index is complete and one
// batch runs at the end; in develop mode tracking data may be partial and
// batches run periodically. The resolver applies the same priority order
// in both modes.
const (
	ModeBuild   = "build"
	ModeDevelop = "develop"
)

// Config represents the application configuration
type Config struct {
	Cache       CacheConfig       `mapstructure:"cache" yaml:"cache"`
	Queue       QueueConfig       `mapstructure:"queue" yaml:"queue"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency" yaml:"concurrency"`
	Build       BuildConfig       `mapstructure:"build" yaml:"build"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
}

// CacheConfig contains artifact output settings
type CacheConfig struct {
	Root string `mapstructure:"root" yaml:"root"`
}

// QueueConfig contains pending queue settings
type QueueConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	InMemory  bool   `mapstructure:"in_memory" yaml:"in_memory"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// BuildConfig contains build milestone settings
type BuildConfig struct {
	Mode     string        `mapstructure:"mode" yaml:"mode"`
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

// TrackingComplete reports whether query-tracking data can be trusted as
// complete. It only affects when batches run, never how resolution matches.
func (b BuildConfig) TrackingComplete() bool {
	return b.Mode == ModeBuild
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and clamps invalid values to defaults
func (c *Config) Validate() error {
	if c.Cache.Root == "" {
		c.Cache.Root = DefaultCacheRoot
	}
	if c.Concurrency.Workers < 1 {
		c.Concurrency.Workers = DefaultWorkers
	}
	if c.Build.Mode == "" {
		c.Build.Mode = DefaultMode
	}
	if c.Build.Mode != ModeBuild && c.Build.Mode != ModeDevelop {
		return fmt.Errorf("invalid build mode %q (use %q or %q)", c.Build.Mode, ModeBuild, ModeDevelop)
	}
	if c.Build.Interval < time.Second {
		c.Build.Interval = DefaultInterval
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
