package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	DefaultCacheRoot = ".cache"
	DefaultWorkers   = 5
	DefaultMode      = ModeBuild
	DefaultInterval  = 10 * time.Second
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sitewright"
	}
	return filepath.Join(home, ".sitewright")
}

// QueueDir returns the default durable queue directory
func QueueDir() string {
	return filepath.Join(ConfigDir(), "queue")
}

// Default returns a configuration populated with defaults
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	cfg.Queue.Directory = QueueDir()
	return cfg
}
