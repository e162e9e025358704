package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults. Uses the
// global viper instance so CLI flag bindings are honored.
func Load() (*Config, error) {
	v := viper.GetViper()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix("SITEWRIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values on a viper instance
func setDefaults(v *viper.Viper) {
	v.SetDefault("cache.root", DefaultCacheRoot)
	v.SetDefault("queue.directory", QueueDir())
	v.SetDefault("queue.in_memory", false)
	v.SetDefault("concurrency.workers", DefaultWorkers)
	v.SetDefault("build.mode", DefaultMode)
	v.SetDefault("build.interval", DefaultInterval)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
