package config

import (
	"github.com/spf13/viper"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/classifier"
)

type Config struct {
	// Categories is the injectable classification table: label to
	// lowercase dot-extensions. Empty means the built-in table.
	Categories map[string][]string

	Cache struct {
		Path string
	}
	Performance struct {
		Workers int
	}
	Logging struct {
		Level string
		File  string
	}
}

var cfg Config

// Load reads config.yaml from the usual locations and fills in
// defaults for anything missing. A missing config file is not an error.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.file-organizer")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/file-organizer")

	viper.SetDefault("cache.path", internal.DefaultCachePath)
	viper.SetDefault("performance.workers", internal.DefaultWorkers)
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}

// Table returns the configured classification table, falling back to
// the built-in rules when the config carries none.
func (c *Config) Table() classifier.Table {
	if len(c.Categories) == 0 {
		return classifier.DefaultTable()
	}
	return classifier.Table(c.Categories)
}
