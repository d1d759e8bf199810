// Package config loads command defaults from an optional jsonquery config
// file and JSONQUERY_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. JSONQUERY_FORMAT
const EnvPrefix = "JSONQUERY"

// Config holds the settings flags fall back to when not given
type Config struct {
	// Source is the name queries select FROM
	Source    string `mapstructure:"source"`
	Format    string `mapstructure:"format"`
	Limit     int    `mapstructure:"limit"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Source:    "data",
		Format:    "jsonl",
		Limit:     0,
		LogLevel:  "warn",
		LogFormat: "logfmt",
	}
}

// Load reads settings in increasing priority: defaults, the config file,
// then environment variables.
//
// An empty file looks for jsonquery.{yaml,json,toml} in the working
// directory and ignores its absence. A named file must exist.
func Load(file string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("source", def.Source)
	v.SetDefault("format", def.Format)
	v.SetDefault("limit", def.Limit)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("jsonquery")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
