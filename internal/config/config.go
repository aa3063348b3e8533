// Package config loads vgdat settings.
package config

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding settings,
// e.g. VGDAT_LOG_LEVEL or VGDAT_JSON_INDENT.
const EnvPrefix = "VGDAT"

// Config holds vgdat settings.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	JSON     JSON   `mapstructure:"json"`
	Dump     Dump   `mapstructure:"dump"`
}

// JSON configures the json command.
type JSON struct {
	Indent bool `mapstructure:"indent"`
}

// Dump configures the dump command.
type Dump struct {
	Snappy bool `mapstructure:"snappy"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// Level returns the parsed log level.
func (c *Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}

// Load reads settings from the file at path, if not empty, and from the
// environment. Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("json.indent", defaults.JSON.Indent)
	v.SetDefault("dump.snappy", defaults.Dump.Snappy)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
