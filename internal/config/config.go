// Package config resolves quarry settings from flags, QUARRY_* environment
// variables and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. QUARRY_LOG_LEVEL.
const EnvPrefix = "QUARRY"

// Keys, shared by flags, environment variables and the config file.
const (
	KeyConfig   = "config"
	KeyData     = "data"
	KeyFormat   = "format"
	KeyLogLevel = "log-level"
	KeyDatabase = "database"
	KeyVerbose  = "verbose"
)

// ErrInvalid is returned for values that fail validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved configuration.
type Config struct {
	// Data is a dataset file; empty means the built-in sample.
	Data string
	// Format is the output format, "text" or "json".
	Format string
	// LogLevel is the minimum level logged to stderr.
	LogLevel slog.Level
	// Database is the SQLite DSN of the reference backend.
	Database string
}

var defaults = map[string]any{
	KeyData:     "",
	KeyFormat:   "text",
	KeyLogLevel: "info",
	KeyDatabase: ":memory:",
}

// Load resolves the configuration. Precedence, highest first: flags set on
// the command line, environment, config file, defaults. Flags in fs that
// are not configuration keys are ignored; keys without a flag can still be
// set by environment or file.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading configuration file '%s': %w", path, err)
		}
		for _, key := range v.AllKeys() {
			if _, ok := defaults[key]; ok {
				continue
			}
			if fs != nil && fs.Lookup(key) != nil {
				continue
			}
			return Config{}, fmt.Errorf("%w: unknown option in configuration file: %s", ErrInvalid, key)
		}
	}

	cfg := Config{
		Data:     v.GetString(KeyData),
		Format:   strings.ToLower(v.GetString(KeyFormat)),
		Database: v.GetString(KeyDatabase),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("%w: log-level: %v", ErrInvalid, err)
	}
	if v.GetBool(KeyVerbose) {
		cfg.LogLevel = slog.LevelDebug
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value constraints.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: format must be text or json, got %q", ErrInvalid, c.Format)
	}
	if c.Database == "" {
		return fmt.Errorf("%w: database must not be empty", ErrInvalid)
	}
	return nil
}
