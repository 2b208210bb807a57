// Package config loads menagerie settings from the configuration directory.
//
// Sources, lowest precedence first: built-in defaults, config.yaml, the
// .env file in the configuration directory, MENAGERIE_* environment
// variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/menagerie/internal/paths"
	"github.com/mesh-intelligence/menagerie/pkg/types"
)

// Config keys. Environment variables use the MENAGERIE_ prefix and the
// upper-cased key, e.g. MENAGERIE_LOCALE.
const (
	KeyLocale   = "locale"
	KeyLogLevel = "log_level"

	envPrefix = "MENAGERIE"
)

// Load reads the configuration for configDir. A missing config.yaml or
// .env is not an error. If flags is non-nil, a "locale" flag that was set
// on the command line overrides every other source.
func Load(configDir string, flags *pflag.FlagSet) (types.Config, error) {
	if err := loadEnvFile(paths.EnvFile(configDir)); err != nil {
		return types.Config{}, err
	}

	v := viper.New()
	v.SetDefault(KeyLocale, types.DefaultLocale)
	v.SetDefault(KeyLogLevel, types.DefaultLogLevel)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup(KeyLocale); f != nil {
			if err := v.BindPFlag(KeyLocale, f); err != nil {
				return types.Config{}, fmt.Errorf("bind locale flag: %w", err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Locale:   v.GetString(KeyLocale),
		LogLevel: v.GetString(KeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// loadEnvFile exports the variables in path without overriding ones that
// are already set.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// WriteDefault creates configDir and writes a config.yaml holding the
// default settings. An existing file is left untouched and created is
// false.
func WriteDefault(configDir string) (created bool, err error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	path := paths.ConfigFile(configDir)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(types.Config{
		Locale:   types.DefaultLocale,
		LogLevel: types.DefaultLogLevel,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
