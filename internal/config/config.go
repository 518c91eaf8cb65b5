// Package config loads the settings of the ckminer command from defaults, an
// optional ckminer.yaml file, CKMINER_ environment variables and command line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every ckminer command.
type Config struct {
	// Format is the output format: text, table, json or yaml
	Format string `mapstructure:"format"`
	// Words selects the word notation for FDs, see candkey.ParseWordFDs
	Words bool `mapstructure:"words"`
	// MaxAttributes is the largest heading keys are searched for, or 0 for
	// no limit
	MaxAttributes int `mapstructure:"max-attributes"`
	// Timeout bounds the key search, or 0 for no limit
	Timeout time.Duration `mapstructure:"timeout"`
	Log     LogConfig     `mapstructure:"log"`
}

// LogConfig holds the logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults are used for any setting not given elsewhere.
var Defaults = map[string]any{
	"format":         "text",
	"words":          false,
	"max-attributes": 20,
	"timeout":        "0s",
	"log.level":      "warn",
	"log.format":     "text",
}

// Formats are the valid values of Config.Format.
var Formats = []string{"text", "table", "json", "yaml"}

// configDir returns the user config directory for ckminer.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "ckminer"), nil
}

// Load builds the configuration.  If path is not empty that file is read
// and must exist, otherwise ckminer.yaml is looked for in the user config
// directory and then the current directory.  Flags that were set on the
// command line override everything else.
func Load(flags *pflag.FlagSet, path string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("ckminer")
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, unless it was asked for.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("ckminer")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return c, fmt.Errorf("config: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	return c, c.Validate()
}

// Validate returns an error if a setting has an unknown value.
func (c Config) Validate() error {
	valid := false
	for _, f := range Formats {
		if c.Format == f {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("config: unknown format %q, expected one of %s", c.Format, strings.Join(Formats, ", "))
	}
	if c.MaxAttributes < 0 {
		return fmt.Errorf("config: max-attributes must not be negative, got %d", c.MaxAttributes)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %v", c.Timeout)
	}
	return nil
}
