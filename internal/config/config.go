// Package config manages application configuration using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Async  AsyncConfig  `mapstructure:"async"`
	Prompt PromptConfig `mapstructure:"prompt"`
	Colors ColorsConfig `mapstructure:"colors"`
	Debug  bool         `mapstructure:"debug"`
}

// AsyncConfig controls how git status is refreshed.
type AsyncConfig struct {
	// Method forces a refresh strategy: "worker", "signal" or "sync".
	// Empty means auto-detect.
	Method string `mapstructure:"method"`
}

// PromptConfig controls prompt layout.
type PromptConfig struct {
	// PathSegments is how many trailing directory segments to keep when
	// abbreviating the working directory. Non-positive values fall back
	// to the default of 2.
	PathSegments int `mapstructure:"path_segments"`
	// Multiline puts the input line on its own row below the info line.
	Multiline bool `mapstructure:"multiline"`
	// Char is the prompt character shown in insert mode.
	Char string `mapstructure:"char"`
}

// ColorsConfig overrides the default color for each semantic role.
// Values are hex colors like "#a6e3a1"; empty keeps the default.
type ColorsConfig struct {
	Status string `mapstructure:"status"`
	Host   string `mapstructure:"host"`
	Path   string `mapstructure:"path"`
	Branch string `mapstructure:"branch"`
}

// Load loads configuration from files and environment variables.
// It searches for config files in the following order:
// 1. /etc/promptline/config.{toml,yaml,yml}
// 2. $XDG_CONFIG_HOME/promptline/config.{toml,yaml,yml} (or ~/.config/promptline/)
// 3. ./config.{toml,yaml,yml}
//
// Environment variables override file settings using the prefix PROMPTLINE_
// For example: PROMPTLINE_ASYNC_METHOD=sync
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name (without extension)
	v.SetConfigName("config")

	// Add config search paths
	v.AddConfigPath("/etc/promptline/")
	v.AddConfigPath(getXDGConfigPath())
	v.AddConfigPath(".")

	// Set environment variable prefix
	v.SetEnvPrefix("PROMPTLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Try to read config file (it's OK if it doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		// Only return error if it's not a "not found" error
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Unmarshal config into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadWithViper loads configuration using a provided Viper instance.
// This is useful for testing or when you want to configure Viper differently.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("prompt.path_segments", 2)
	v.SetDefault("prompt.char", "%")
}

// getXDGConfigPath returns the XDG config directory for promptline.
func getXDGConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "promptline")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home
		return "."
	}

	return filepath.Join(homeDir, ".config", "promptline")
}

// ConfigFileUsed returns the path of the config file that was loaded, if any.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
