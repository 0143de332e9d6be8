// Package config provides configuration management for the gateway.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	apperrors "kite-mcp-gateway/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig `mapstructure:"server"`
	Log         LogConfig    `mapstructure:"log"`
	Credentials Credentials  `mapstructure:"-"` // Loaded separately
}

// ServerConfig holds transport configuration.
type ServerConfig struct {
	Listen        string `mapstructure:"listen"`         // SSE listen address
	ExcludedTools string `mapstructure:"excluded_tools"` // comma-separated tool names
}

// LogConfig holds logging configuration overrides.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Credentials holds API credentials.
type Credentials struct {
	Kite KiteCredentials `mapstructure:"kite"`
}

// KiteCredentials holds Kite Connect API credentials.
type KiteCredentials struct {
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/kite-mcp-gateway"
	}
	return filepath.Join(home, ".config", "kite-mcp-gateway")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
// Missing files are not an error: environment variables alone can
// supply the credentials.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{
		Server: ServerConfig{
			Listen: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := loadCredentials(configDir, &cfg.Credentials); err != nil {
		return nil, fmt.Errorf("loading credentials.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return v.Unmarshal(target)
}

func loadCredentials(configDir string, creds *Credentials) error {
	v := viper.New()
	v.SetConfigName("credentials")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return v.Unmarshal(creds)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KITE_API_KEY"); v != "" {
		cfg.Credentials.Kite.APIKey = v
	}
	if v := os.Getenv("KITE_API_SECRET"); v != "" {
		cfg.Credentials.Kite.APISecret = v
	}
	if v := os.Getenv("KITE_EXCLUDED_TOOLS"); v != "" {
		cfg.Server.ExcludedTools = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Credentials.Kite.APIKey == "" {
		return fmt.Errorf("%w: kite api_key is not set (KITE_API_KEY or credentials.toml)", apperrors.ErrConfigInvalid)
	}
	if c.Credentials.Kite.APISecret == "" {
		return fmt.Errorf("%w: kite api_secret is not set (KITE_API_SECRET or credentials.toml)", apperrors.ErrConfigInvalid)
	}
	return nil
}
