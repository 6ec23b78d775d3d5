// Package config loads the navigator's tool configuration and the
// optional workspace pre-registration file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultHomeName is the workspace home directory under $HOME.
const DefaultHomeName = ".depnav"

// HomeEnvVar overrides the workspace home location.
const HomeEnvVar = "DEPNAV_HOME"

// Config represents the complete navigator configuration
type Config struct {
	Version int           `json:"version" mapstructure:"version"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Home returns the workspace home directory, honoring DEPNAV_HOME.
func Home() (string, error) {
	if custom := os.Getenv(HomeEnvVar); custom != "" {
		return custom, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userHome, DefaultHomeName), nil
}

// LoadConfig loads configuration from <home>/config.json, falling back to
// defaults when the file does not exist.
func LoadConfig(home string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(home)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to <home>/config.json
func (c *Config) Save(home string) error {
	if err := os.MkdirAll(home, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(home, "config.json"), data, 0644)
}
