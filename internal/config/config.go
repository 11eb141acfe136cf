// Package config loads the CLI configuration from a yaml file, applies
// environment overrides, and validates the result before anything talks to
// the network.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EnvAPIURL overrides the configured API base URL.
	EnvAPIURL = "BLOODLINK_API_URL"
	// EnvPublishableKey overrides the identity provider's publishable key.
	EnvPublishableKey = "BLOODLINK_AUTH_PUBLISHABLE_KEY"
)

// AuthConfig describes the identity provider the dashboard signs in with.
type AuthConfig struct {
	AuthURL        string `yaml:"authURL" validate:"required,url"`
	TokenURL       string `yaml:"tokenURL" validate:"required,url"`
	ClientID       string `yaml:"clientID" validate:"required"`
	PublishableKey string `yaml:"publishableKey" validate:"required"`
	TokenTemplate  string `yaml:"tokenTemplate,omitempty"`
}

// Config represents the application configuration.
type Config struct {
	APIBaseURL            string     `yaml:"apiBaseURL" validate:"required,url"`
	RequestTimeoutSeconds int        `yaml:"requestTimeoutSeconds,omitempty" validate:"omitempty,min=1"`
	Auth                  AuthConfig `yaml:"auth" validate:"required"`
}

// RequestTimeout returns the configured timeout, or zero when unset so the
// client falls back to its default.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from bloodlink.yaml, looking in
// the current directory first, then in the user's home directory.
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for an environment; env="staging"
// resolves bloodlink.staging.yaml. A .env file in the working directory is
// applied first (best effort), and BLOODLINK_* variables override the file's
// values afterwards.
func LoadWithEnv(env string) (*Config, error) {
	// Missing .env is the common case, not an error
	_ = godotenv.Load()

	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvPublishableKey); v != "" {
		cfg.Auth.PublishableKey = v
	}
	if cfg.Auth.TokenTemplate == "" {
		cfg.Auth.TokenTemplate = "default"
	}
}

// findConfigFile searches for the config file in the current directory and
// the home directory. With an env it resolves bloodlink.<env>.yaml.
func findConfigFile(env string) (string, error) {
	configFileName := "bloodlink.yaml"
	if env != "" {
		configFileName = "bloodlink." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", configFileName)
}
