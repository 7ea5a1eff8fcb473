package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAPIRoot = "http://localhost:11434"
	DefaultModel   = "tiny_model:latest"
	DefaultTimeout = 60 * time.Second
)

// Default returns the built-in configuration without consulting the environment.
func Default() *Config {
	return &Config{
		APIRoot:      DefaultAPIRoot,
		DefaultModel: DefaultModel,
		Timeout:      DefaultTimeout,
	}
}

// LoadConfig builds the configuration from the registered defaults and
// validates it. No file, flag or environment variable is consulted.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("api_root", DefaultAPIRoot)
	v.SetDefault("default_model", DefaultModel)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("debug", false)

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Validate checks the fields the client cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIRoot) == "" {
		return errors.New("api_root is required")
	}
	if c.DefaultModel == "" {
		return errors.New("default_model is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
