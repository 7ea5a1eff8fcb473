package config

import "time"

// Config holds the client configuration.
type Config struct {
	APIRoot      string        `mapstructure:"api_root"`
	DefaultModel string        `mapstructure:"default_model"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Debug        bool          `mapstructure:"debug"`
}
