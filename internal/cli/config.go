package cli

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the file-backed configuration consumed by the query command.
// Flags override anything set here.
type Config struct {
	Endpoint        string            `mapstructure:"endpoint"`
	TimeoutMS       int               `mapstructure:"timeout_ms"`
	MaxGETLength    int               `mapstructure:"max_get_length"`
	PreferredFormat string            `mapstructure:"preferred_format"`
	Headers         map[string]string `mapstructure:"headers"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{TimeoutMS: 30000}
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}
