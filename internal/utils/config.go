package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config struct holds listctl configuration
type Config struct {
	Separator string      `yaml:"separator"`
	Debug     bool        `yaml:"debug"`
	LogFile   string      `yaml:"log_file"`
	Fault     FaultConfig `yaml:"fault"`
}

// FaultConfig arms allocation failure injection. FailAt <= 0 disables it.
type FaultConfig struct {
	FailAt int    `yaml:"fail_at"`
	Kind   string `yaml:"kind"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultConfigPath returns ~/.sccroll/listctl.yaml, or the bare file name
// when the home directory is unknown.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "listctl.yaml"
	}
	return filepath.Join(homeDir, ".sccroll", "listctl.yaml")
}

// LoadConfig reads and parses the config file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getDefaultConfig(), nil
		}
		return nil, err
	}
	defer file.Close()

	config := &Config{}
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		// an empty file decodes to io.EOF
		if !errors.Is(err, io.EOF) {
			return nil, err
		}
	}

	applyDefaults(config)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that have no sensible default.
func (c *Config) Validate() error {
	switch c.Fault.Kind {
	case "any", "list", "node":
	default:
		return fmt.Errorf("%w: fault.kind %q", ErrInvalidConfig, c.Fault.Kind)
	}
	if c.Fault.FailAt < 0 {
		return fmt.Errorf("%w: fault.fail_at must not be negative", ErrInvalidConfig)
	}
	return nil
}

// getDefaultConfig returns default config values
func getDefaultConfig() *Config {
	return &Config{
		Separator: ", ",
		Fault:     FaultConfig{Kind: "any"},
	}
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	if config.Separator == "" {
		config.Separator = ", "
	}
	if config.Fault.Kind == "" {
		config.Fault.Kind = "any"
	}
}
