package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ChunkSize int    `yaml:"chunk_size"` // Maximum bytes read per segment
	Digest    string `yaml:"digest"`     // Digest strategy: accelerated or reference
	Zstd      bool   `yaml:"zstd"`       // Treat file input as zstd compressed
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		ChunkSize: 1024 * 1024 * 100, // 100MB
		Digest:    "accelerated",
		Zstd:      false,
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := *DefaultConfig()

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be greater than 0")
	}

	switch config.Digest {
	case "accelerated", "reference", "":
	default:
		return fmt.Errorf("digest must be either accelerated or reference")
	}

	return nil
}
