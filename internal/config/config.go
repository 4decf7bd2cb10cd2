// Package config provides the YAML configuration surface for nush. The
// completion engine reads one snapshot per request and never mutates it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Algorithm names accepted in the completions section.
const (
	AlgorithmPrefix = "prefix"
	AlgorithmFuzzy  = "fuzzy"
)

// Sort modes accepted in the completions section.
const (
	SortSmart        = "smart"
	SortAlphabetical = "alphabetical"
)

// ExternalConfig configures the external completer bridge.
type ExternalConfig struct {
	// Enable gates the external completer even when a closure is
	// registered.
	Enable bool `yaml:"enable"`
	// MaxResults caps how many suggestions an external completer may
	// contribute. Zero means unlimited.
	MaxResults int `yaml:"max_results"`
}

// CompletionsConfig configures the completion engine.
type CompletionsConfig struct {
	CaseSensitive bool           `yaml:"case_sensitive"`
	Algorithm     string         `yaml:"algorithm"`
	Sort          string         `yaml:"sort"`
	External      ExternalConfig `yaml:"external"`
}

// Config is the root configuration document.
type Config struct {
	Completions CompletionsConfig `yaml:"completions"`
}

// DefaultConfig returns the built-in defaults: case-insensitive prefix
// matching with smart sorting and the external completer enabled.
func DefaultConfig() *Config {
	return &Config{
		Completions: CompletionsConfig{
			CaseSensitive: false,
			Algorithm:     AlgorithmPrefix,
			Sort:          SortSmart,
			External: ExternalConfig{
				Enable:     true,
				MaxResults: 100,
			},
		},
	}
}

// LoadFromFile loads configuration from a YAML file. A missing file returns
// the defaults with no error; a malformed file returns an error.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Completions.Algorithm {
	case AlgorithmPrefix, AlgorithmFuzzy:
	default:
		return fmt.Errorf("unknown completion algorithm %q", cfg.Completions.Algorithm)
	}
	switch cfg.Completions.Sort {
	case SortSmart, SortAlphabetical:
	default:
		return fmt.Errorf("unknown completion sort mode %q", cfg.Completions.Sort)
	}
	return nil
}
