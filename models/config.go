// Package models defines data structures for configuration and split results.
package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDatasetDir = "dataset"
	DefaultSuffix     = "html.gz"
	DefaultFixedSeed  = 12345678
)

// SplitConfig holds runtime configuration for a split run.
// Values come from an optional YAML file, then CLI flags on top.
type SplitConfig struct {
	DatasetDir    string `yaml:"dataset_dir"`
	Suffix        string `yaml:"suffix"`
	Deterministic bool   `yaml:"deterministic"`
	FixedSeed     int64  `yaml:"fixed_seed"`
	UniqueIDs     bool   `yaml:"unique_ids"`
}

// DefaultSplitConfig returns the configuration used when nothing is set.
func DefaultSplitConfig() SplitConfig {
	return SplitConfig{
		DatasetDir: DefaultDatasetDir,
		Suffix:     DefaultSuffix,
		FixedSeed:  DefaultFixedSeed,
	}
}

// LoadConfig reads a YAML config file over the defaults.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (SplitConfig, error) {
	cfg := DefaultSplitConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields every run depends on.
func (c SplitConfig) Validate() error {
	if c.DatasetDir == "" {
		return errors.New("dataset_dir must not be empty")
	}
	if c.Suffix == "" {
		return errors.New("suffix must not be empty")
	}
	return nil
}
