package manifest

import (
	"fmt"
	"time"

	"github.com/dtnitsch/dataset-split/models"
	"github.com/dtnitsch/dataset-split/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Build assembles the manifest for a split produced under cfg.
func Build(cfg models.SplitConfig, split models.Split) SplitManifest {
	m := SplitManifest{
		GeneratedAt:   time.Now().Format(time.RFC3339),
		DatasetDir:    cfg.DatasetDir,
		Suffix:        cfg.Suffix,
		Deterministic: cfg.Deterministic,
		Seed:          split.Seed,
		Total:         split.Total(),
		TrainingCount: len(split.Training),
		TestingCount:  len(split.Testing),
		Training:      split.Training,
		Testing:       split.Testing,
		TrainingFiles: split.TrainingFiles,
		TestingFiles:  split.TestingFiles,
	}
	// Empty subsets are written as [] rather than null.
	if m.Training == nil {
		m.Training = []string{}
	}
	if m.Testing == nil {
		m.Testing = []string{}
	}
	return m
}

// Write marshals m as YAML and saves it at path.
func Write(path string, m SplitManifest, s *storage.Storage) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("error marshalling manifest: %w", err)
	}
	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving manifest: %w", err)
	}
	return nil
}

// Read loads a manifest previously written by Write.
func Read(path string, s *storage.Storage) (*SplitManifest, error) {
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m SplitManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("error parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// Split converts the manifest back into a split.
func (m *SplitManifest) Split() models.Split {
	return models.Split{
		Training:      m.Training,
		Testing:       m.Testing,
		TrainingFiles: m.TrainingFiles,
		TestingFiles:  m.TestingFiles,
		Seed:          m.Seed,
	}
}
