// Package iosources loads and validates sources.yaml, the list of
// provider snapshots the pipeline ingests.
package iosources

import (
	"fmt"
	"os"

	"github.com/gnames/gnoccur/pkg/config"
	"github.com/gnames/gnoccur/pkg/sources"
	"gopkg.in/yaml.v3"
)

type iosources struct {
	cfg *config.Config
}

func New(cfg *config.Config) sources.Sources {
	res := iosources{cfg: cfg}
	return &res
}

func (s *iosources) Load() (*sources.SourcesConfig, error) {
	sourcesPath := config.SourcesFilePath(s.cfg.HomeDir)
	sourcesConfig, err := loadSourcesConfig(sourcesPath)
	if err != nil {
		return nil, SourcesConfigError(sourcesPath, err)
	}
	return sourcesConfig, nil
}

// loadSourcesConfig reads and validates sources.yaml from disk.
// Structure validation is delegated to sources.SourcesConfig.Validate;
// snapshot file existence is checked here, in the I/O layer.
func loadSourcesConfig(path string) (*sources.SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources config file: %w", err)
	}

	var config sources.SourcesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse sources config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := validateSnapshotFiles(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateSnapshotFiles(config *sources.SourcesConfig) error {
	for _, ds := range config.Datasets {
		info, err := os.Stat(ds.Path)
		if err != nil {
			return fmt.Errorf("snapshot file %q is not readable: %w",
				ds.Path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("snapshot path %q is a directory", ds.Path)
		}
	}
	return nil
}
