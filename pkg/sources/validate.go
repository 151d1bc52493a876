package sources

import (
	"fmt"
	"strings"
)

// Validate checks the sources configuration for structural problems.
// It does not touch the file system; missing snapshot files surface
// later during ingest.
func (sc *SourcesConfig) Validate() error {
	if len(sc.Datasets) == 0 {
		return fmt.Errorf("sources.yaml defines no datasets")
	}

	seen := make(map[string]bool)
	for i, d := range sc.Datasets {
		provider := strings.ToLower(strings.TrimSpace(d.Provider))
		switch provider {
		case ProviderGBIF, ProviderINat:
		default:
			return fmt.Errorf(
				"dataset %d: unknown provider %q (expected %q or %q)",
				i+1, d.Provider, ProviderGBIF, ProviderINat)
		}

		if seen[provider] {
			return fmt.Errorf(
				"dataset %d: provider %q listed more than once", i+1, provider)
		}
		seen[provider] = true

		if strings.TrimSpace(d.Path) == "" {
			return fmt.Errorf("dataset %d (%s): path is empty", i+1, provider)
		}
	}
	return nil
}

// ByProvider returns the dataset for the given provider, or nil when
// the provider is not configured.
func (sc *SourcesConfig) ByProvider(provider string) *DatasetConfig {
	provider = strings.ToLower(strings.TrimSpace(provider))
	for i := range sc.Datasets {
		if strings.ToLower(strings.TrimSpace(sc.Datasets[i].Provider)) == provider {
			return &sc.Datasets[i]
		}
	}
	return nil
}
