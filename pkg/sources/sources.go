// Package sources provides configuration and validation for occurrence
// dataset snapshots.
//
// This package defines the schema for sources.yaml, which users provide
// to point GNoccur at the static provider exports (GBIF and
// iNaturalist CSV snapshots) to process. Network downloads are outside
// the pipeline; the snapshots are expected on disk.
package sources

// Provider identifiers accepted in sources.yaml.
const (
	ProviderGBIF = "gbif"
	ProviderINat = "inaturalist"
)

type Sources interface {
	Load() (*SourcesConfig, error)
}

// SourcesConfig represents the complete sources.yaml configuration file.
type SourcesConfig struct {
	// Datasets is the list of provider snapshots to ingest.
	Datasets []DatasetConfig `yaml:"datasets"`
}

// DatasetConfig describes one provider snapshot.
type DatasetConfig struct {
	// Provider is "gbif" or "inaturalist".
	Provider string `yaml:"provider"`

	// Path is the location of the CSV snapshot on disk.
	Path string `yaml:"path"`

	// Title is an optional human-readable label used in logs.
	Title string `yaml:"title,omitempty"`
}
