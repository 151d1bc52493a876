// Package config provides configuration management for GNoccur.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation of option inputs may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - Validate() checks cross-field constraints (bounding box ordering,
//   weight sums) and returns fatal errors before any processing starts
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Environment Variables
//
// Use GNOCCUR_ prefix with underscores for nesting:
//
//	GNOCCUR_REGION_LAT_MIN=34.0
//	GNOCCUR_GRID_CELL_SIZE_DEGREES=0.1
//	GNOCCUR_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete GNoccur configuration.
type Config struct {
	// Region describes the study region and its bounding box.
	Region RegionConfig `mapstructure:"region" yaml:"region"`

	// Quality contains the coordinate-quality filter settings.
	Quality QualityConfig `mapstructure:"quality" yaml:"quality"`

	// Grid contains spatial grid settings.
	Grid GridConfig `mapstructure:"grid" yaml:"grid"`

	// Scoring contains priority scoring weights and thresholds.
	Scoring ScoringConfig `mapstructure:"scoring" yaml:"scoring"`

	// Database contains PostgreSQL connection settings for the
	// postgres export format.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for name parsing.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// RegionConfig describes the study region. Records outside the bounding
// box are dropped by the quality filter.
type RegionConfig struct {
	// Name is the human-readable region name. It is also used as the
	// stateProvince value for citizen-science records that carry none.
	Name string `mapstructure:"name" yaml:"name"`

	// LatMin and LatMax bound latitude in decimal degrees.
	LatMin float64 `mapstructure:"lat_min" yaml:"lat_min"`
	LatMax float64 `mapstructure:"lat_max" yaml:"lat_max"`

	// LonMin and LonMax bound longitude in decimal degrees.
	LonMin float64 `mapstructure:"lon_min" yaml:"lon_min"`
	LonMax float64 `mapstructure:"lon_max" yaml:"lon_max"`
}

// QualityConfig contains thresholds for the quality filter.
type QualityConfig struct {
	// MaxUncertaintyMeters is the inclusive ceiling for
	// coordinateUncertaintyInMeters. Records with absent uncertainty
	// pass the filter.
	MaxUncertaintyMeters float64 `mapstructure:"max_uncertainty_meters" yaml:"max_uncertainty_meters"`
}

// GridConfig contains spatial grid settings.
type GridConfig struct {
	// CellSizeDegrees is the side of a grid cell in decimal degrees.
	CellSizeDegrees float64 `mapstructure:"cell_size_degrees" yaml:"cell_size_degrees"`
}

// ScoreStep is one step of a monotone step function over counts.
// Steps are evaluated in ascending Max order, first match wins;
// counts above the last step get the function's default score.
type ScoreStep struct {
	// Max is the inclusive upper bound of the step.
	Max int `mapstructure:"max" yaml:"max"`

	// Score is the value assigned when a count falls into the step.
	Score float64 `mapstructure:"score" yaml:"score"`
}

// TrendConfig controls the temporal-trend sub-score.
type TrendConfig struct {
	// SplitYear partitions occurrences into early (year < SplitYear)
	// and recent (year >= SplitYear) periods.
	SplitYear int `mapstructure:"split_year" yaml:"split_year"`

	// DeclineCutoff: trend below this value scores Decline.
	DeclineCutoff int `mapstructure:"decline_cutoff" yaml:"decline_cutoff"`

	// StableCutoff: a non-negative trend up to this value scores Stable.
	StableCutoff int `mapstructure:"stable_cutoff" yaml:"stable_cutoff"`

	// Disappeared scores species with early records and none recent.
	Disappeared float64 `mapstructure:"disappeared" yaml:"disappeared"`
	// Decline scores trend < DeclineCutoff.
	Decline float64 `mapstructure:"decline" yaml:"decline"`
	// SlightDecline scores any other negative trend.
	SlightDecline float64 `mapstructure:"slight_decline" yaml:"slight_decline"`
	// Stable scores 0 <= trend <= StableCutoff.
	Stable float64 `mapstructure:"stable" yaml:"stable"`
	// Increase scores trend > StableCutoff.
	Increase float64 `mapstructure:"increase" yaml:"increase"`
	// Neutral is assigned when a species has no year data in either
	// period. Carried over from the source analysis as an explicit
	// fallback rather than excluding such species from scoring.
	Neutral float64 `mapstructure:"neutral" yaml:"neutral"`
}

// SpeciesWeights combines the three species sub-scores. Must sum to 1.
type SpeciesWeights struct {
	Rarity float64 `mapstructure:"rarity" yaml:"rarity"`
	Range  float64 `mapstructure:"range" yaml:"range"`
	Trend  float64 `mapstructure:"trend" yaml:"trend"`
}

// AreaWeights combines the three normalized area sub-scores. Must sum to 1.
type AreaWeights struct {
	Priority  float64 `mapstructure:"priority" yaml:"priority"`
	Corrected float64 `mapstructure:"corrected" yaml:"corrected"`
	Total     float64 `mapstructure:"total" yaml:"total"`
}

// TierCutoffs maps a continuous score to a discrete priority tier.
// Each cutoff is the inclusive lower bound of its tier; scores below
// Medium fall into the Low tier.
type TierCutoffs struct {
	Critical float64 `mapstructure:"critical" yaml:"critical"`
	High     float64 `mapstructure:"high" yaml:"high"`
	Medium   float64 `mapstructure:"medium" yaml:"medium"`
}

// ScoringConfig contains priority scoring weights and thresholds.
type ScoringConfig struct {
	// RaritySteps maps totalRecords to the rarity sub-score.
	RaritySteps []ScoreStep `mapstructure:"rarity_steps" yaml:"rarity_steps"`

	// RarityDefault is the rarity score above the last step.
	RarityDefault float64 `mapstructure:"rarity_default" yaml:"rarity_default"`

	// RangeSteps maps occupied grid-cell counts to the range sub-score.
	RangeSteps []ScoreStep `mapstructure:"range_steps" yaml:"range_steps"`

	// RangeDefault is the range score above the last step.
	RangeDefault float64 `mapstructure:"range_default" yaml:"range_default"`

	Trend TrendConfig `mapstructure:"trend" yaml:"trend"`

	SpeciesWeights SpeciesWeights `mapstructure:"species_weights" yaml:"species_weights"`
	AreaWeights    AreaWeights    `mapstructure:"area_weights" yaml:"area_weights"`

	SpeciesTiers TierCutoffs `mapstructure:"species_tiers" yaml:"species_tiers"`
	AreaTiers    TierCutoffs `mapstructure:"area_tiers" yaml:"area_tiers"`
}

// DatabaseConfig contains PostgreSQL connection parameters for the
// postgres export format.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of rows per bulk insert during export.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Region: RegionConfig{
			Name:   "Kashmir Himalaya",
			LatMin: 34.0,
			LatMax: 37.0,
			LonMin: 72.0,
			LonMax: 77.5,
		},
		Quality: QualityConfig{
			MaxUncertaintyMeters: 10_000,
		},
		Grid: GridConfig{
			CellSizeDegrees: 0.1,
		},
		Scoring: ScoringConfig{
			RaritySteps: []ScoreStep{
				{Max: 5, Score: 100},
				{Max: 10, Score: 80},
				{Max: 20, Score: 60},
				{Max: 50, Score: 40},
				{Max: 100, Score: 20},
			},
			RarityDefault: 10,
			RangeSteps: []ScoreStep{
				{Max: 2, Score: 100},
				{Max: 5, Score: 80},
				{Max: 10, Score: 60},
				{Max: 20, Score: 40},
				{Max: 50, Score: 20},
			},
			RangeDefault: 10,
			Trend: TrendConfig{
				SplitYear:     2020,
				DeclineCutoff: -5,
				StableCutoff:  5,
				Disappeared:   100,
				Decline:       80,
				SlightDecline: 60,
				Stable:        40,
				Increase:      20,
				Neutral:       50,
			},
			SpeciesWeights: SpeciesWeights{Rarity: 0.4, Range: 0.3, Trend: 0.3},
			AreaWeights:    AreaWeights{Priority: 0.5, Corrected: 0.3, Total: 0.2},
			SpeciesTiers:   TierCutoffs{Critical: 80, High: 60, Medium: 40},
			AreaTiers:      TierCutoffs{Critical: 70, High: 50, Medium: 30},
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gnoccur",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
