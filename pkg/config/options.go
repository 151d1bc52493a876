package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptRegionName sets the human-readable study region name.
func OptRegionName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Region Name", s) {
			c.Region.Name = s
		}
	}
}

// OptBoundingBox sets the study region bounding box in decimal degrees.
// Ordering of mins and maxes is checked later by Validate(), because a
// half-updated box from flags is only meaningful as a whole.
func OptBoundingBox(latMin, latMax, lonMin, lonMax float64) Option {
	return func(c *Config) {
		c.Region.LatMin = latMin
		c.Region.LatMax = latMax
		c.Region.LonMin = lonMin
		c.Region.LonMax = lonMax
	}
}

// OptMaxUncertaintyMeters sets the inclusive coordinate uncertainty ceiling.
func OptMaxUncertaintyMeters(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Max Uncertainty Meters", f) {
			c.Quality.MaxUncertaintyMeters = f
		}
	}
}

// OptCellSizeDegrees sets the spatial grid cell size.
func OptCellSizeDegrees(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Grid Cell Size", f) {
			c.Grid.CellSizeDegrees = f
		}
	}
}

// OptTrendSplitYear sets the year that separates the early and recent
// periods of the trend sub-score.
func OptTrendSplitYear(i int) Option {
	return func(c *Config) {
		if isValidInt("Trend Split Year", i) {
			c.Scoring.Trend.SplitYear = i
		}
	}
}

// OptRaritySteps replaces the rarity step function thresholds.
func OptRaritySteps(steps []ScoreStep) Option {
	return func(c *Config) {
		if len(steps) > 0 {
			c.Scoring.RaritySteps = steps
		}
	}
}

// OptRangeSteps replaces the range step function thresholds.
func OptRangeSteps(steps []ScoreStep) Option {
	return func(c *Config) {
		if len(steps) > 0 {
			c.Scoring.RangeSteps = steps
		}
	}
}

// OptSpeciesWeights sets the weights combining species sub-scores.
func OptSpeciesWeights(w SpeciesWeights) Option {
	return func(c *Config) {
		if w != (SpeciesWeights{}) {
			c.Scoring.SpeciesWeights = w
		}
	}
}

// OptAreaWeights sets the weights combining area sub-scores.
func OptAreaWeights(w AreaWeights) Option {
	return func(c *Config) {
		if w != (AreaWeights{}) {
			c.Scoring.AreaWeights = w
		}
	}
}

// OptSpeciesTiers sets the species priority tier cutoffs.
func OptSpeciesTiers(t TierCutoffs) Option {
	return func(c *Config) {
		if t != (TierCutoffs{}) {
			c.Scoring.SpeciesTiers = t
		}
	}
}

// OptAreaTiers sets the area priority tier cutoffs.
func OptAreaTiers(t TierCutoffs) Option {
	return func(c *Config) {
		if t != (TierCutoffs{}) {
			c.Scoring.AreaTiers = t
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows per bulk insert.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the logging format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for name parsing.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory used to derive config, cache and
// log locations. Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
