package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option

	if c.Region.Name != "" {
		res = append(res, OptRegionName(c.Region.Name))
	}
	if c.Region.LatMin != 0 || c.Region.LatMax != 0 ||
		c.Region.LonMin != 0 || c.Region.LonMax != 0 {
		res = append(res, OptBoundingBox(
			c.Region.LatMin, c.Region.LatMax,
			c.Region.LonMin, c.Region.LonMax,
		))
	}
	if c.Quality.MaxUncertaintyMeters > 0 {
		res = append(res, OptMaxUncertaintyMeters(c.Quality.MaxUncertaintyMeters))
	}
	if c.Grid.CellSizeDegrees > 0 {
		res = append(res, OptCellSizeDegrees(c.Grid.CellSizeDegrees))
	}
	if c.Scoring.Trend.SplitYear > 0 {
		res = append(res, OptTrendSplitYear(c.Scoring.Trend.SplitYear))
	}
	if len(c.Scoring.RaritySteps) > 0 {
		res = append(res, OptRaritySteps(c.Scoring.RaritySteps))
	}
	if len(c.Scoring.RangeSteps) > 0 {
		res = append(res, OptRangeSteps(c.Scoring.RangeSteps))
	}
	res = append(res,
		OptSpeciesWeights(c.Scoring.SpeciesWeights),
		OptAreaWeights(c.Scoring.AreaWeights),
		OptSpeciesTiers(c.Scoring.SpeciesTiers),
		OptAreaTiers(c.Scoring.AreaTiers),
	)

	s := c.Database.Host
	if s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	i := c.Database.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	s = c.Database.User
	if s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	s = c.Database.Password
	if s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	s = c.Database.Database
	if s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	s = c.Database.SSLMode
	if s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}
	i = c.Database.BatchSize
	if i > 0 {
		res = append(res, OptDatabaseBatchSize(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidFloat(name string, f float64) bool {
	res := f > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive, ignoring %f", name, f)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stdout": s, "stderr": s},
	}
	if _, ok := data[name][val]; ok {
		return true
	}

	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
