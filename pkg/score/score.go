// Package score derives conservation priority scores from the
// canonical occurrence table: rarity, range-restriction and
// temporal-trend sub-scores per species, and richness-based sub-scores
// per grid cell. All scoring is deterministic; weights and thresholds
// come from the configuration.
package score

import (
	"github.com/gnames/gnoccur/pkg/config"
)

// Priority tier labels shared by species and area scoring.
const (
	LevelCritical = "Critical Priority"
	LevelHigh     = "High Priority"
	LevelMedium   = "Medium Priority"
	LevelLow      = "Low Priority"
)

// stepScore evaluates a monotone step function: steps are inclusive
// upper bounds in ascending order, first match wins, counts above the
// last step get the default.
func stepScore(count int, steps []config.ScoreStep, def float64) float64 {
	for _, st := range steps {
		if count <= st.Max {
			return st.Score
		}
	}
	return def
}

// tier maps a continuous score to its discrete label. Cutoffs are
// inclusive lower bounds.
func tier(score float64, t config.TierCutoffs) string {
	switch {
	case score >= t.Critical:
		return LevelCritical
	case score >= t.High:
		return LevelHigh
	case score >= t.Medium:
		return LevelMedium
	default:
		return LevelLow
	}
}
