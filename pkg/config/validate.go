package config

import (
	"fmt"
	"math"

	"github.com/gnames/gn"
	"github.com/gnames/gnoccur/pkg/errcode"
)

// weightTolerance allows for floating-point noise when checking that
// weights sum to 1.
const weightTolerance = 1e-9

// Validate checks cross-field constraints that Option guards cannot
// catch. It must be called before any processing begins; a non-nil
// result is fatal (spec: ConfigurationError).
func (c *Config) Validate() error {
	if err := c.validateBoundingBox(); err != nil {
		return err
	}
	if c.Grid.CellSizeDegrees <= 0 {
		return cellSizeError(c.Grid.CellSizeDegrees)
	}
	if c.Quality.MaxUncertaintyMeters < 0 {
		return uncertaintyError(c.Quality.MaxUncertaintyMeters)
	}
	if err := c.validateWeights(); err != nil {
		return err
	}
	if err := validateSteps("rarity_steps", c.Scoring.RaritySteps); err != nil {
		return err
	}
	if err := validateSteps("range_steps", c.Scoring.RangeSteps); err != nil {
		return err
	}
	if err := validateTiers("species_tiers", c.Scoring.SpeciesTiers); err != nil {
		return err
	}
	return validateTiers("area_tiers", c.Scoring.AreaTiers)
}

func (c *Config) validateBoundingBox() error {
	r := c.Region
	if r.LatMin >= r.LatMax || r.LonMin >= r.LonMax {
		return boundingBoxError(r)
	}
	if r.LatMin < -90 || r.LatMax > 90 || r.LonMin < -180 || r.LonMax > 180 {
		return boundingBoxError(r)
	}
	return nil
}

func (c *Config) validateWeights() error {
	sw := c.Scoring.SpeciesWeights
	sum := sw.Rarity + sw.Range + sw.Trend
	if math.Abs(sum-1) > weightTolerance {
		return weightsError("species_weights", sum)
	}

	aw := c.Scoring.AreaWeights
	sum = aw.Priority + aw.Corrected + aw.Total
	if math.Abs(sum-1) > weightTolerance {
		return weightsError("area_weights", sum)
	}
	return nil
}

func validateSteps(name string, steps []ScoreStep) error {
	if len(steps) == 0 {
		return stepsError(name, "no steps defined")
	}
	for i := 1; i < len(steps); i++ {
		if steps[i].Max <= steps[i-1].Max {
			return stepsError(name, fmt.Sprintf(
				"step maxima must be strictly ascending, got %d after %d",
				steps[i].Max, steps[i-1].Max))
		}
	}
	return nil
}

func validateTiers(name string, t TierCutoffs) error {
	if t.Critical > t.High && t.High > t.Medium {
		return nil
	}
	return tiersError(name, t)
}

func boundingBoxError(r RegionConfig) error {
	msg := `Invalid bounding box

<em>Latitude:</em>  %g .. %g
<em>Longitude:</em> %g .. %g

<em>How to fix:</em>
  1. Make sure lat_min < lat_max and lon_min < lon_max
  2. Keep latitudes within [-90, 90] and longitudes within [-180, 180]`

	vars := []any{r.LatMin, r.LatMax, r.LonMin, r.LonMax}

	return &gn.Error{
		Code: errcode.ConfigBoundingBoxError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("invalid bounding box: lat %g..%g, lon %g..%g",
			r.LatMin, r.LatMax, r.LonMin, r.LonMax),
	}
}

func cellSizeError(size float64) error {
	msg := `Grid cell size must be positive, got <em>%g</em>`
	vars := []any{size}

	return &gn.Error{
		Code: errcode.ConfigGridCellSizeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("non-positive grid cell size: %g", size),
	}
}

func uncertaintyError(ceiling float64) error {
	msg := `Coordinate uncertainty ceiling cannot be negative, got <em>%g</em>`
	vars := []any{ceiling}

	return &gn.Error{
		Code: errcode.ConfigUncertaintyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("negative uncertainty ceiling: %g", ceiling),
	}
}

func weightsError(name string, sum float64) error {
	msg := `Scoring weights <em>%s</em> must sum to 1, got <em>%g</em>`
	vars := []any{name, sum}

	return &gn.Error{
		Code: errcode.ConfigWeightsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s sum to %g instead of 1", name, sum),
	}
}

func stepsError(name, detail string) error {
	msg := `Score thresholds <em>%s</em> are invalid: %s`
	vars := []any{name, detail}

	return &gn.Error{
		Code: errcode.ConfigThresholdsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid %s: %s", name, detail),
	}
}

func tiersError(name string, t TierCutoffs) error {
	msg := `Tier cutoffs <em>%s</em> must descend: critical > high > medium, got %g/%g/%g`
	vars := []any{name, t.Critical, t.High, t.Medium}

	return &gn.Error{
		Code: errcode.ConfigTiersError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("invalid %s cutoffs: %g/%g/%g",
			name, t.Critical, t.High, t.Medium),
	}
}
