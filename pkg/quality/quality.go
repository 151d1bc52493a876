// Package quality applies the ordered coordinate and name quality
// predicates to the canonical occurrence set. Filtering is pure: each
// stage takes the previous stage's survivors, no record is ever
// re-admitted, and re-running the filter on its own output is a no-op.
package quality

import (
	"math"

	"github.com/gnames/gnoccur/pkg/config"
	"github.com/gnames/gnoccur/pkg/schema"
)

// Stage names in execution order.
const (
	StageSpecies     = "species"
	StageCoordinates = "coordinates"
	StageBoundingBox = "bounding_box"
	StageNullIsland  = "null_island"
	StageUncertainty = "uncertainty"
)

// StageCount reports how many records survived one filter stage.
type StageCount struct {
	Stage    string
	Retained int
	Removed  int
}

// Report is the stage-by-stage retained-count diagnostic of one
// filter run.
type Report []StageCount

// Filter applies the five quality predicates in order and returns the
// surviving occurrences with the per-stage report. The input slice is
// not modified.
func Filter(
	occs []schema.Occurrence,
	region config.RegionConfig,
	qc config.QualityConfig,
) ([]schema.Occurrence, Report) {
	type stage struct {
		name string
		keep func(*schema.Occurrence) bool
	}

	stages := []stage{
		{StageSpecies, func(o *schema.Occurrence) bool {
			return o.Species != "" && o.Species != "NA"
		}},
		{StageCoordinates, func(o *schema.Occurrence) bool {
			return !math.IsNaN(o.Latitude) && !math.IsNaN(o.Longitude)
		}},
		{StageBoundingBox, func(o *schema.Occurrence) bool {
			return o.Latitude >= region.LatMin && o.Latitude <= region.LatMax &&
				o.Longitude >= region.LonMin && o.Longitude <= region.LonMax
		}},
		// Exact null-island exclusion only; (0, 5) passes.
		{StageNullIsland, func(o *schema.Occurrence) bool {
			return !(o.Latitude == 0 && o.Longitude == 0)
		}},
		{StageUncertainty, func(o *schema.Occurrence) bool {
			return !o.CoordinateUncertaintyM.Valid ||
				o.CoordinateUncertaintyM.Float64 <= qc.MaxUncertaintyMeters
		}},
	}

	kept := make([]schema.Occurrence, len(occs))
	copy(kept, occs)

	report := make(Report, 0, len(stages))
	for _, st := range stages {
		next := kept[:0:0]
		for i := range kept {
			if st.keep(&kept[i]) {
				next = append(next, kept[i])
			}
		}
		report = append(report, StageCount{
			Stage:    st.name,
			Retained: len(next),
			Removed:  len(kept) - len(next),
		})
		kept = next
	}

	return kept, report
}
