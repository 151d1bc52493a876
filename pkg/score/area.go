package score

import (
	"math"
	"sort"

	"github.com/gnames/gnoccur/pkg/config"
	"github.com/gnames/gnoccur/pkg/grid"
	"github.com/gnames/gnoccur/pkg/schema"
)

type cellFacts struct {
	species      map[string]struct{}
	prioritySpp  map[string]struct{}
	dates        map[string]struct{}
	observations int
}

// GridPriorities aggregates occurrences into grid cells and scores
// each cell. Priority species are those tiered Critical or High in the
// species priority table. Output is sorted by areaPriorityScore
// descending, ties broken by cell coordinates ascending.
func GridPriorities(
	occs []schema.Occurrence,
	priorities []schema.SpeciesPriority,
	sc config.ScoringConfig,
	cellSize float64,
) []schema.GridCell {
	prioritySpp := make(map[string]struct{})
	for i := range priorities {
		switch priorities[i].PriorityLevel {
		case LevelCritical, LevelHigh:
			prioritySpp[priorities[i].Species] = struct{}{}
		}
	}

	facts := make(map[grid.Cell]*cellFacts)
	for i := range occs {
		o := &occs[i]
		cell := grid.Assign(o, cellSize)
		f, ok := facts[cell]
		if !ok {
			f = &cellFacts{
				species:     map[string]struct{}{},
				prioritySpp: map[string]struct{}{},
				dates:       map[string]struct{}{},
			}
			facts[cell] = f
		}

		f.observations++
		f.species[o.Species] = struct{}{}
		if _, ok := prioritySpp[o.Species]; ok {
			f.prioritySpp[o.Species] = struct{}{}
		}
		if o.EventDate != "" {
			f.dates[o.EventDate] = struct{}{}
		}
	}

	res := make([]schema.GridCell, 0, len(facts))
	for cell, f := range facts {
		lon, lat := cell.Coords(cellSize)
		gc := schema.GridCell{
			GridLon:                 lon,
			GridLat:                 lat,
			SpeciesRichness:         len(f.species),
			TotalObservations:       f.observations,
			PrioritySpeciesRichness: len(f.prioritySpp),
			SurveyDateCount:         len(f.dates),
		}
		// A cell with no dated records has no sampling-effort signal,
		// so its corrected richness is zero rather than undefined.
		if gc.SurveyDateCount > 0 {
			gc.CorrectedRichness = float64(gc.SpeciesRichness) /
				math.Log(float64(gc.SurveyDateCount)+1)
		}
		res = append(res, gc)
	}

	var maxPriority, maxCorrected, maxRichness float64
	for i := range res {
		maxPriority = math.Max(maxPriority, float64(res[i].PrioritySpeciesRichness))
		maxCorrected = math.Max(maxCorrected, res[i].CorrectedRichness)
		maxRichness = math.Max(maxRichness, float64(res[i].SpeciesRichness))
	}

	w := sc.AreaWeights
	for i := range res {
		gc := &res[i]
		gc.PriorityNorm = normalize(float64(gc.PrioritySpeciesRichness), maxPriority)
		gc.CorrectedNorm = normalize(gc.CorrectedRichness, maxCorrected)
		gc.TotalNorm = normalize(float64(gc.SpeciesRichness), maxRichness)

		gc.AreaPriorityScore = w.Priority*gc.PriorityNorm +
			w.Corrected*gc.CorrectedNorm +
			w.Total*gc.TotalNorm
		gc.AreaPriorityLevel = tier(gc.AreaPriorityScore, sc.AreaTiers)
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].AreaPriorityScore != res[j].AreaPriorityScore {
			return res[i].AreaPriorityScore > res[j].AreaPriorityScore
		}
		if res[i].GridLon != res[j].GridLon {
			return res[i].GridLon < res[j].GridLon
		}
		return res[i].GridLat < res[j].GridLat
	})

	return res
}

// normalize scales a value to [0,100] by the per-run axis maximum.
// An all-zero axis normalizes to zero.
func normalize(v, max float64) float64 {
	if max == 0 {
		return 0
	}
	return v / max * 100
}
