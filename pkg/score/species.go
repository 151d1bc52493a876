package score

import (
	"sort"

	"github.com/gnames/gnoccur/pkg/config"
	"github.com/gnames/gnoccur/pkg/grid"
	"github.com/gnames/gnoccur/pkg/schema"
)

// speciesFacts holds the per-species inputs that are not part of the
// summary: occupied grid cells and the temporal partition around the
// trend split year.
type speciesFacts struct {
	cells   map[grid.Cell]struct{}
	early   int
	recent  int
	hasYear bool
}

// SpeciesPriorities computes one SpeciesPriority per summary row.
// Output is sorted by priorityScore descending, ties broken by species
// name ascending.
func SpeciesPriorities(
	summaries []schema.SpeciesSummary,
	occs []schema.Occurrence,
	sc config.ScoringConfig,
	cellSize float64,
) []schema.SpeciesPriority {
	facts := collectFacts(occs, sc.Trend.SplitYear, cellSize)

	res := make([]schema.SpeciesPriority, 0, len(summaries))
	for _, sum := range summaries {
		f := facts[sum.Species]
		if f == nil {
			f = &speciesFacts{cells: map[grid.Cell]struct{}{}}
		}

		sp := schema.SpeciesPriority{
			SpeciesSummary: sum,
			RarityScore:    stepScore(sum.TotalRecords, sc.RaritySteps, sc.RarityDefault),
			NGridCells:     len(f.cells),
			Trend:          f.recent - f.early,
		}
		sp.RangeScore = stepScore(sp.NGridCells, sc.RangeSteps, sc.RangeDefault)
		sp.TrendScore = trendScore(f, sc.Trend)

		w := sc.SpeciesWeights
		sp.PriorityScore = w.Rarity*sp.RarityScore +
			w.Range*sp.RangeScore +
			w.Trend*sp.TrendScore
		sp.PriorityLevel = tier(sp.PriorityScore, sc.SpeciesTiers)

		res = append(res, sp)
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].PriorityScore != res[j].PriorityScore {
			return res[i].PriorityScore > res[j].PriorityScore
		}
		return res[i].Species < res[j].Species
	})

	return res
}

func collectFacts(
	occs []schema.Occurrence,
	splitYear int,
	cellSize float64,
) map[string]*speciesFacts {
	facts := make(map[string]*speciesFacts)
	for i := range occs {
		o := &occs[i]
		f, ok := facts[o.Species]
		if !ok {
			f = &speciesFacts{cells: map[grid.Cell]struct{}{}}
			facts[o.Species] = f
		}

		f.cells[grid.Assign(o, cellSize)] = struct{}{}

		if o.Year > 0 {
			f.hasYear = true
			if o.Year < splitYear {
				f.early++
			} else {
				f.recent++
			}
		}
	}
	return facts
}

// trendScore scores the temporal trend of one species. A species with
// early records and none recent signals apparent local disappearance
// and gets the highest score; a species with no year data at all gets
// the neutral default instead of a computed trend.
func trendScore(f *speciesFacts, tc config.TrendConfig) float64 {
	if !f.hasYear {
		return tc.Neutral
	}
	if f.early > 0 && f.recent == 0 {
		return tc.Disappeared
	}

	trend := f.recent - f.early
	switch {
	case trend < tc.DeclineCutoff:
		return tc.Decline
	case trend < 0:
		return tc.SlightDecline
	case trend <= tc.StableCutoff:
		return tc.Stable
	default:
		return tc.Increase
	}
}
