// Package aggregate builds per-species summary statistics from the
// canonical occurrence table. The group-by is pure and
// order-independent: the same occurrence set always yields the same
// rows in the same order.
package aggregate

import (
	"sort"

	"github.com/gnames/gnoccur/pkg/schema"
)

// Summaries computes one SpeciesSummary per distinct species. Rows are
// sorted by totalRecords descending, ties broken by species name
// ascending, so repeated runs emit byte-identical output.
func Summaries(occs []schema.Occurrence) []schema.SpeciesSummary {
	bys := make(map[string]*schema.SpeciesSummary)

	for i := range occs {
		o := &occs[i]
		sum, ok := bys[o.Species]
		if !ok {
			sum = &schema.SpeciesSummary{
				Species:        o.Species,
				ScientificName: o.ScientificName,
			}
			bys[o.Species] = sum
		}

		sum.TotalRecords++
		switch o.DataSource {
		case schema.SourceGBIF:
			sum.GbifRecords++
		case schema.SourceINat:
			sum.InatRecords++
		}

		// Year 0 means unknown and is ignored for the temporal extent.
		if o.Year > 0 {
			if sum.FirstYear == 0 || o.Year < sum.FirstYear {
				sum.FirstYear = o.Year
			}
			if o.Year > sum.LastYear {
				sum.LastYear = o.Year
			}
		}
	}

	res := make([]schema.SpeciesSummary, 0, len(bys))
	for _, sum := range bys {
		res = append(res, *sum)
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].TotalRecords != res[j].TotalRecords {
			return res[i].TotalRecords > res[j].TotalRecords
		}
		return res[i].Species < res[j].Species
	})

	return res
}
