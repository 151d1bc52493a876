package ioexport

import (
	"strconv"

	"github.com/gnames/gnoccur/pkg/pipeline"
	"github.com/gnames/gnoccur/pkg/schema"
)

// table is the flat row-oriented form shared by the CSV, SQLite and
// PostgreSQL exporters. Cell values are string, int, float64 or nil.
type table struct {
	name    string
	columns []string
	rows    [][]any
}

func resultTables(res *pipeline.Result) []table {
	return []table{
		occurrenceTable(res.Occurrences),
		summaryTable(res.Summaries),
		priorityTable(res.SpeciesPriorities),
		gridTable(res.GridCells),
	}
}

func occurrenceTable(occs []schema.Occurrence) table {
	t := table{
		name: schema.Occurrence{}.TableName(),
		columns: []string{
			"id", "species", "scientific_name", "original_name",
			"latitude", "longitude", "event_date", "year", "month", "day",
			"season", "decade", "basis_of_record", "individual_count",
			"locality", "state_province", "coordinate_uncertainty_m",
			"record_id", "data_source",
		},
	}
	for i := range occs {
		o := &occs[i]
		var uncertainty any
		if o.CoordinateUncertaintyM.Valid {
			uncertainty = o.CoordinateUncertaintyM.Float64
		}
		t.rows = append(t.rows, []any{
			o.ID, o.Species, o.ScientificName, o.OriginalName,
			o.Latitude, o.Longitude, o.EventDate, o.Year, o.Month, o.Day,
			o.Season, o.Decade, o.BasisOfRecord, o.IndividualCount,
			o.Locality, o.StateProvince, uncertainty,
			o.RecordID, o.DataSource,
		})
	}
	return t
}

func summaryTable(sums []schema.SpeciesSummary) table {
	t := table{
		name: schema.SpeciesSummary{}.TableName(),
		columns: []string{
			"species", "scientific_name", "total_records",
			"gbif_records", "inat_records", "first_year", "last_year",
		},
	}
	for i := range sums {
		s := &sums[i]
		t.rows = append(t.rows, []any{
			s.Species, s.ScientificName, s.TotalRecords,
			s.GbifRecords, s.InatRecords, s.FirstYear, s.LastYear,
		})
	}
	return t
}

func priorityTable(sps []schema.SpeciesPriority) table {
	t := table{
		name: schema.SpeciesPriority{}.TableName(),
		columns: []string{
			"species", "scientific_name", "total_records",
			"gbif_records", "inat_records", "first_year", "last_year",
			"rarity_score", "n_grid_cells", "range_score",
			"trend", "trend_score", "priority_score", "priority_level",
		},
	}
	for i := range sps {
		sp := &sps[i]
		t.rows = append(t.rows, []any{
			sp.Species, sp.ScientificName, sp.TotalRecords,
			sp.GbifRecords, sp.InatRecords, sp.FirstYear, sp.LastYear,
			sp.RarityScore, sp.NGridCells, sp.RangeScore,
			sp.Trend, sp.TrendScore, sp.PriorityScore, sp.PriorityLevel,
		})
	}
	return t
}

func gridTable(cells []schema.GridCell) table {
	t := table{
		name: schema.GridCell{}.TableName(),
		columns: []string{
			"grid_lon", "grid_lat", "species_richness",
			"total_observations", "priority_species_richness",
			"survey_date_count", "corrected_richness",
			"priority_norm", "corrected_norm", "total_norm",
			"area_priority_score", "area_priority_level",
		},
	}
	for i := range cells {
		gc := &cells[i]
		t.rows = append(t.rows, []any{
			gc.GridLon, gc.GridLat, gc.SpeciesRichness,
			gc.TotalObservations, gc.PrioritySpeciesRichness,
			gc.SurveyDateCount, gc.CorrectedRichness,
			gc.PriorityNorm, gc.CorrectedNorm, gc.TotalNorm,
			gc.AreaPriorityScore, gc.AreaPriorityLevel,
		})
	}
	return t
}

// cellString renders a cell value for text output formats.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return ""
	}
}
