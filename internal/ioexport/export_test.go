package ioexport

import (
	"context"
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnoccur/pkg/config"
	"github.com/gnames/gnoccur/pkg/gnoccur"
	"github.com/gnames/gnoccur/pkg/pipeline"
	"github.com/gnames/gnoccur/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *pipeline.Result {
	occ := schema.Occurrence{
		ID:         schema.OccurrenceID(schema.SourceGBIF, "123"),
		Species:    "Panthera uncia",
		Latitude:   34.21,
		Longitude:  74.11,
		EventDate:  "2021-06-15",
		Year:       2021,
		Month:      6,
		Day:        15,
		Season:     "Summer",
		Decade:     2020,
		RecordID:   "123",
		DataSource: schema.SourceGBIF,
	}
	occ.CoordinateUncertaintyM = sql.NullFloat64{Float64: 250, Valid: true}

	noUncertainty := occ
	noUncertainty.ID = schema.OccurrenceID(schema.SourceINat, "9001")
	noUncertainty.RecordID = "9001"
	noUncertainty.DataSource = schema.SourceINat
	noUncertainty.CoordinateUncertaintyM = sql.NullFloat64{}

	sum := schema.SpeciesSummary{
		Species: "Panthera uncia", TotalRecords: 2,
		GbifRecords: 1, InatRecords: 1,
		FirstYear: 2021, LastYear: 2021,
	}

	return &pipeline.Result{
		RunID:       "test-run",
		Occurrences: []schema.Occurrence{occ, noUncertainty},
		Summaries:   []schema.SpeciesSummary{sum},
		SpeciesPriorities: []schema.SpeciesPriority{
			{
				SpeciesSummary: sum,
				RarityScore:    100, NGridCells: 1, RangeScore: 100,
				TrendScore: 40, PriorityScore: 92,
				PriorityLevel: "Critical Priority",
			},
		},
		GridCells: []schema.GridCell{
			{
				GridLon: 74.1, GridLat: 34.2,
				SpeciesRichness: 1, TotalObservations: 2,
				SurveyDateCount: 1, CorrectedRichness: 1.44,
				AreaPriorityScore: 100, AreaPriorityLevel: "Critical Priority",
			},
		},
	}
}

func TestExportCSV(t *testing.T) {
	outDir := t.TempDir()
	exp, err := New(config.New(), gnoccur.FormatCSV, outDir, nil)
	require.NoError(t, err)

	require.NoError(t, exp.Export(context.Background(), testResult()))

	f, err := os.Open(filepath.Join(outDir, "occurrences.csv"))
	require.NoError(t, err)
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)

	header := recs[0]
	assert.Equal(t, "id", header[0])
	assert.Equal(t, "species", header[1])

	assert.Equal(t, "Panthera uncia", recs[1][1])
	assert.Equal(t, "250", recs[1][16])
	// Absent uncertainty stays an empty cell, not 0.
	assert.Equal(t, "", recs[2][16])

	for _, name := range []string{
		"species_summaries.csv", "species_priorities.csv", "grid_cells.csv",
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestExportJSON(t *testing.T) {
	outDir := t.TempDir()
	exp, err := New(config.New(), gnoccur.FormatJSON, outDir, nil)
	require.NoError(t, err)

	require.NoError(t, exp.Export(context.Background(), testResult()))

	data, err := os.ReadFile(filepath.Join(outDir, "species_priorities.json"))
	require.NoError(t, err)

	var sps []schema.SpeciesPriority
	enc := gnfmt.GNjson{}
	require.NoError(t, enc.Decode(data, &sps))
	require.Len(t, sps, 1)
	assert.Equal(t, "Panthera uncia", sps[0].Species)
	assert.Equal(t, float64(92), sps[0].PriorityScore)
}

func TestExportSQLite(t *testing.T) {
	outDir := t.TempDir()
	exp, err := New(config.New(), gnoccur.FormatSQLite, outDir, nil)
	require.NoError(t, err)

	require.NoError(t, exp.Export(context.Background(), testResult()))

	path := filepath.Join(outDir, "gnoccur.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t,
		db.QueryRow("SELECT count(*) FROM occurrences").Scan(&n))
	assert.Equal(t, 2, n)

	var species string
	var score float64
	require.NoError(t, db.QueryRow(
		"SELECT species, priority_score FROM species_priorities",
	).Scan(&species, &score))
	assert.Equal(t, "Panthera uncia", species)
	assert.Equal(t, float64(92), score)

	// Absent uncertainty round-trips as NULL.
	var uncertainty sql.NullFloat64
	require.NoError(t, db.QueryRow(
		"SELECT coordinate_uncertainty_m FROM occurrences WHERE data_source = ?",
		schema.SourceINat,
	).Scan(&uncertainty))
	assert.False(t, uncertainty.Valid)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := New(config.New(), "parquet", t.TempDir(), nil)
	require.Error(t, err)
}
