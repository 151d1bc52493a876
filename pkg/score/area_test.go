package score_test

import (
	"math"
	"testing"

	"github.com/gnames/gnoccur/pkg/schema"
	"github.com/gnames/gnoccur/pkg/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occDated(species string, lat, lon float64, date string) schema.Occurrence {
	return schema.Occurrence{
		Species:   species,
		Latitude:  lat,
		Longitude: lon,
		EventDate: date,
	}
}

func TestGridPriorities(t *testing.T) {
	occs := []schema.Occurrence{
		// Cell (74.1, 34.2): two species, three observations, two dates.
		occDated("Panthera uncia", 34.21, 74.11, "2021-06-15"),
		occDated("Panthera uncia", 34.22, 74.12, "2021-06-15"),
		occDated("Moschus cupreus", 34.19, 74.08, "2022-08-01"),
		// Cell (74.8, 34.5): one species, one observation, one date.
		occDated("Moschus cupreus", 34.51, 74.81, "2023-05-10"),
	}
	priorities := []schema.SpeciesPriority{
		{
			SpeciesSummary: schema.SpeciesSummary{Species: "Panthera uncia"},
			PriorityLevel:  score.LevelCritical,
		},
		{
			SpeciesSummary: schema.SpeciesSummary{Species: "Moschus cupreus"},
			PriorityLevel:  score.LevelMedium,
		},
	}

	res := score.GridPriorities(occs, priorities, scoring(), 0.1)
	require.Len(t, res, 2)

	// The busier cell scores higher and sorts first.
	top := res[0]
	assert.Equal(t, 74.1, top.GridLon)
	assert.Equal(t, 34.2, top.GridLat)
	assert.Equal(t, 2, top.SpeciesRichness)
	assert.Equal(t, 3, top.TotalObservations)
	assert.Equal(t, 1, top.PrioritySpeciesRichness)
	assert.Equal(t, 2, top.SurveyDateCount)
	assert.InDelta(t, 2/math.Log(3), top.CorrectedRichness, 1e-9)

	// It is the maximum on every axis, so every norm is 100.
	assert.Equal(t, float64(100), top.PriorityNorm)
	assert.Equal(t, float64(100), top.CorrectedNorm)
	assert.Equal(t, float64(100), top.TotalNorm)
	assert.Equal(t, float64(100), top.AreaPriorityScore)
	assert.Equal(t, score.LevelCritical, top.AreaPriorityLevel)

	other := res[1]
	assert.Equal(t, 74.8, other.GridLon)
	assert.Zero(t, other.PrioritySpeciesRichness)
	assert.Equal(t, float64(0), other.PriorityNorm)
}

func TestGridPrioritiesRichnessAxis(t *testing.T) {
	// The total-richness axis tracks distinct species, not raw
	// observation counts. One cell gets a single species observed
	// five times, the other three species observed once each.
	occs := []schema.Occurrence{
		occDated("Panthera uncia", 34.21, 74.11, "2021-06-15"),
		occDated("Panthera uncia", 34.22, 74.12, "2021-06-16"),
		occDated("Panthera uncia", 34.19, 74.08, "2021-06-17"),
		occDated("Panthera uncia", 34.18, 74.13, "2021-06-18"),
		occDated("Panthera uncia", 34.23, 74.09, "2021-06-19"),

		occDated("Moschus cupreus", 34.51, 74.81, "2023-05-10"),
		occDated("Aquila chrysaetos", 34.52, 74.82, "2023-05-11"),
		occDated("Saussurea costus", 34.49, 74.79, "2023-05-12"),
	}

	res := score.GridPriorities(occs, nil, scoring(), 0.1)
	require.Len(t, res, 2)

	var rich, poor schema.GridCell
	for _, gc := range res {
		if gc.GridLon == 74.8 {
			rich = gc
		} else {
			poor = gc
		}
	}

	assert.Equal(t, 3, rich.SpeciesRichness)
	assert.Equal(t, 3, rich.TotalObservations)
	assert.Equal(t, float64(100), rich.TotalNorm)

	assert.Equal(t, 1, poor.SpeciesRichness)
	assert.Equal(t, 5, poor.TotalObservations)
	assert.InDelta(t, float64(100)/3, poor.TotalNorm, 1e-9)
}

func TestGridPrioritiesNoDates(t *testing.T) {
	occs := []schema.Occurrence{
		occDated("Panthera uncia", 34.21, 74.11, ""),
		occDated("Moschus cupreus", 34.22, 74.12, ""),
	}

	res := score.GridPriorities(occs, nil, scoring(), 0.1)
	require.Len(t, res, 1)

	// No dated records means no effort signal: corrected richness is
	// zero, not a division by ln(1).
	assert.Zero(t, res[0].SurveyDateCount)
	assert.Zero(t, res[0].CorrectedRichness)
	assert.Zero(t, res[0].CorrectedNorm)
}

func TestGridPrioritiesZeroAxis(t *testing.T) {
	// No priority species at all: the priority axis max is zero and
	// every cell's priority norm is zero instead of NaN.
	occs := []schema.Occurrence{
		occDated("Saussurea costus", 34.21, 74.11, "2021-06-15"),
		occDated("Saussurea costus", 34.51, 74.81, "2022-06-15"),
	}

	res := score.GridPriorities(occs, nil, scoring(), 0.1)
	require.Len(t, res, 2)
	for _, gc := range res {
		assert.Equal(t, float64(0), gc.PriorityNorm)
		assert.False(t, math.IsNaN(gc.AreaPriorityScore))
	}
}

func TestGridPrioritiesOrder(t *testing.T) {
	// Two identical cells tie on score and sort by coordinates.
	occs := []schema.Occurrence{
		occDated("Saussurea costus", 34.21, 74.81, "2021-06-15"),
		occDated("Saussurea costus", 34.21, 74.11, "2021-06-15"),
	}

	res := score.GridPriorities(occs, nil, scoring(), 0.1)
	require.Len(t, res, 2)
	assert.Equal(t, res[0].AreaPriorityScore, res[1].AreaPriorityScore)
	assert.Equal(t, 74.1, res[0].GridLon)
	assert.Equal(t, 74.8, res[1].GridLon)
}
