package score_test

import (
	"testing"

	"github.com/gnames/gnoccur/pkg/config"
	"github.com/gnames/gnoccur/pkg/schema"
	"github.com/gnames/gnoccur/pkg/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoring() config.ScoringConfig {
	return config.New().Scoring
}

func occAt(species string, lat, lon float64, year int) schema.Occurrence {
	return schema.Occurrence{
		Species:   species,
		Latitude:  lat,
		Longitude: lon,
		Year:      year,
	}
}

func TestRaritySteps(t *testing.T) {
	tests := []struct {
		name    string
		records int
		want    float64
	}{
		{"five records hit the top step", 5, 100},
		{"six records fall to the next step", 6, 80},
		{"ten records", 10, 80},
		{"fifty records", 50, 40},
		{"common species gets the default", 101, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sums := []schema.SpeciesSummary{
				{Species: "Aquila chrysaetos", TotalRecords: tt.records},
			}
			res := score.SpeciesPriorities(sums, nil, scoring(), 0.1)
			require.Len(t, res, 1)
			assert.Equal(t, tt.want, res[0].RarityScore)
		})
	}
}

func TestRarityMonotone(t *testing.T) {
	sc := scoring()
	var prev float64 = 101
	for n := 1; n <= 120; n++ {
		sums := []schema.SpeciesSummary{{Species: "X y", TotalRecords: n}}
		got := score.SpeciesPriorities(sums, nil, sc, 0.1)[0].RarityScore
		assert.LessOrEqual(t, got, prev, "rarity must not grow with records")
		prev = got
	}
}

func TestRangeScore(t *testing.T) {
	occs := []schema.Occurrence{
		occAt("Panthera uncia", 34.21, 74.11, 2021),
		occAt("Panthera uncia", 34.21, 74.12, 2021),
		occAt("Panthera uncia", 34.51, 74.81, 2022),
	}
	sums := []schema.SpeciesSummary{{Species: "Panthera uncia", TotalRecords: 3}}

	res := score.SpeciesPriorities(sums, occs, scoring(), 0.1)
	require.Len(t, res, 1)
	// First two records share a cell, so two cells hits the top step.
	assert.Equal(t, 2, res[0].NGridCells)
	assert.Equal(t, float64(100), res[0].RangeScore)
}

func TestTrendScore(t *testing.T) {
	tests := []struct {
		name   string
		early  int
		recent int
		want   float64
	}{
		{"disappeared", 3, 0, 100},
		{"strong decline", 10, 2, 80},
		{"slight decline", 5, 3, 60},
		{"stable", 4, 6, 40},
		{"increase", 1, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var occs []schema.Occurrence
			for i := 0; i < tt.early; i++ {
				occs = append(occs, occAt("Moschus cupreus", 34.2, 74.1, 2015))
			}
			for i := 0; i < tt.recent; i++ {
				occs = append(occs, occAt("Moschus cupreus", 34.2, 74.1, 2023))
			}
			sums := []schema.SpeciesSummary{
				{Species: "Moschus cupreus", TotalRecords: len(occs)},
			}

			res := score.SpeciesPriorities(sums, occs, scoring(), 0.1)
			require.Len(t, res, 1)
			assert.Equal(t, tt.recent-tt.early, res[0].Trend)
			assert.Equal(t, tt.want, res[0].TrendScore)
		})
	}
}

func TestTrendNoYearData(t *testing.T) {
	occs := []schema.Occurrence{occAt("Saussurea costus", 34.2, 74.1, 0)}
	sums := []schema.SpeciesSummary{{Species: "Saussurea costus", TotalRecords: 1}}

	res := score.SpeciesPriorities(sums, occs, scoring(), 0.1)
	require.Len(t, res, 1)
	assert.Equal(t, float64(50), res[0].TrendScore)
}

func TestPriorityScoreAndTier(t *testing.T) {
	// 3 records in one cell, all early: rarity 100, range 100,
	// trend disappeared 100, so 0.4*100+0.3*100+0.3*100 = 100.
	occs := []schema.Occurrence{
		occAt("Panthera uncia", 34.2, 74.1, 2015),
		occAt("Panthera uncia", 34.2, 74.1, 2016),
		occAt("Panthera uncia", 34.2, 74.1, 2017),
	}
	sums := []schema.SpeciesSummary{{Species: "Panthera uncia", TotalRecords: 3}}

	res := score.SpeciesPriorities(sums, occs, scoring(), 0.1)
	require.Len(t, res, 1)
	assert.Equal(t, float64(100), res[0].PriorityScore)
	assert.Equal(t, score.LevelCritical, res[0].PriorityLevel)
}

func TestTierBoundaries(t *testing.T) {
	sc := scoring()
	// Rarity 100, range 100, trend stable 40 gives
	// 0.4*100 + 0.3*100 + 0.3*40 = 82 (Critical).
	occs := []schema.Occurrence{
		occAt("Aquila chrysaetos", 34.2, 74.1, 2023),
	}
	sums := []schema.SpeciesSummary{{Species: "Aquila chrysaetos", TotalRecords: 1}}
	res := score.SpeciesPriorities(sums, occs, sc, 0.1)
	require.Len(t, res, 1)
	assert.InDelta(t, 82, res[0].PriorityScore, 1e-9)
	assert.Equal(t, score.LevelCritical, res[0].PriorityLevel)

	// Push the score just under the Critical cutoff via custom tiers.
	sc.SpeciesTiers.Critical = 82.001
	res = score.SpeciesPriorities(sums, occs, sc, 0.1)
	assert.Equal(t, score.LevelHigh, res[0].PriorityLevel)
}

func TestTierCutoffInclusive(t *testing.T) {
	// A score landing exactly on the default Critical cutoff stays
	// Critical. Rarity 80 (6 records), range 100 (one cell) and slight
	// decline 60 give 0.4*80 + 0.3*100 + 0.3*60 = 80.
	occs := []schema.Occurrence{
		occAt("Moschus cupreus", 34.2, 74.1, 2016),
		occAt("Moschus cupreus", 34.2, 74.1, 2017),
		occAt("Moschus cupreus", 34.2, 74.1, 2018),
		occAt("Moschus cupreus", 34.2, 74.1, 2019),
		occAt("Moschus cupreus", 34.2, 74.1, 2021),
		occAt("Moschus cupreus", 34.2, 74.1, 2022),
	}
	sums := []schema.SpeciesSummary{{Species: "Moschus cupreus", TotalRecords: 6}}

	res := score.SpeciesPriorities(sums, occs, scoring(), 0.1)
	require.Len(t, res, 1)
	assert.Equal(t, float64(80), res[0].PriorityScore)
	assert.Equal(t, score.LevelCritical, res[0].PriorityLevel)
}

func TestSpeciesPrioritiesOrder(t *testing.T) {
	occs := []schema.Occurrence{
		occAt("Bbb bbb", 34.2, 74.1, 2023),
		occAt("Aaa aaa", 34.2, 74.1, 2023),
		occAt("Ccc ccc", 34.2, 74.1, 2023),
	}
	sums := []schema.SpeciesSummary{
		{Species: "Ccc ccc", TotalRecords: 1},
		{Species: "Aaa aaa", TotalRecords: 1},
		{Species: "Bbb bbb", TotalRecords: 200},
	}

	res := score.SpeciesPriorities(sums, occs, scoring(), 0.1)
	require.Len(t, res, 3)

	// Equal scores break ties alphabetically; the common species with
	// the low rarity score sorts last.
	assert.Equal(t, "Aaa aaa", res[0].Species)
	assert.Equal(t, "Ccc ccc", res[1].Species)
	assert.Equal(t, "Bbb bbb", res[2].Species)
}
