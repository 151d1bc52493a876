package aggregate_test

import (
	"testing"

	"github.com/gnames/gnoccur/pkg/aggregate"
	"github.com/gnames/gnoccur/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaries(t *testing.T) {
	occs := []schema.Occurrence{
		{Species: "Panthera uncia", DataSource: schema.SourceGBIF, Year: 2018},
		{Species: "Panthera uncia", DataSource: schema.SourceINat, Year: 2023},
		{Species: "Panthera uncia", DataSource: schema.SourceGBIF},
		{Species: "Moschus cupreus", DataSource: schema.SourceINat, Year: 2021},
	}

	res := aggregate.Summaries(occs)
	require.Len(t, res, 2)

	snow := res[0]
	assert.Equal(t, "Panthera uncia", snow.Species)
	assert.Equal(t, 3, snow.TotalRecords)
	assert.Equal(t, 2, snow.GbifRecords)
	assert.Equal(t, 1, snow.InatRecords)
	// The record without a year does not shrink the temporal extent.
	assert.Equal(t, 2018, snow.FirstYear)
	assert.Equal(t, 2023, snow.LastYear)

	deer := res[1]
	assert.Equal(t, 1, deer.TotalRecords)
	assert.Equal(t, 2021, deer.FirstYear)
	assert.Equal(t, 2021, deer.LastYear)
}

func TestSummariesNoYears(t *testing.T) {
	occs := []schema.Occurrence{
		{Species: "Saussurea costus", DataSource: schema.SourceGBIF},
	}

	res := aggregate.Summaries(occs)
	require.Len(t, res, 1)
	assert.Zero(t, res[0].FirstYear)
	assert.Zero(t, res[0].LastYear)
}

func TestSummariesDeterministicOrder(t *testing.T) {
	occs := []schema.Occurrence{
		{Species: "Bbb bbb", DataSource: schema.SourceGBIF},
		{Species: "Aaa aaa", DataSource: schema.SourceGBIF},
		{Species: "Ccc ccc", DataSource: schema.SourceGBIF},
		{Species: "Ccc ccc", DataSource: schema.SourceGBIF},
	}

	res := aggregate.Summaries(occs)
	require.Len(t, res, 3)

	// Count descending, then species ascending.
	assert.Equal(t, "Ccc ccc", res[0].Species)
	assert.Equal(t, "Aaa aaa", res[1].Species)
	assert.Equal(t, "Bbb bbb", res[2].Species)

	// Input order does not matter.
	reversed := []schema.Occurrence{occs[3], occs[2], occs[1], occs[0]}
	assert.Equal(t, res, aggregate.Summaries(reversed))
}
