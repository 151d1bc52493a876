package dedupe_test

import (
	"testing"

	"github.com/gnames/gnoccur/pkg/dedupe"
	"github.com/gnames/gnoccur/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeduplicate(t *testing.T) {
	occs := []schema.Occurrence{
		{
			Species: "Panthera uncia", Latitude: 34.27, Longitude: 75.46,
			EventDate: "2021-06-03", DataSource: schema.SourceGBIF,
		},
		{
			Species: "Panthera uncia", Latitude: 34.27, Longitude: 75.46,
			EventDate: "2021-06-03", DataSource: schema.SourceINat,
		},
		{
			// Same place, different date: kept.
			Species: "Panthera uncia", Latitude: 34.27, Longitude: 75.46,
			EventDate: "2021-06-04", DataSource: schema.SourceINat,
		},
		{
			// Near-duplicate coordinates are not collapsed.
			Species: "Panthera uncia", Latitude: 34.2700001, Longitude: 75.46,
			EventDate: "2021-06-03", DataSource: schema.SourceINat,
		},
	}

	res, removed := dedupe.Deduplicate(occs)

	require.Len(t, res, 3)
	assert.Equal(t, 1, removed)
	// First-encountered record of the duplicate pair wins.
	assert.Equal(t, schema.SourceGBIF, res[0].DataSource)
}

func TestDeduplicatePreservesOrder(t *testing.T) {
	occs := []schema.Occurrence{
		{Species: "A", Latitude: 1, Longitude: 1, EventDate: "2020-01-01"},
		{Species: "B", Latitude: 2, Longitude: 2, EventDate: "2020-01-02"},
		{Species: "A", Latitude: 1, Longitude: 1, EventDate: "2020-01-01"},
		{Species: "C", Latitude: 3, Longitude: 3, EventDate: "2020-01-03"},
	}

	res, removed := dedupe.Deduplicate(occs)

	require.Len(t, res, 3)
	assert.Equal(t, 1, removed)
	assert.Equal(t, "A", res[0].Species)
	assert.Equal(t, "B", res[1].Species)
	assert.Equal(t, "C", res[2].Species)
}

func TestDeduplicateEmptyDates(t *testing.T) {
	// Records without dates still group on the empty date value.
	occs := []schema.Occurrence{
		{Species: "A", Latitude: 1, Longitude: 1},
		{Species: "A", Latitude: 1, Longitude: 1},
	}

	res, removed := dedupe.Deduplicate(occs)
	assert.Len(t, res, 1)
	assert.Equal(t, 1, removed)
}
