package reconcile_test

import (
	"math"
	"testing"

	"github.com/gnames/gnoccur/pkg/reconcile"
	"github.com/gnames/gnoccur/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGBIF(t *testing.T) {
	rows := []reconcile.GBIFRow{
		{
			GbifID:                        "1001",
			Species:                       "Panthera uncia",
			ScientificName:                "Panthera uncia (Schreber, 1775)",
			DecimalLatitude:               "34.27",
			DecimalLongitude:              "75.46",
			EventDate:                     "2021-06-03T10:15:00",
			BasisOfRecord:                 "HumanObservation",
			IndividualCount:               "2",
			StateProvince:                 "Jammu and Kashmir",
			CoordinateUncertaintyInMeters: "250",
		},
		{
			GbifID:           "1002",
			Species:          "Moschus cupreus",
			DecimalLatitude:  "35.1",
			DecimalLongitude: "74.9",
			Year:             "2015",
			Month:            "12",
			Day:              "8",
		},
	}

	occs := reconcile.FromGBIF(rows)
	require.Len(t, occs, 2)

	first := occs[0]
	assert.Equal(t, "Panthera uncia", first.Species)
	assert.Equal(t, schema.SourceGBIF, first.DataSource)
	assert.Equal(t, "2021-06-03", first.EventDate)
	assert.Equal(t, 2021, first.Year)
	assert.Equal(t, 6, first.Month)
	assert.Equal(t, "Summer", first.Season)
	assert.Equal(t, 2020, first.Decade)
	assert.Equal(t, 2, first.IndividualCount)
	require.True(t, first.CoordinateUncertaintyM.Valid)
	assert.Equal(t, 250.0, first.CoordinateUncertaintyM.Float64)

	second := occs[1]
	// Split date columns work without an eventDate cell.
	assert.Equal(t, 2015, second.Year)
	assert.Equal(t, 12, second.Month)
	assert.Equal(t, "Winter", second.Season)
	assert.Equal(t, 2010, second.Decade)
	// GBIF count stays unreported, not defaulted to 1.
	assert.Equal(t, 0, second.IndividualCount)
	assert.False(t, second.CoordinateUncertaintyM.Valid)
}

func TestFromGBIFMalformed(t *testing.T) {
	rows := []reconcile.GBIFRow{
		{
			GbifID:           "2001",
			Species:          "Gypaetus barbatus",
			DecimalLatitude:  "not-a-number",
			DecimalLongitude: "",
			EventDate:        "sometime in June",
			IndividualCount:  "many",
		},
	}

	occs := reconcile.FromGBIF(rows)
	require.Len(t, occs, 1)

	occ := occs[0]
	// Malformed fields are nulled, the record itself survives.
	assert.True(t, math.IsNaN(occ.Latitude))
	assert.True(t, math.IsNaN(occ.Longitude))
	assert.Empty(t, occ.EventDate)
	assert.Zero(t, occ.Year)
	assert.Zero(t, occ.Month)
	assert.Zero(t, occ.Day)
	assert.Empty(t, occ.Season)
	assert.Zero(t, occ.IndividualCount)
}

func TestFromINat(t *testing.T) {
	rows := []reconcile.INatRow{
		{
			ID:             "9001",
			ScientificName: "Trillium govanianum",
			Latitude:       "34.05",
			Longitude:      "74.38",
			ObservedOn:     "2023-04-18",
			PlaceGuess:     "Gulmarg, Jammu and Kashmir",
		},
	}

	occs := reconcile.FromINat(rows, "Kashmir Himalaya")
	require.Len(t, occs, 1)

	occ := occs[0]
	assert.Equal(t, "Trillium govanianum", occ.Species)
	assert.Equal(t, "Trillium govanianum", occ.ScientificName)
	assert.Equal(t, schema.SourceINat, occ.DataSource)
	// Fixed values the provider cannot supply.
	assert.Equal(t, "HumanObservation", occ.BasisOfRecord)
	assert.Equal(t, 1, occ.IndividualCount)
	assert.False(t, occ.CoordinateUncertaintyM.Valid)
	assert.Equal(t, "Kashmir Himalaya", occ.StateProvince)

	assert.Equal(t, "2023-04-18", occ.EventDate)
	assert.Equal(t, "Spring", occ.Season)
	assert.Equal(t, "Gulmarg, Jammu and Kashmir", occ.Locality)
}

func TestFromINatBadDate(t *testing.T) {
	rows := []reconcile.INatRow{
		{
			ID:             "9002",
			ScientificName: "Saussurea costus",
			Latitude:       "34.2",
			Longitude:      "75.0",
			ObservedOn:     "18/04/2023",
		},
	}

	occs := reconcile.FromINat(rows, "Kashmir Himalaya")
	require.Len(t, occs, 1)
	assert.Empty(t, occs[0].EventDate)
	assert.Zero(t, occs[0].Year)
}
