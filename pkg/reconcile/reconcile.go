// Package reconcile maps provider-specific occurrence rows onto the
// canonical schema. This is a pure package: rows come in as the
// string-typed cells of the provider snapshots, coercion failures
// degrade to unknown values and never abort a run.
package reconcile

import (
	"database/sql"
	"math"
	"strconv"
	"strings"

	"github.com/gnames/gnoccur/pkg/schema"
)

// GBIFRow holds the raw cells of one GBIF snapshot row. All fields are
// strings exactly as exported; empty string means the cell was absent.
type GBIFRow struct {
	GbifID                        string
	Species                       string
	ScientificName                string
	DecimalLatitude               string
	DecimalLongitude              string
	EventDate                     string
	Year                          string
	Month                         string
	Day                           string
	BasisOfRecord                 string
	IndividualCount               string
	Locality                      string
	StateProvince                 string
	CoordinateUncertaintyInMeters string
}

// INatRow holds the raw cells of one iNaturalist snapshot row.
type INatRow struct {
	ID             string
	ScientificName string
	Latitude       string
	Longitude      string
	ObservedOn     string
	PlaceGuess     string
}

// FromGBIF conforms GBIF rows to the canonical schema. The original,
// possibly-missing individual count is kept (0 means "not reported");
// the count default of 1 applies only to citizen-science rows.
func FromGBIF(rows []GBIFRow) []schema.Occurrence {
	res := make([]schema.Occurrence, 0, len(rows))
	for _, row := range rows {
		occ := schema.Occurrence{
			ID:             schema.OccurrenceID(schema.SourceGBIF, row.GbifID),
			Species:        strings.TrimSpace(row.Species),
			ScientificName: strings.TrimSpace(row.ScientificName),
			Latitude:       parseCoord(row.DecimalLatitude),
			Longitude:      parseCoord(row.DecimalLongitude),
			BasisOfRecord:  strings.TrimSpace(row.BasisOfRecord),
			Locality:       strings.TrimSpace(row.Locality),
			StateProvince:  strings.TrimSpace(row.StateProvince),
			RecordID:       row.GbifID,
			DataSource:     schema.SourceGBIF,
		}

		occ.EventDate, occ.Year, occ.Month, occ.Day = parseEventDate(row.EventDate)

		// Explicit year/month/day columns win over the parsed date;
		// GBIF exports carry them pre-split.
		if y, ok := parseInt(row.Year); ok {
			occ.Year = y
		}
		if m, ok := parseInt(row.Month); ok {
			occ.Month = m
		}
		if d, ok := parseInt(row.Day); ok {
			occ.Day = d
		}

		if n, ok := parseInt(row.IndividualCount); ok && n >= 0 {
			occ.IndividualCount = n
		}

		if u, err := strconv.ParseFloat(
			strings.TrimSpace(row.CoordinateUncertaintyInMeters), 64,
		); err == nil && u >= 0 {
			occ.CoordinateUncertaintyM = sql.NullFloat64{Float64: u, Valid: true}
		}

		occ.Season = schema.SeasonFromMonth(occ.Month)
		occ.Decade = schema.DecadeFromYear(occ.Year)
		res = append(res, occ)
	}
	return res
}

// FromINat conforms iNaturalist rows to the canonical schema. The
// provider has no equivalents for several canonical fields, so they
// are fixed: basis HumanObservation, count 1, uncertainty absent, and
// stateProvince set to the study region name.
func FromINat(rows []INatRow, regionName string) []schema.Occurrence {
	res := make([]schema.Occurrence, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.ScientificName)
		occ := schema.Occurrence{
			ID:              schema.OccurrenceID(schema.SourceINat, row.ID),
			Species:         name,
			ScientificName:  name,
			Latitude:        parseCoord(row.Latitude),
			Longitude:       parseCoord(row.Longitude),
			BasisOfRecord:   "HumanObservation",
			IndividualCount: 1,
			Locality:        strings.TrimSpace(row.PlaceGuess),
			StateProvince:   regionName,
			RecordID:        row.ID,
			DataSource:      schema.SourceINat,
		}

		occ.EventDate, occ.Year, occ.Month, occ.Day = parseEventDate(row.ObservedOn)
		occ.Season = schema.SeasonFromMonth(occ.Month)
		occ.Decade = schema.DecadeFromYear(occ.Year)
		res = append(res, occ)
	}
	return res
}

// parseCoord converts a coordinate cell to decimal degrees. Missing or
// unparsable cells become NaN, the canonical "no coordinate" value the
// quality filter checks for.
func parseCoord(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// Some exports format integers as floats ("3.0").
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// parseEventDate normalizes a provider date cell to YYYY-MM-DD and its
// numeric parts. A cell that fails to parse yields empty date and zero
// year/month/day; downstream stages tolerate the unknowns.
func parseEventDate(s string) (string, int, int, int) {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		// Timestamps like 2021-06-03T10:15:00 keep their date part.
		s = s[:10]
	}
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return "", 0, 0, 0
	}

	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return "", 0, 0, 0
	}
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", 0, 0, 0
	}

	date := pad4(year) + "-" + pad2(month) + "-" + pad2(day)
	return date, year, month, day
}

func pad2(i int) string {
	if i < 10 {
		return "0" + strconv.Itoa(i)
	}
	return strconv.Itoa(i)
}

func pad4(i int) string {
	s := strconv.Itoa(i)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
