// Package schema provides the canonical data model for GNoccur.
// The Occurrence table is the single source of truth; SpeciesSummary,
// SpeciesPriority and GridCell are derived views recomputed from it on
// every run, never updated incrementally.
package schema

import (
	"database/sql"

	"github.com/gnames/gnuuid"
)

// Data source identifiers for the two occurrence providers.
const (
	SourceGBIF = "GBIF"
	SourceINat = "iNaturalist"
)

// Occurrence is a single species observation record conformed to the
// canonical schema. Year, Month, Day and Decade use 0 for "unknown"
// because provider dates are optional and may fail to parse.
type Occurrence struct {
	// ID is UUID v5 generated from dataSource and recordId, so repeated
	// exports of the same snapshot are idempotent.
	ID string `gorm:"primaryKey;type:uuid"`

	// Species is the genus+species binomial after taxonomic
	// normalization.
	Species string `gorm:"type:varchar(255);index"`

	// ScientificName is the original full name as provided by the source.
	ScientificName string `gorm:"type:varchar(255)"`

	// OriginalName preserves the pre-normalization species value.
	OriginalName string `gorm:"type:varchar(255)"`

	// Latitude and Longitude are decimal degrees.
	Latitude  float64
	Longitude float64

	// EventDate is the observation date in YYYY-MM-DD form, or empty
	// when the source carries no date.
	EventDate string `gorm:"type:varchar(10)"`

	Year  int
	Month int
	Day   int

	// Season is derived from Month: Winter, Spring, Summer, Autumn.
	Season string `gorm:"type:varchar(10)"`

	// Decade is floor(year/10)*10, 0 when the year is unknown.
	Decade int

	// BasisOfRecord is the provider's record type, e.g. HumanObservation
	// or PreservedSpecimen.
	BasisOfRecord string `gorm:"type:varchar(50)"`

	// IndividualCount is the number of individuals observed.
	IndividualCount int

	Locality      string `gorm:"type:varchar(255)"`
	StateProvince string `gorm:"type:varchar(255)"`

	// CoordinateUncertaintyM distinguishes "absent" from zero meters.
	CoordinateUncertaintyM sql.NullFloat64

	// RecordID is unique within its source.
	RecordID string `gorm:"type:varchar(100)"`

	// DataSource is SourceGBIF or SourceINat.
	DataSource string `gorm:"type:varchar(20);index"`
}

// TableName returns the table name for the Occurrence model.
func (Occurrence) TableName() string {
	return "occurrences"
}

// OccurrenceID returns the deterministic UUID v5 for a record of the
// given source.
func OccurrenceID(dataSource, recordID string) string {
	return gnuuid.New(dataSource + "|" + recordID).String()
}

// SeasonFromMonth derives the season name from a calendar month.
// Returns empty string for unknown months.
func SeasonFromMonth(month int) string {
	switch month {
	case 12, 1, 2:
		return "Winter"
	case 3, 4, 5:
		return "Spring"
	case 6, 7, 8:
		return "Summer"
	case 9, 10, 11:
		return "Autumn"
	default:
		return ""
	}
}

// DecadeFromYear derives the decade from a year, 0 when unknown.
func DecadeFromYear(year int) int {
	if year <= 0 {
		return 0
	}
	return year / 10 * 10
}

// SpeciesSummary holds per-species record statistics. FirstYear and
// LastYear are 0 when no record of the species carries a year.
type SpeciesSummary struct {
	Species        string `gorm:"primaryKey;type:varchar(255)"`
	ScientificName string `gorm:"type:varchar(255)"`
	TotalRecords   int
	GbifRecords    int
	InatRecords    int
	FirstYear      int
	LastYear       int
}

// TableName returns the table name for the SpeciesSummary model.
func (SpeciesSummary) TableName() string {
	return "species_summaries"
}

// SpeciesPriority extends SpeciesSummary with conservation priority
// sub-scores. One row per SpeciesSummary row.
type SpeciesPriority struct {
	SpeciesSummary `gorm:"embedded"`

	// RarityScore is the step-function score over TotalRecords.
	RarityScore float64

	// NGridCells is the number of distinct grid cells the species
	// occupies.
	NGridCells int

	// RangeScore is the step-function score over NGridCells.
	RangeScore float64

	// Trend is recent minus early record counts around the split year.
	Trend int

	TrendScore float64

	// PriorityScore is the weighted sum of the three sub-scores.
	PriorityScore float64

	// PriorityLevel is the discrete tier derived from PriorityScore.
	PriorityLevel string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for the SpeciesPriority model.
func (SpeciesPriority) TableName() string {
	return "species_priorities"
}

// GridCell aggregates occurrences in one spatial grid cell and carries
// the area priority score. Immutable once produced.
type GridCell struct {
	// GridLon and GridLat identify the cell center at the configured
	// resolution.
	GridLon float64 `gorm:"primaryKey"`
	GridLat float64 `gorm:"primaryKey"`

	// SpeciesRichness is the distinct species count in the cell.
	SpeciesRichness int

	TotalObservations int

	// PrioritySpeciesRichness counts distinct species tiered Critical
	// or High.
	PrioritySpeciesRichness int

	// SurveyDateCount is the number of distinct observation dates,
	// a proxy for sampling effort.
	SurveyDateCount int

	// CorrectedRichness is richness normalized by ln(surveyDates+1).
	CorrectedRichness float64

	// Normalized sub-scores, each scaled to [0,100] by the per-run
	// maximum of its axis.
	PriorityNorm  float64
	CorrectedNorm float64
	TotalNorm     float64

	AreaPriorityScore float64
	AreaPriorityLevel string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for the GridCell model.
func (GridCell) TableName() string {
	return "grid_cells"
}
