// Package ioexport writes the result tables of a pipeline run to a
// persistence target: CSV or JSON files, an SQLite database file, or
// a PostgreSQL database.
package ioexport

import (
	"github.com/gnames/gnoccur/pkg/config"
	"github.com/gnames/gnoccur/pkg/db"
	"github.com/gnames/gnoccur/pkg/gnoccur"
)

// New returns the exporter for the given format. The PostgreSQL
// exporter needs a database operator; file exporters write into
// outDir.
func New(
	cfg *config.Config,
	format string,
	outDir string,
	op db.Operator,
) (gnoccur.Exporter, error) {
	switch format {
	case gnoccur.FormatCSV:
		return &csvExporter{outDir: outDir}, nil
	case gnoccur.FormatJSON:
		return &jsonExporter{outDir: outDir}, nil
	case gnoccur.FormatSQLite:
		return &sqliteExporter{outDir: outDir}, nil
	case gnoccur.FormatPostgres:
		return &pgExporter{cfg: cfg, operator: op}, nil
	default:
		return nil, FormatError(format)
	}
}
