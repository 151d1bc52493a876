package ioexport

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnoccur/pkg/pipeline"
	_ "modernc.org/sqlite"
)

// sqliteExporter writes all result tables into one SQLite file in
// outDir. An existing file from a previous run is replaced.
type sqliteExporter struct {
	outDir string
}

func (e *sqliteExporter) Export(
	ctx context.Context,
	res *pipeline.Result,
) error {
	path := filepath.Join(e.outDir, "gnoccur.sqlite")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return CreateFileError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return SQLiteError(path, err)
	}
	defer db.Close()

	for _, t := range resultTables(res) {
		if err := e.writeTable(ctx, db, t); err != nil {
			return err
		}
		slog.Info("exported table",
			"format", "sqlite", "table", t.name,
			"rows", humanize.Comma(int64(len(t.rows))), "path", path)
	}
	return nil
}

func (e *sqliteExporter) writeTable(
	ctx context.Context,
	db *sql.DB,
	t table,
) error {
	if _, err := db.ExecContext(ctx, createTableSQL(t)); err != nil {
		return SQLiteError(t.name, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return SQLiteError(t.name, err)
	}

	placeholders := strings.Repeat("?,", len(t.columns))
	insertSQL := "INSERT INTO " + t.name + " (" +
		strings.Join(t.columns, ", ") + ") VALUES (" +
		strings.TrimSuffix(placeholders, ",") + ")"

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		tx.Rollback()
		return SQLiteError(t.name, err)
	}
	defer stmt.Close()

	for _, row := range t.rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			tx.Rollback()
			return SQLiteError(t.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return SQLiteError(t.name, err)
	}
	return nil
}

// createTableSQL builds the DDL for a table, inferring column types
// from the first non-nil cell of each column.
func createTableSQL(t table) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(t.name)
	b.WriteString(" (")
	for i, col := range t.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col)
		b.WriteByte(' ')
		b.WriteString(columnType(t.rows, i))
	}
	b.WriteString(")")
	return b.String()
}

func columnType(rows [][]any, ix int) string {
	for _, row := range rows {
		switch row[ix].(type) {
		case nil:
			continue
		case int:
			return "INTEGER"
		case float64:
			return "REAL"
		default:
			return "TEXT"
		}
	}
	return "TEXT"
}
