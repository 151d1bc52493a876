package ioexport

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnoccur/internal/ioschema"
	"github.com/gnames/gnoccur/pkg/config"
	"github.com/gnames/gnoccur/pkg/db"
	"github.com/gnames/gnoccur/pkg/pipeline"
	"github.com/jackc/pgx/v5"
)

// pgExporter writes all result tables into PostgreSQL. The schema is
// created with AutoMigrate, previous rows are truncated, and the new
// rows are bulk-inserted with CopyFrom.
type pgExporter struct {
	cfg      *config.Config
	operator db.Operator
}

func (e *pgExporter) Export(
	ctx context.Context,
	res *pipeline.Result,
) error {
	if err := e.operator.Connect(ctx, &e.cfg.Database); err != nil {
		return err
	}
	defer e.operator.Close()

	mgr := ioschema.NewManager(e.operator)
	if err := mgr.Create(ctx); err != nil {
		return err
	}

	tables := resultTables(res)

	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.name
	}
	truncateSQL := "TRUNCATE " + strings.Join(names, ", ")
	if _, err := e.operator.Pool().Exec(ctx, truncateSQL); err != nil {
		return CopyError("truncate", err)
	}

	for _, t := range tables {
		if err := e.copyTable(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (e *pgExporter) copyTable(ctx context.Context, t table) error {
	bar := pb.Full.Start(len(t.rows))
	bar.Set("prefix", "Copying "+t.name+": ")
	bar.Set(pb.CleanOnFinish, true)

	batchSize := e.cfg.Database.BatchSize
	if batchSize < 1 {
		batchSize = len(t.rows)
	}

	for i := 0; i < len(t.rows); i += batchSize {
		end := min(i+batchSize, len(t.rows))
		batch := t.rows[i:end]

		_, err := e.operator.Pool().CopyFrom(
			ctx,
			pgx.Identifier{t.name},
			t.columns,
			pgx.CopyFromRows(batch),
		)
		if err != nil {
			bar.Finish()
			return CopyError(t.name, err)
		}
		bar.Add(len(batch))
	}
	bar.Finish()

	slog.Info("exported table",
		"format", "postgres", "table", t.name,
		"rows", humanize.Comma(int64(len(t.rows))))
	return nil
}
