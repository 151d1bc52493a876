package ioexport

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnoccur/pkg/pipeline"
)

// csvExporter writes one CSV file per result table into outDir.
type csvExporter struct {
	outDir string
}

func (e *csvExporter) Export(
	ctx context.Context,
	res *pipeline.Result,
) error {
	for _, t := range resultTables(res) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.writeTable(t); err != nil {
			return err
		}
	}
	return nil
}

func (e *csvExporter) writeTable(t table) error {
	path := filepath.Join(e.outDir, t.name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return CreateFileError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.columns); err != nil {
		return CSVError(path, err)
	}

	bar := pb.Full.Start(len(t.rows))
	bar.Set("prefix", "Writing "+t.name+": ")
	bar.Set(pb.CleanOnFinish, true)

	rec := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, v := range row {
			rec[i] = cellString(v)
		}
		if err := w.Write(rec); err != nil {
			bar.Finish()
			return CSVError(path, err)
		}
		bar.Add(1)
	}
	bar.Finish()

	w.Flush()
	if err := w.Error(); err != nil {
		return CSVError(path, err)
	}

	slog.Info("exported table",
		"format", "csv", "table", t.name,
		"rows", humanize.Comma(int64(len(t.rows))), "path", path)
	return nil
}
