package ioexport

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnoccur/pkg/pipeline"
	"github.com/gnames/gnoccur/pkg/schema"
)

// jsonExporter writes one pretty-printed JSON file per result table
// into outDir.
type jsonExporter struct {
	outDir string
}

func (e *jsonExporter) Export(
	ctx context.Context,
	res *pipeline.Result,
) error {
	files := []struct {
		name string
		data any
	}{
		{schema.Occurrence{}.TableName(), res.Occurrences},
		{schema.SpeciesSummary{}.TableName(), res.Summaries},
		{schema.SpeciesPriority{}.TableName(), res.SpeciesPriorities},
		{schema.GridCell{}.TableName(), res.GridCells},
	}

	enc := gnfmt.GNjson{Pretty: true}
	for _, fl := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := enc.Encode(fl.data)
		if err != nil {
			return JSONError(fl.name, err)
		}

		path := filepath.Join(e.outDir, fl.name+".json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return CreateFileError(path, err)
		}
		slog.Info("exported table",
			"format", "json", "table", fl.name, "path", path)
	}
	return nil
}
