package gnoccur

import (
	"context"

	"github.com/gnames/gnoccur/pkg/pipeline"
)

// Export format identifiers accepted by the run command.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatSQLite   = "sqlite"
	FormatPostgres = "postgres"
)

// Exporter writes the four result tables of a pipeline run to a
// persistence target. One exporter handles one output format.
type Exporter interface {
	// Export writes all tables of the result. Partial writes from a
	// failed export are not cleaned up; re-running replaces them.
	Export(ctx context.Context, res *pipeline.Result) error
}
