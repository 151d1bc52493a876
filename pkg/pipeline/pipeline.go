// Package pipeline runs the full reconciliation and scoring sequence:
// provider rows in, canonical occurrences and derived priority tables
// out. Every run recomputes all derived tables from scratch.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnoccur/pkg/aggregate"
	"github.com/gnames/gnoccur/pkg/config"
	"github.com/gnames/gnoccur/pkg/dedupe"
	"github.com/gnames/gnoccur/pkg/parserpool"
	"github.com/gnames/gnoccur/pkg/quality"
	"github.com/gnames/gnoccur/pkg/reconcile"
	"github.com/gnames/gnoccur/pkg/schema"
	"github.com/gnames/gnoccur/pkg/score"
	"github.com/gnames/gnoccur/pkg/taxon"
	"github.com/google/uuid"
)

// Result carries the canonical table and all derived tables of one
// pipeline run, plus its diagnostics.
type Result struct {
	// RunID identifies the run in logs and exports.
	RunID string

	Occurrences       []schema.Occurrence
	Summaries         []schema.SpeciesSummary
	SpeciesPriorities []schema.SpeciesPriority
	GridCells         []schema.GridCell

	QualityReport     quality.Report
	DuplicatesRemoved int
}

// Run executes the pipeline over the given provider snapshots. The
// configuration is validated first; an empty combined input is an
// error because every derived table would be empty too.
func Run(
	ctx context.Context,
	cfg *config.Config,
	gbifRows []reconcile.GBIFRow,
	inatRows []reconcile.INatRow,
	pool parserpool.Pool,
) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(gbifRows)+len(inatRows) == 0 {
		return nil, emptyInputError()
	}

	start := time.Now()
	res := &Result{RunID: uuid.NewString()}
	slog.Info("starting pipeline run",
		"run_id", res.RunID,
		"region", cfg.Region.Name,
		"gbif_rows", len(gbifRows),
		"inat_rows", len(inatRows),
	)

	gn.Info("Reconciling <em>%d</em> GBIF and <em>%d</em> iNaturalist records.",
		len(gbifRows), len(inatRows))
	occs := reconcile.FromGBIF(gbifRows)
	occs = append(occs, reconcile.FromINat(inatRows, cfg.Region.Name)...)

	occs, report := quality.Filter(occs, cfg.Region, cfg.Quality)
	res.QualityReport = report
	for _, st := range report {
		slog.Info("quality filter stage",
			"run_id", res.RunID,
			"stage", st.Stage,
			"retained", st.Retained,
			"removed", st.Removed,
		)
	}
	gn.Info("Quality filter retained <em>%d</em> records.", len(occs))

	occs, removed := dedupe.Deduplicate(occs)
	res.DuplicatesRemoved = removed
	gn.Info("Removed <em>%d</em> cross-source duplicates.", removed)

	occs, err := taxon.Normalize(ctx, occs, pool, cfg.JobsNumber)
	if err != nil {
		return nil, err
	}
	res.Occurrences = occs

	res.Summaries = aggregate.Summaries(occs)
	res.SpeciesPriorities = score.SpeciesPriorities(
		res.Summaries, occs, cfg.Scoring, cfg.Grid.CellSizeDegrees,
	)
	res.GridCells = score.GridPriorities(
		occs, res.SpeciesPriorities, cfg.Scoring, cfg.Grid.CellSizeDegrees,
	)

	elapsed := time.Since(start).Seconds()
	slog.Info("pipeline run finished",
		"run_id", res.RunID,
		"occurrences", len(res.Occurrences),
		"species", len(res.Summaries),
		"grid_cells", len(res.GridCells),
		"elapsed", elapsed,
	)
	gn.Info(
		"Scored <em>%d</em> species over <em>%d</em> grid cells in %s.",
		len(res.Summaries), len(res.GridCells), gnfmt.TimeString(elapsed),
	)

	return res, nil
}
