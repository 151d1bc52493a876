/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnoccur/internal/iodb"
	"github.com/gnames/gnoccur/internal/ioexport"
	"github.com/gnames/gnoccur/internal/iofs"
	"github.com/gnames/gnoccur/internal/ioingest"
	"github.com/gnames/gnoccur/internal/iosources"
	"github.com/gnames/gnoccur/pkg/config"
	"github.com/gnames/gnoccur/pkg/gnoccur"
	"github.com/gnames/gnoccur/pkg/parserpool"
	"github.com/gnames/gnoccur/pkg/pipeline"
	"github.com/gnames/gnoccur/pkg/reconcile"
	"github.com/gnames/gnoccur/pkg/sources"
	"github.com/spf13/cobra"
)

// getRunCmd returns the run command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getRunCmd() *cobra.Command {
	var (
		format         string
		outDir         string
		jobs           int
		cellSize       float64
		splitYear      int
		maxUncertainty float64
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the reconciliation and scoring pipeline",
		Long: `Run the full pipeline over the configured provider snapshots.

This command:
  1. Reads sources.yaml to discover provider snapshots
  2. Conforms GBIF and iNaturalist rows to the canonical schema
  3. Applies the quality filter and removes cross-source duplicates
  4. Normalizes species names to genus+species binomials
  5. Computes species summaries and priority scores
  6. Aggregates grid cells and scores area priorities
  7. Exports the four result tables

Provider snapshots configured in: ~/.config/gnoccur/sources.yaml

Examples:
  # Run and write CSV tables into the current directory
  gnoccur run

  # Write an SQLite file into a target directory
  gnoccur run -f sqlite -o ./results

  # Load the tables into PostgreSQL
  gnoccur run --format postgres`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptions(jobs, cellSize, splitYear, maxUncertainty)
			err := runPipeline(format, outDir, opts)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	runCmd.Flags().StringVarP(
		&format, "format", "f", gnoccur.FormatCSV,
		"output format: csv, json, sqlite or postgres",
	)
	runCmd.Flags().StringVarP(
		&outDir, "output", "o", ".",
		"directory for output files",
	)
	runCmd.Flags().IntVarP(
		&jobs, "jobs", "j", 0,
		"number of concurrent name-parsing workers (0 = config value)",
	)
	runCmd.Flags().Float64Var(
		&cellSize, "cell-size", 0,
		"grid cell size in degrees (0 = config value)",
	)
	runCmd.Flags().IntVar(
		&splitYear, "split-year", 0,
		"year splitting the early and recent trend periods (0 = config value)",
	)
	runCmd.Flags().Float64Var(
		&maxUncertainty, "max-uncertainty", 0,
		"maximum coordinate uncertainty in meters (0 = config value)",
	)

	return runCmd
}

// runOptions converts the run flags into config options. Zero values
// mean the flag was not given and the config file value stands.
func runOptions(
	jobs int,
	cellSize float64,
	splitYear int,
	maxUncertainty float64,
) []config.Option {
	var opts []config.Option
	if jobs > 0 {
		opts = append(opts, config.OptJobsNumber(jobs))
	}
	if cellSize > 0 {
		opts = append(opts, config.OptCellSizeDegrees(cellSize))
	}
	if splitYear > 0 {
		opts = append(opts, config.OptTrendSplitYear(splitYear))
	}
	if maxUncertainty > 0 {
		opts = append(opts, config.OptMaxUncertaintyMeters(maxUncertainty))
	}
	return opts
}

func runPipeline(format, outDir string, opts []config.Option) error {
	ctx := context.Background()

	if len(opts) > 0 {
		cfg.Update(opts)
	}

	srcCfg, err := iosources.New(cfg).Load()
	if err != nil {
		return err
	}

	var gbifRows []reconcile.GBIFRow
	var inatRows []reconcile.INatRow
	for _, ds := range srcCfg.Datasets {
		switch ds.Provider {
		case sources.ProviderGBIF:
			rows, err := ioingest.ReadGBIF(ds.Path)
			if err != nil {
				return err
			}
			gbifRows = append(gbifRows, rows...)
		case sources.ProviderINat:
			rows, err := ioingest.ReadINat(ds.Path)
			if err != nil {
				return err
			}
			inatRows = append(inatRows, rows...)
		}
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return iofs.CreateDirError(outDir, err)
	}

	pool := parserpool.NewPool(cfg.JobsNumber)
	defer pool.Close()

	res, err := pipeline.Run(ctx, cfg, gbifRows, inatRows, pool)
	if err != nil {
		return err
	}

	exp, err := ioexport.New(cfg, format, outDir, iodb.NewPgxOperator())
	if err != nil {
		return err
	}
	if err := exp.Export(ctx, res); err != nil {
		return err
	}

	gn.Info("Export finished, format <em>%s</em>.", format)
	return nil
}
