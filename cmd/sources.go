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
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnoccur/internal/iosources"
	"github.com/gnames/gnoccur/pkg/config"
	"github.com/spf13/cobra"
)

// getSourcesCmd returns the sources command.
func getSourcesCmd() *cobra.Command {
	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "List the configured provider snapshots",
		Long: `Show the provider snapshots configured in sources.yaml with
their paths, after validating the file.

Examples:
  gnoccur sources`,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSources()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return sourcesCmd
}

func runSources() error {
	srcCfg, err := iosources.New(cfg).Load()
	if err != nil {
		return err
	}

	gn.Info(
		"Found <em>%d</em> datasets in <em>%s</em>.",
		len(srcCfg.Datasets), config.SourcesFilePath(cfg.HomeDir),
	)
	for _, ds := range srcCfg.Datasets {
		title := ds.Title
		if title == "" {
			title = "-"
		}
		fmt.Printf("%-12s  %-40s  %s\n", ds.Provider, title, ds.Path)
	}

	return nil
}
