package cmd

import (
	"fmt"
	"os"

	gnoccur "github.com/gnames/gnoccur/pkg/gnoccur"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gnoccur.Version, gnoccur.Build)
		os.Exit(0)
	}
}
