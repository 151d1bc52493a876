package cmd

import (
	"testing"

	"github.com/gnames/gnoccur/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRunCmd_Flags verifies the run command registers
// its pipeline override flags.
func TestGetRunCmd_Flags(t *testing.T) {
	cmd := getRunCmd()
	require.NotNil(t, cmd)

	for _, name := range []string{
		"format", "output", "jobs",
		"cell-size", "split-year", "max-uncertainty",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name),
			"flag %s should be registered", name)
	}
}

// TestRunOptions verifies flag values convert into config
// options and zero values are skipped.
func TestRunOptions(t *testing.T) {
	opts := runOptions(0, 0, 0, 0)
	assert.Empty(t, opts, "unset flags should produce no options")

	opts = runOptions(4, 0.25, 2015, 500)
	require.Len(t, opts, 4)

	c := config.New()
	c.Update(opts)
	assert.Equal(t, 4, c.JobsNumber)
	assert.Equal(t, 0.25, c.Grid.CellSizeDegrees)
	assert.Equal(t, 2015, c.Scoring.Trend.SplitYear)
	assert.Equal(t, float64(500), c.Quality.MaxUncertaintyMeters)
}
