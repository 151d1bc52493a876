package taxon_test

import (
	"context"
	"testing"

	"github.com/gnames/gnoccur/pkg/parserpool"
	"github.com/gnames/gnoccur/pkg/schema"
	"github.com/gnames/gnoccur/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	tests := []struct {
		name     string
		species  string
		binomial string
	}{
		{
			name:     "binomial stays",
			species:  "Panthera uncia",
			binomial: "Panthera uncia",
		},
		{
			name:     "trinomial truncated",
			species:  "Canis lupus chanco",
			binomial: "Canis lupus",
		},
		{
			name:     "authorship stripped",
			species:  "Saussurea costus (Falc.) Lipsch.",
			binomial: "Saussurea costus",
		},
		{
			name:     "single token passed through",
			species:  "Panthera",
			binomial: "Panthera",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occs := []schema.Occurrence{{Species: tt.species}}
			res, err := taxon.Normalize(context.Background(), occs, pool, 2)
			require.NoError(t, err)
			require.Len(t, res, 1)
			assert.Equal(t, tt.binomial, res[0].Species)
			assert.Equal(t, tt.species, res[0].OriginalName)
		})
	}
}

func TestNormalizeKeepsOrder(t *testing.T) {
	pool := parserpool.NewPool(4)
	defer pool.Close()

	occs := []schema.Occurrence{
		{Species: "Moschus cupreus"},
		{Species: "Gypaetus barbatus aureus"},
		{Species: "Moschus cupreus"},
		{Species: "Trillium govanianum Wall. ex D.Don"},
	}

	res, err := taxon.Normalize(context.Background(), occs, pool, 4)
	require.NoError(t, err)
	require.Len(t, res, 4)

	assert.Equal(t, "Moschus cupreus", res[0].Species)
	assert.Equal(t, "Gypaetus barbatus", res[1].Species)
	assert.Equal(t, "Moschus cupreus", res[2].Species)
	assert.Equal(t, "Trillium govanianum", res[3].Species)

	// Input untouched.
	assert.Equal(t, "Gypaetus barbatus aureus", occs[1].Species)
	assert.Empty(t, occs[1].OriginalName)
}
