// Package dedupe collapses duplicate occurrences recorded by more than
// one provider. The match is exact equality on (species, latitude,
// longitude, date); near-duplicates with slightly different coordinates
// or date granularity are a documented limitation and pass through.
package dedupe

import (
	"strconv"
	"strings"

	"github.com/gnames/gnoccur/pkg/schema"
)

// Deduplicate keeps the first-encountered record of every (species,
// latitude, longitude, date) group, preserving input order, and
// returns the number of records removed.
func Deduplicate(occs []schema.Occurrence) ([]schema.Occurrence, int) {
	seen := make(map[string]struct{}, len(occs))
	res := make([]schema.Occurrence, 0, len(occs))

	for i := range occs {
		key := groupKey(&occs[i])
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, occs[i])
	}

	return res, len(occs) - len(res)
}

// groupKey builds the exact-match duplicate key. Coordinates are
// formatted with strconv's shortest round-trip representation, so two
// records collide only when their float values are identical.
func groupKey(o *schema.Occurrence) string {
	var b strings.Builder
	b.WriteString(o.Species)
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(o.Latitude, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(o.Longitude, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(o.EventDate)
	return b.String()
}
