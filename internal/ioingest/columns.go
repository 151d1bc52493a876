package ioingest

import (
	"fmt"
	"strings"
)

// columns maps header names to their positions in a snapshot.
type columns map[string]int

// columnIndex builds the header map and checks that the required
// columns are present. Header names are matched case-insensitively
// and a UTF-8 BOM on the first name is tolerated.
func columnIndex(header []string, required []string) (columns, error) {
	cols := make(columns, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := cols[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s",
			strings.Join(missing, ", "))
	}
	return cols, nil
}

// cell returns the value of the named column in a record, empty string
// when the column is absent or the record is short.
func (c columns) cell(rec []string, name string) string {
	ix, ok := c[strings.ToLower(name)]
	if !ok || ix >= len(rec) {
		return ""
	}
	return rec[ix]
}
