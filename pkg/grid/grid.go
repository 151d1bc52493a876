// Package grid assigns occurrences to fixed-size spatial grid cells.
// A cell is identified by the nearest multiple of the cell size in
// each axis; many occurrences map to one cell, no spatial join against
// external polygons is involved.
package grid

import (
	"math"

	"github.com/gnames/gnoccur/pkg/schema"
)

// Cell identifies one grid cell by its integer axis indices. Integer
// indices keep map keys exact; the degree coordinates are derived on
// demand.
type Cell struct {
	LonIx int
	LatIx int
}

// Assign maps an occurrence to its grid cell. Rounding is to nearest,
// ties away from zero (math.Round), so an occurrence at (34.27, 73.46)
// with 0.1° cells lands in cell (34.3, 73.5).
func Assign(o *schema.Occurrence, cellSize float64) Cell {
	return Cell{
		LonIx: int(math.Round(o.Longitude / cellSize)),
		LatIx: int(math.Round(o.Latitude / cellSize)),
	}
}

// Coords returns the cell's degree coordinates. The product of index
// and cell size is snapped to 1e-6 degrees to keep exported values
// free of float artifacts (34.3, not 34.300000000000004).
func (c Cell) Coords(cellSize float64) (lon, lat float64) {
	lon = snap(float64(c.LonIx) * cellSize)
	lat = snap(float64(c.LatIx) * cellSize)
	return lon, lat
}

func snap(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
