// Package ioingest reads provider CSV snapshots from disk into the
// raw row types of the reconcile package. Columns are located by
// header name, so column order and extra columns do not matter.
package ioingest

import (
	"bufio"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnoccur/pkg/reconcile"
)

// ReadGBIF reads a GBIF occurrence snapshot. Both comma and
// tab-delimited exports are accepted; GBIF's "simple" download is
// tab-delimited even with a .csv name.
func ReadGBIF(path string) ([]reconcile.GBIFRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	defer f.Close()

	r, header, err := newReader(f)
	if err != nil {
		return nil, ReadError(path, err)
	}

	cols, err := columnIndex(header, []string{
		"gbifID", "species", "decimalLatitude", "decimalLongitude",
	})
	if err != nil {
		return nil, HeaderError(path, err)
	}

	var res []reconcile.GBIFRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ReadError(path, err)
		}
		res = append(res, reconcile.GBIFRow{
			GbifID:                        cols.cell(rec, "gbifID"),
			Species:                       cols.cell(rec, "species"),
			ScientificName:                cols.cell(rec, "scientificName"),
			DecimalLatitude:               cols.cell(rec, "decimalLatitude"),
			DecimalLongitude:              cols.cell(rec, "decimalLongitude"),
			EventDate:                     cols.cell(rec, "eventDate"),
			Year:                          cols.cell(rec, "year"),
			Month:                         cols.cell(rec, "month"),
			Day:                           cols.cell(rec, "day"),
			BasisOfRecord:                 cols.cell(rec, "basisOfRecord"),
			IndividualCount:               cols.cell(rec, "individualCount"),
			Locality:                      cols.cell(rec, "locality"),
			StateProvince:                 cols.cell(rec, "stateProvince"),
			CoordinateUncertaintyInMeters: cols.cell(rec, "coordinateUncertaintyInMeters"),
		})
	}

	slog.Info("read provider snapshot",
		"provider", "gbif", "path", path, "rows", len(res))
	return res, nil
}

// ReadINat reads an iNaturalist observations export.
func ReadINat(path string) ([]reconcile.INatRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	defer f.Close()

	r, header, err := newReader(f)
	if err != nil {
		return nil, ReadError(path, err)
	}

	cols, err := columnIndex(header, []string{
		"id", "scientific_name", "latitude", "longitude",
	})
	if err != nil {
		return nil, HeaderError(path, err)
	}

	var res []reconcile.INatRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ReadError(path, err)
		}
		res = append(res, reconcile.INatRow{
			ID:             cols.cell(rec, "id"),
			ScientificName: cols.cell(rec, "scientific_name"),
			Latitude:       cols.cell(rec, "latitude"),
			Longitude:      cols.cell(rec, "longitude"),
			ObservedOn:     cols.cell(rec, "observed_on"),
			PlaceGuess:     cols.cell(rec, "place_guess"),
		})
	}

	slog.Info("read provider snapshot",
		"provider", "inaturalist", "path", path, "rows", len(res))
	return res, nil
}

// newReader sniffs the delimiter from the header line and returns a
// CSV reader positioned after the header.
func newReader(f *os.File) (*csv.Reader, []string, error) {
	br := bufio.NewReader(f)
	head, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, nil, err
	}

	comma := ','
	line, _, _ := strings.Cut(string(head), "\n")
	if strings.ContainsRune(line, '\t') {
		comma = '\t'
	}

	r := csv.NewReader(br)
	r.Comma = comma
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, err
	}
	return r, header, nil
}
