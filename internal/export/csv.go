// Package export serializes accepted place records for the CSV/clipboard
// consumers of the parse result. Every column is always present so
// downstream consumers never need null handling.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"maplist/backend/internal/placeparser/core"
)

var csvHeader = []string{
	"place_name",
	"primary_category",
	"detailed_category",
	"star_rating",
	"review_count",
	"price_range",
	"price_range_code",
	"user_notes",
	"google_maps_link",
}

// WriteCSV writes a header row plus one row per record, in input order.
func WriteCSV(w io.Writer, places []core.PlaceRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range places {
		row := []string{
			p.Name,
			string(p.PrimaryCategory),
			p.DetailedCategory,
			strconv.FormatFloat(p.Rating, 'f', 1, 64),
			strconv.Itoa(p.ReviewCount),
			p.PriceLabel,
			strconv.Itoa(p.PriceLevel),
			p.Notes,
			p.SourceLink,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
