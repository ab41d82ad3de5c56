package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"maplist/backend/internal/placeparser/core"
)

func TestWriteCSV(t *testing.T) {
	places := []core.PlaceRecord{
		{
			Name:             "Ichiran Ramen",
			PrimaryCategory:  core.CategoryFood,
			DetailedCategory: "Ramen",
			Rating:           4.6,
			ReviewCount:      2301,
			PriceLabel:       "$$",
			PriceLevel:       2,
			Notes:            "Visited",
			SourceLink:       "https://maps.example/a",
		},
		{
			Name:             "Mystery Spot",
			PrimaryCategory:  core.CategoryOther,
			DetailedCategory: core.DefaultDetailCategory,
			Rating:           4.0,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, places); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("unexpected row count: got=%d want=3", len(rows))
	}
	if !reflect.DeepEqual(rows[0], csvHeader) {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	want := []string{"Ichiran Ramen", "Food", "Ramen", "4.6", "2301", "$$", "2", "Visited", "https://maps.example/a"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Fatalf("unexpected row: got=%v want=%v", rows[1], want)
	}
	// Every column is present even when fields were never recovered.
	wantEmpty := []string{"Mystery Spot", "Other", "Place", "4.0", "0", "", "0", "", ""}
	if !reflect.DeepEqual(rows[2], wantEmpty) {
		t.Fatalf("unexpected row: got=%v want=%v", rows[2], wantEmpty)
	}
}

func TestWriteCSVNoPlaces(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back csv: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %v", rows)
	}
}
