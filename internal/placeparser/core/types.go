package core

import (
	"errors"
	"strconv"
	"strings"
)

// Category is the coarse semantic bucket assigned to every place.
type Category string

const (
	CategoryFood  Category = "Food"
	CategoryDrink Category = "Drink"
	CategorySee   Category = "See"
	CategoryShop  Category = "Shop"
	CategoryOther Category = "Other"
)

// Valid handles internal valid behavior.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryDrink, CategorySee, CategoryShop, CategoryOther:
		return true
	default:
		return false
	}
}

// InputKind selects how raw input is interpreted before segmentation.
type InputKind string

const (
	InputAuto InputKind = "auto"
	InputText InputKind = "text"
	InputHTML InputKind = "html"
)

// Valid handles internal valid behavior.
func (k InputKind) Valid() bool {
	switch k {
	case InputAuto, InputText, InputHTML:
		return true
	default:
		return false
	}
}

// Sentinel defaults used when a field cannot be recovered. Output fields
// are always populated, never null.
const (
	DefaultListTitle      = "My Saved Places"
	UnknownPlaceName      = "Unknown Place"
	DefaultDetailCategory = "Place"
)

// ErrInvalidInput is returned when the supplied input is not text
// (not valid UTF-8). It is the only caller-visible failure of a parse.
var ErrInvalidInput = errors.New("input is not valid text")

// PlaceRecord is the normalized output entity for one saved place.
type PlaceRecord struct {
	Name             string   `json:"place_name"`
	PrimaryCategory  Category `json:"primary_category"`
	DetailedCategory string   `json:"detailed_category"`
	Rating           float64  `json:"star_rating"`
	ReviewCount      int      `json:"review_count"`
	PriceLabel       string   `json:"price_range"`
	PriceLevel       int      `json:"price_range_code"`
	Notes            string   `json:"user_notes"`
	SourceLink       string   `json:"google_maps_link"`
}

// IdentityKey is the dedup signature for a record. Category and notes are
// left out on purpose: the same venue can appear with slightly different
// category text across scrape passes and must still collapse to one entry.
func (p *PlaceRecord) IdentityKey() string {
	return strings.ToLower(p.Name) + "|" +
		strconv.FormatFloat(p.Rating, 'f', 1, 64) + "|" +
		strconv.Itoa(p.ReviewCount)
}

// SortingOption describes one sortable field for the rendering layer.
type SortingOption struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Icon  string `json:"icon_svg_placeholder"`
}

// FilterGroup describes one filterable field and its fixed value set.
type FilterGroup struct {
	Field        string   `json:"field"`
	Label        string   `json:"label"`
	Icon         string   `json:"icon_svg_placeholder"`
	UniqueValues []string `json:"unique_values"`
}

// UIConfig is the static descriptor shipped with every result. It is not
// derived from the parsed data.
type UIConfig struct {
	SortingOptions []SortingOption `json:"sorting_options"`
	FilterGroups   []FilterGroup   `json:"filter_groups"`
}

// DefaultUIConfig returns the fixed sort/filter descriptor. Other is
// excluded from the filterable category values: records classified Other
// stay visible but ungrouped.
func DefaultUIConfig() UIConfig {
	return UIConfig{
		SortingOptions: []SortingOption{
			{Field: "star_rating", Label: "Rating", Icon: "star"},
			{Field: "review_count", Label: "Popularity", Icon: "flame"},
			{Field: "price_range_code", Label: "Price", Icon: "tag"},
		},
		FilterGroups: []FilterGroup{
			{
				Field: "primary_category",
				Label: "Category",
				Icon:  "map_pin",
				UniqueValues: []string{
					string(CategoryFood),
					string(CategoryDrink),
					string(CategorySee),
					string(CategoryShop),
				},
			},
		},
	}
}

// ExtractionResult is the top-level output of one parse call.
type ExtractionResult struct {
	ListTitle     string        `json:"list_title"`
	ListSourceURL string        `json:"list_source_url"`
	UIConfig      UIConfig      `json:"ui_config"`
	Places        []PlaceRecord `json:"places"`
}
