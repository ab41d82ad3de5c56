package placeparser

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"maplist/backend/internal/placeparser/core"
)

const tokyoTrip = `List Name: Tokyo Trip
Ichiran Ramen | 4.6 | (2,301) | Ramen · $$ [LINK: https://maps.example/a]
Sushi Dai | 4.8 | (512) | Sushi · $$$
Permanently closed Old Diner | 4.1 | (10) | Diner | $
`

func TestParseScenario(t *testing.T) {
	result, err := Parse(tokyoTrip)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.ListTitle != "Tokyo Trip" {
		t.Fatalf("unexpected title: got=%q want=%q", result.ListTitle, "Tokyo Trip")
	}
	if len(result.Places) != 2 {
		t.Fatalf("unexpected place count: got=%d want=2", len(result.Places))
	}

	first := result.Places[0]
	if first.Name != "Ichiran Ramen" || first.PrimaryCategory != core.CategoryFood {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.PriceLevel != 2 || first.SourceLink != "https://maps.example/a" {
		t.Fatalf("unexpected first record price/link: %+v", first)
	}

	second := result.Places[1]
	if second.Name != "Sushi Dai" || second.PrimaryCategory != core.CategoryFood || second.PriceLevel != 3 {
		t.Fatalf("unexpected second record: %+v", second)
	}
}

func TestParseEmptyInput(t *testing.T) {
	result, err := Parse("")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.ListTitle != core.DefaultListTitle {
		t.Fatalf("unexpected title: got=%q", result.ListTitle)
	}
	if result.ListSourceURL != "" {
		t.Fatalf("unexpected source url: got=%q", result.ListSourceURL)
	}
	if len(result.Places) != 0 {
		t.Fatalf("unexpected places: got=%v", result.Places)
	}
	if !reflect.DeepEqual(result.UIConfig, core.DefaultUIConfig()) {
		t.Fatalf("unexpected ui config: %+v", result.UIConfig)
	}
}

func TestParseRatingGate(t *testing.T) {
	input := strings.Join([]string{
		"Has Rating | 4.2 | (50) | Cafe",
		"No Rating | (120) | Diner | $$",
		"Zero Rating | 0.0 | (5) | Diner",
	}, "\n")
	result, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Places) != 1 || result.Places[0].Name != "Has Rating" {
		t.Fatalf("rating gate failed: %+v", result.Places)
	}
}

func TestParseDedup(t *testing.T) {
	input := strings.Join([]string{
		"Cafe X | 4.2 | (50) | Cafe",
		"Cafe X | 4.2 | (50) | Cafe  ",
		"cafe x | 4.2 | (50) | Coffee House",
		"Cafe X | 4.3 | (50) | Cafe",
	}, "\n")
	result, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	// Same name+rating+reviews collapses to the first occurrence, even
	// with different category text; a different rating stays separate.
	if len(result.Places) != 2 {
		t.Fatalf("unexpected place count: got=%d want=2", len(result.Places))
	}
	if result.Places[0].DetailedCategory != "Cafe" {
		t.Fatalf("dedup kept the wrong record: %+v", result.Places[0])
	}
	if result.Places[1].Rating != 4.3 {
		t.Fatalf("distinct rating dropped: %+v", result.Places[1])
	}
}

func TestParseIdempotent(t *testing.T) {
	first, err := Parse(tokyoTrip)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	second, err := Parse(tokyoTrip)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("parse is not idempotent:\nfirst=%s\nsecond=%s", a, b)
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	_, err := Parse("Cafe \xff | 4.2")
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParseInvalidKind(t *testing.T) {
	_, err := ParseWithOptions("x", Options{Kind: core.InputKind("rss")})
	if err == nil {
		t.Fatalf("expected error for invalid input kind")
	}
}

func TestParseSourceURLPassThrough(t *testing.T) {
	result, err := ParseWithOptions("Cafe X | 4.2 | (50) | Cafe", Options{
		SourceURL: "https://maps.example/list/abc",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.ListSourceURL != "https://maps.example/list/abc" {
		t.Fatalf("source url not passed through: got=%q", result.ListSourceURL)
	}
}

func TestParseHTMLInput(t *testing.T) {
	html := `<html><body><div role="feed">
<div><a href="https://maps.example/a"><span>Ichiran Ramen</span></a><span>4.6</span><span>(2,301)</span><span>Ramen · $$</span></div>
<div><span>Sushi Dai</span><span>4.8</span><span>(512)</span><span>Sushi · $$$</span></div>
<div><span>Old Diner</span><span>Permanently closed</span><span>4.1</span></div>
</div></body></html>`

	for _, kind := range []core.InputKind{core.InputAuto, core.InputHTML} {
		result, err := ParseWithOptions(html, Options{Kind: kind})
		if err != nil {
			t.Fatalf("ParseWithOptions(kind=%s) error = %v", kind, err)
		}
		if len(result.Places) != 2 {
			t.Fatalf("kind=%s: unexpected place count: got=%d want=2", kind, len(result.Places))
		}
		if result.Places[0].Name != "Ichiran Ramen" || result.Places[0].SourceLink != "https://maps.example/a" {
			t.Fatalf("kind=%s: unexpected first record: %+v", kind, result.Places[0])
		}
		if result.Places[1].Rating != 4.8 || result.Places[1].PriceLevel != 3 {
			t.Fatalf("kind=%s: unexpected second record: %+v", kind, result.Places[1])
		}
	}
}

func TestParseTextKindSkipsHTMLDetection(t *testing.T) {
	// Markup-looking input parsed as text goes through segmentation as-is.
	result, err := ParseWithOptions("<html> Cafe | 4.2", Options{Kind: core.InputText})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Places) != 1 || result.Places[0].Name != "<html> Cafe" {
		t.Fatalf("unexpected places: %+v", result.Places)
	}
}

func TestParseConcurrentCalls(t *testing.T) {
	done := make(chan *core.ExtractionResult, 8)
	for i := 0; i < 8; i++ {
		go func() {
			result, err := Parse(tokyoTrip)
			if err != nil {
				t.Errorf("Parse() error = %v", err)
			}
			done <- result
		}()
	}
	for i := 0; i < 8; i++ {
		result := <-done
		if result == nil || len(result.Places) != 2 {
			t.Fatalf("unexpected concurrent result: %+v", result)
		}
	}
}
