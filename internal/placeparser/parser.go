// Package placeparser turns a noisy block of copied or scraped text
// describing saved map locations into typed, categorized, deduplicated
// place records. The engine is deterministic and rule-based, holds no
// state across calls, and is safe for concurrent use.
package placeparser

import (
	"fmt"
	"unicode/utf8"

	"maplist/backend/internal/placeparser/classify"
	"maplist/backend/internal/placeparser/core"
	"maplist/backend/internal/placeparser/extract"
	"maplist/backend/internal/placeparser/htmltext"
	"maplist/backend/internal/placeparser/segment"
)

// Options control one parse call.
type Options struct {
	// Kind selects the input interpretation; empty means InputAuto,
	// which sniffs markup and otherwise treats the input as copied text.
	Kind core.InputKind
	// SourceURL is an optional pass-through for the list's canonical
	// URL, supplied by an external resolver. The engine never derives it.
	SourceURL string
}

// Parse runs the extraction engine over one block of input.
// Empty or entirely-noise input yields an empty result, not an error.
func Parse(input string) (*core.ExtractionResult, error) {
	return ParseWithOptions(input, Options{})
}

// ParseWithOptions is Parse with explicit input kind and source URL.
// The dedup set is scoped to the call and discarded with it.
func ParseWithOptions(input string, opts Options) (*core.ExtractionResult, error) {
	if !utf8.ValidString(input) {
		return nil, core.ErrInvalidInput
	}
	kind := opts.Kind
	if kind == "" {
		kind = core.InputAuto
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("invalid input kind: %s", kind)
	}

	text := input
	if kind == core.InputHTML || (kind == core.InputAuto && htmltext.LooksLikeHTML(input)) {
		flattened, err := htmltext.Flatten(input)
		if err != nil {
			return nil, fmt.Errorf("flatten html: %w", err)
		}
		text = flattened
	}

	title, lines := segment.Segment(text)
	places := make([]core.PlaceRecord, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		place, ok := extract.ExtractPlace(line)
		if !ok {
			continue
		}
		place.PrimaryCategory = classify.Classify(place.DetailedCategory)
		// Rating is the sole acceptance gate: zero means not found.
		if place.Rating == 0 {
			continue
		}
		key := place.IdentityKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		places = append(places, place)
	}

	return &core.ExtractionResult{
		ListTitle:     title,
		ListSourceURL: opts.SourceURL,
		UIConfig:      core.DefaultUIConfig(),
		Places:        places,
	}, nil
}
