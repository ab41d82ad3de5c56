// Package extract maps one candidate line onto the typed place schema.
// Field identity is inferred per token from qualitative shape rules, not
// from token position: the same line can carry its fields in any order.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"maplist/backend/internal/placeparser/core"
)

const (
	fieldDelimiter = "|"
	priceSeparator = "·"
)

var (
	// ratingRE is intentionally lenient: it accepts any [0-5].d shape,
	// including values like 5.9 that exceed the real rating scale.
	ratingRE      = regexp.MustCompile(`^[0-5]\.\d$`)
	reviewCountRE = regexp.MustCompile(`^\([\d,]+\)$`)
	priceRunRE    = regexp.MustCompile(`\$+`)
	digitRE       = regexp.MustCompile(`\d`)

	reviewPunct = strings.NewReplacer("(", "", ")", "", ",", "")
)

// fieldRule tries to claim one token for one field. Rules run in a fixed
// order per token; the first rule that claims a token wins and the token
// is not offered to later rules. A token no rule claims is ignored.
type fieldRule struct {
	name   string
	claims func(p *core.PlaceRecord, token string) bool
}

var fieldRules = []fieldRule{
	{name: "rating", claims: claimRating},
	{name: "review_count", claims: claimReviewCount},
	{name: "price", claims: claimPrice},
	{name: "notes", claims: claimNotes},
	{name: "detailed_category", claims: claimDetailCategory},
}

// ExtractPlace maps one candidate line to a place record. It is total:
// unrecognized tokens are skipped and missing fields keep their sentinels.
// The second return is false only when the line yields no tokens at all.
// Callers gate inclusion on Rating being non-zero; a record is assembled
// and returned here regardless.
func ExtractPlace(line string) (core.PlaceRecord, bool) {
	link, rest := CutLinkMarker(line)
	tokens := splitTokens(rest)
	if len(tokens) == 0 {
		return core.PlaceRecord{}, false
	}
	place := core.PlaceRecord{
		Name:             tokens[0],
		PrimaryCategory:  core.CategoryOther,
		DetailedCategory: core.DefaultDetailCategory,
		SourceLink:       link,
	}
	if place.Name == "" {
		place.Name = core.UnknownPlaceName
	}
	for _, token := range tokens[1:] {
		for _, rule := range fieldRules {
			if rule.claims(&place, token) {
				break
			}
		}
	}
	return place, true
}

// splitTokens splits on the field delimiter, trimming and dropping empty
// tokens so the name always sits at index 0.
func splitTokens(line string) []string {
	parts := strings.Split(line, fieldDelimiter)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// claimRating handles internal claim rating behavior.
func claimRating(p *core.PlaceRecord, token string) bool {
	if !ratingRE.MatchString(token) {
		return false
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return false
	}
	p.Rating = value
	return true
}

// claimReviewCount handles internal claim review count behavior.
func claimReviewCount(p *core.PlaceRecord, token string) bool {
	if !reviewCountRE.MatchString(token) {
		return false
	}
	count, err := strconv.Atoi(reviewPunct.Replace(token))
	if err != nil {
		return false
	}
	p.ReviewCount = count
	return true
}

// claimPrice claims any token carrying currency symbols, e.g. "$$",
// "$10-20" or a combined "Ramen · $$". The leftmost symbol run sets the
// price level; for combined tokens the non-symbol remainder doubles as the
// detailed category when none has been recovered yet.
func claimPrice(p *core.PlaceRecord, token string) bool {
	if !strings.Contains(token, "$") {
		return false
	}
	if run := priceRunRE.FindString(token); run != "" {
		p.PriceLevel = len(run)
		p.PriceLabel = run
	}
	if strings.Contains(token, priceSeparator) && p.DetailedCategory == core.DefaultDetailCategory {
		for _, sub := range strings.Split(token, priceSeparator) {
			sub = strings.TrimSpace(sub)
			if sub != "" && !strings.Contains(sub, "$") {
				p.DetailedCategory = sub
				break
			}
		}
	}
	return true
}

// claimNotes handles internal claim notes behavior.
func claimNotes(p *core.PlaceRecord, token string) bool {
	lower := strings.ToLower(token)
	if idx := strings.Index(lower, "note:"); idx >= 0 {
		p.Notes = strings.TrimSpace(token[idx+len("note:"):])
		return true
	}
	if strings.Contains(lower, "visited") {
		p.Notes = token
		return true
	}
	return false
}

// claimDetailCategory is the fallback rule: a digit-free token longer than
// two characters becomes the detailed category, but only while it still
// holds the sentinel.
func claimDetailCategory(p *core.PlaceRecord, token string) bool {
	if p.DetailedCategory != core.DefaultDetailCategory {
		return false
	}
	if digitRE.MatchString(token) || utf8.RuneCountInString(token) <= 2 {
		return false
	}
	p.DetailedCategory = strings.TrimSpace(strings.ReplaceAll(token, priceSeparator, ""))
	return true
}
