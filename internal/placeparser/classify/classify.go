// Package classify assigns the coarse category for a place from its
// free-text detailed category. Classification is keyword containment over
// an ordered priority table with a small exception list; it never fails,
// absence of a match terminates in Other.
package classify

import (
	"strings"

	"maplist/backend/internal/placeparser/core"
)

// priorityRule binds one category to its keyword set. The table is checked
// top to bottom and the first matching rule wins. Drink sits first because
// compound labels like "Wine Bar" would otherwise land in Food or Shop.
type priorityRule struct {
	category core.Category
	keywords []string
}

var priorityTable = []priorityRule{
	{core.CategoryDrink, []string{
		"bar", "cocktail", "pub", "brewery", "wine", "izakaya",
		"club", "speakeasy", "lounge",
	}},
	{core.CategorySee, []string{
		"park", "garden", "museum", "gallery", "attraction", "view",
		"lookout", "temple", "church", "historic", "landmark",
		"stadium", "theater",
	}},
	{core.CategoryShop, []string{
		"mall", "store", "market", "plaza", "boutique", "shop",
		"outlet", "center", "mart", "supermarket", "grocery",
	}},
	{core.CategoryFood, nil},
}

// exception vetoes an otherwise-winning rule; matching then continues with
// the next rule in the table.
type exception struct {
	category core.Category
	triggers []string
}

// "Coffee Shop" style labels contain retail keywords but must never land
// in Shop.
var exceptions = []exception{
	{category: core.CategoryShop, triggers: []string{"coffee", "cafe"}},
}

// foodFallback is a second keyword pass run only after the whole priority
// table missed. It is kept separate from the table's Food entry rather
// than merged into it. Note "coffee" is absent: a label that only says
// coffee does not resolve here.
var foodFallback = []string{
	"restaurant", "cafe", "bakery", "dessert", "ramen", "sushi",
	"pizza", "noodle", "bbq", "diner", "bistro", "eatery",
	"ice cream", "street food", "food",
}

// seeFallback catches lodging labels that match nothing else.
var seeFallback = []string{"hotel", "resort"}

// Classify maps a detailed category label to exactly one coarse category.
func Classify(detail string) core.Category {
	lower := strings.ToLower(detail)
	for _, rule := range priorityTable {
		if !containsAny(lower, rule.keywords) {
			continue
		}
		if vetoed(rule.category, lower) {
			continue
		}
		return rule.category
	}
	if containsAny(lower, foodFallback) {
		return core.CategoryFood
	}
	if containsAny(lower, seeFallback) {
		return core.CategorySee
	}
	return core.CategoryOther
}

// vetoed reports whether an exception blocks the given category for this
// label.
func vetoed(category core.Category, lower string) bool {
	for _, ex := range exceptions {
		if ex.category == category && containsAny(lower, ex.triggers) {
			return true
		}
	}
	return false
}

// containsAny handles internal contains any behavior.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
