// Package templates renders the calculator pages as templ components.
//
// Components live in page.templ; run `templ generate` after editing it.
package templates

import (
	"strings"

	"github.com/JonMunkholm/nutrientcalc/internal/core"
)

//go:generate templ generate

// SelectPrompt is the placeholder entry of the food selector.
const SelectPrompt = "Select a food item"

// DefaultTitle is used when PageData.Title is empty.
const DefaultTitle = "Food Nutrient Calculator"

// PageData is everything the calculator page shows.
type PageData struct {
	Title    string
	Options  []core.FoodOption
	Selected string // Selected food code, empty for the prompt
	Quantity string // Quantity input value as typed
	Result   *core.Result
	Notice   *core.UserMessage // Warning shown in place of a result
}

func pageTitle(d PageData) string {
	if d.Title == "" {
		return DefaultTitle
	}
	return d.Title
}

func quantityValue(quantity string) string {
	if quantity == "" {
		return core.FormatQuantity(core.DefaultQuantity)
	}
	return quantity
}

func unresolvedNames(r core.Result) string {
	names := make([]string, len(r.Unresolved))
	for i, n := range r.Unresolved {
		names[i] = string(n)
	}
	return strings.Join(names, ", ")
}
