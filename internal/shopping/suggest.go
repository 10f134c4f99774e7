package shopping

import (
	"strings"

	"shopperwise/internal/models"
	"shopperwise/internal/taxonomy"
)

// Suggestion proposes an often-forgotten staple for the current list.
type Suggestion struct {
	Name           string            `json:"name"`
	Category       taxonomy.Category `json:"category"`
	Reason         string            `json:"reason"`
	Quantity       string            `json:"quantity"`
	Unit           string            `json:"unit"`
	EstimatedPrice float64           `json:"estimated_price"`
	Priority       int               `json:"priority"`
}

// staple pairs a commonly forgotten ingredient with a fixed category and a
// one-line reason. A slice, not a map: suggestion order must be stable.
type staple struct {
	name     string
	category taxonomy.Category
	reason   string
}

var commonStaples = []staple{
	{"salt", taxonomy.CategoryHerbsSpices, "Essential seasoning"},
	{"black pepper", taxonomy.CategoryHerbsSpices, "Essential seasoning"},
	{"olive oil", taxonomy.CategoryOilsCondiments, "Cooking essential"},
	{"onions", taxonomy.CategoryVegetables, "Used in many recipes"},
	{"garlic", taxonomy.CategoryVegetables, "Used in many recipes"},
	{"butter", taxonomy.CategoryDairy, "Cooking and baking"},
	{"eggs", taxonomy.CategoryDairy, "Versatile ingredient"},
	{"milk", taxonomy.CategoryDairy, "Common beverage and ingredient"},
}

// SuggestMissingIngredients proposes staples absent from the current list.
func (d *Deriver) SuggestMissingIngredients(current []models.ShoppingListItem) []Suggestion {
	listed := make(map[string]struct{}, len(current))
	for _, item := range current {
		listed[strings.ToLower(item.Name)] = struct{}{}
	}

	var suggestions []Suggestion
	for _, s := range commonStaples {
		if _, ok := listed[s.name]; ok {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Name:           s.name,
			Category:       s.category,
			Reason:         s.reason,
			Quantity:       "1",
			Unit:           "",
			EstimatedPrice: d.prices.Estimate(s.name, s.category),
			Priority:       4,
		})
	}
	return suggestions
}
