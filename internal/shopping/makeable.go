package shopping

import (
	"log"
	"strings"

	"shopperwise/internal/models"
)

// FindMakeableRecipes filters candidates down to recipes whose every
// ingredient matches something already bought. Names are compared with the
// same either-direction substring rule the classifier uses. Recipes without
// ingredients are never makeable, and candidate order is preserved.
func (d *Deriver) FindMakeableRecipes(purchased []models.ShoppingListItem, candidates []models.Recipe) []models.Recipe {
	var bought []string
	for _, item := range purchased {
		if item.Purchased {
			bought = append(bought, strings.ToLower(item.Name))
		}
	}

	var makeable []models.Recipe
	for _, recipe := range candidates {
		ingredients, err := recipe.GetIngredients()
		if err != nil {
			log.Printf("shopping: skipping recipe %q with unreadable ingredients: %v", recipe.Name, err)
			continue
		}
		if len(ingredients) == 0 {
			continue
		}

		haveAll := true
		for _, ing := range ingredients {
			if !anyNameMatch(strings.ToLower(ing.Item), bought) {
				haveAll = false
				break
			}
		}
		if haveAll {
			makeable = append(makeable, recipe)
		}
	}
	return makeable
}

func anyNameMatch(name string, bought []string) bool {
	for _, b := range bought {
		if b == name || strings.Contains(b, name) || strings.Contains(name, b) {
			return true
		}
	}
	return false
}
