package shopping

import (
	"testing"

	"shopperwise/internal/models"
)

func recipeWith(name string, items ...string) models.Recipe {
	var ingredients []models.RecipeIngredient
	for _, item := range items {
		ingredients = append(ingredients, models.RecipeIngredient{Item: item, Quantity: "1"})
	}
	r := models.Recipe{Name: name}
	r.Ingredients = ingredients
	return r
}

func purchasedItem(name string, purchased bool) models.ShoppingListItem {
	return models.ShoppingListItem{ID: name, Name: name, Purchased: purchased}
}

func TestFindMakeableRecipes(t *testing.T) {
	d := newTestDeriver()

	purchased := []models.ShoppingListItem{
		purchasedItem("chicken breast", true),
		purchasedItem("onion", true),
		purchasedItem("rice", true),
		purchasedItem("saffron", false), // in the list but not bought yet
	}
	candidates := []models.Recipe{
		recipeWith("Chicken Rice", "chicken", "rice"),
		recipeWith("Paella", "chicken", "rice", "saffron"),
		recipeWith("Onion Soup", "onion"),
	}

	makeable := d.FindMakeableRecipes(purchased, candidates)

	if len(makeable) != 2 {
		t.Fatalf("FindMakeableRecipes() returned %d recipes, want 2", len(makeable))
	}
	if makeable[0].Name != "Chicken Rice" || makeable[1].Name != "Onion Soup" {
		t.Errorf("makeable = [%s %s], want candidate order preserved [Chicken Rice, Onion Soup]",
			makeable[0].Name, makeable[1].Name)
	}
}

func TestFindMakeableRecipesSubstringBothDirections(t *testing.T) {
	d := newTestDeriver()

	// Bought "smoked salmon"; recipe only asks for "salmon".
	purchased := []models.ShoppingListItem{purchasedItem("smoked salmon", true)}
	candidates := []models.Recipe{recipeWith("Salmon Toast", "salmon")}

	if got := d.FindMakeableRecipes(purchased, candidates); len(got) != 1 {
		t.Errorf("ingredient name inside purchased name should match, got %d recipes", len(got))
	}

	// Bought "egg"; recipe asks for "eggs".
	purchased = []models.ShoppingListItem{purchasedItem("egg", true)}
	candidates = []models.Recipe{recipeWith("Omelette", "eggs")}

	if got := d.FindMakeableRecipes(purchased, candidates); len(got) != 1 {
		t.Errorf("purchased name inside ingredient name should match, got %d recipes", len(got))
	}
}

func TestFindMakeableRecipesExcludesEmptyRecipes(t *testing.T) {
	d := newTestDeriver()

	purchased := []models.ShoppingListItem{purchasedItem("anything", true)}
	candidates := []models.Recipe{recipeWith("Empty Plate")}

	if got := d.FindMakeableRecipes(purchased, candidates); len(got) != 0 {
		t.Errorf("recipe with no ingredients reported makeable: %v", got)
	}
}

func TestFindMakeableRecipesNothingPurchased(t *testing.T) {
	d := newTestDeriver()

	purchased := []models.ShoppingListItem{purchasedItem("chicken", false)}
	candidates := []models.Recipe{recipeWith("Roast", "chicken")}

	if got := d.FindMakeableRecipes(purchased, candidates); len(got) != 0 {
		t.Errorf("unpurchased items should not make recipes makeable: %v", got)
	}
}

func TestSuggestMissingIngredients(t *testing.T) {
	d := newTestDeriver()

	current := []models.ShoppingListItem{
		purchasedItem("milk", false),
		purchasedItem("salt", false),
	}

	suggestions := d.SuggestMissingIngredients(current)

	for _, s := range suggestions {
		if s.Name == "milk" || s.Name == "salt" {
			t.Errorf("already-listed staple %q suggested again", s.Name)
		}
		if s.Priority != 4 {
			t.Errorf("suggestion %q priority = %d, want 4", s.Name, s.Priority)
		}
		if s.EstimatedPrice < 0 {
			t.Errorf("suggestion %q has negative price", s.Name)
		}
	}
	if len(suggestions) != len(commonStaples)-2 {
		t.Errorf("got %d suggestions, want %d", len(suggestions), len(commonStaples)-2)
	}

	// Empty list suggests every staple, in fixed order.
	all := d.SuggestMissingIngredients(nil)
	if len(all) != len(commonStaples) {
		t.Fatalf("got %d suggestions for empty list, want %d", len(all), len(commonStaples))
	}
	if all[0].Name != "salt" || all[len(all)-1].Name != "milk" {
		t.Errorf("suggestion order not stable: first %q last %q", all[0].Name, all[len(all)-1].Name)
	}
}
