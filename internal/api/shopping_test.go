package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopperwise/internal/models"
)

// seedWeek stores a recipe and a meal plan cooking it on two evenings, plus
// a stocked inventory item covering one of its ingredients.
func seedWeek(t *testing.T, store *memStore) (recipeID, planID string) {
	t.Helper()

	recipe := models.Recipe{
		RecipeID: "recipe-1",
		FamilyID: testFamily,
		Name:     "Salmon Risotto",
	}
	err := recipe.SetIngredients([]models.RecipeIngredient{
		{Item: "Salmon fillet", Quantity: "2"},
		{Item: "Arborio rice", Quantity: "200", Unit: "g"},
		{Item: "Parmesan", Quantity: "50", Unit: "g"},
	})
	require.NoError(t, err)
	require.NoError(t, store.SaveRecipe(nil, &recipe))

	plan := models.MealPlan{
		PlanID:    "plan-1",
		FamilyID:  testFamily,
		WeekStart: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Slots: models.SlotMap{
			"monday_dinner":   "recipe-1",
			"thursday_dinner": "recipe-1",
		},
	}
	require.NoError(t, store.SaveMealPlan(nil, &plan))

	require.NoError(t, store.SaveInventoryItem(nil, &models.InventoryItem{
		ItemID:         "inv-1",
		FamilyID:       testFamily,
		IngredientName: "Parmesan",
		Quantity:       200,
		Unit:           "g",
	}))

	return recipe.RecipeID, plan.PlanID
}

func TestGenerateShoppingList(t *testing.T) {
	store := newMemStore()
	a := newTestAPI(store)
	_, planID := seedWeek(t, store)

	w := doJSON(t, a, "POST", "/api/v1/shopping-lists/generate", map[string]interface{}{
		"plan_ids":     []string{planID},
		"name":         "Week 11",
		"target_store": "Tesco",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var list models.ShoppingList
	decodeBody(t, w, &list)
	assert.NotEmpty(t, list.ListID)
	assert.Equal(t, "Week 11", list.Name)
	assert.Equal(t, "planning", list.Status)

	// Parmesan is stocked in sufficient quantity, so only two items remain.
	require.Len(t, list.Items, 2)

	byName := map[string]models.ShoppingListItem{}
	for _, item := range list.Items {
		byName[item.Name] = item
	}

	// The recipe is cooked twice, so ingredient quantities double.
	salmon, ok := byName["Salmon fillet"]
	require.True(t, ok)
	assert.Equal(t, "4", salmon.Quantity)
	assert.Equal(t, "fish", string(salmon.Category))
	assert.Equal(t, []string{"Salmon Risotto", "Salmon Risotto"}, salmon.Recipes)

	rice, ok := byName["Arborio rice"]
	require.True(t, ok)
	assert.Equal(t, "400", rice.Quantity)
}

func TestGenerateRequiresPlans(t *testing.T) {
	a := newTestAPI(newMemStore())

	w := doJSON(t, a, "POST", "/api/v1/shopping-lists/generate", map[string]interface{}{
		"plan_ids": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	missing := doJSON(t, a, "POST", "/api/v1/shopping-lists/generate", map[string]interface{}{
		"plan_ids": []string{"no-such-plan"},
	})
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestTogglePurchased(t *testing.T) {
	store := newMemStore()
	a := newTestAPI(store)
	_, planID := seedWeek(t, store)

	w := doJSON(t, a, "POST", "/api/v1/shopping-lists/generate", map[string]interface{}{
		"plan_ids": []string{planID},
	})
	var list models.ShoppingList
	decodeBody(t, w, &list)
	require.NotEmpty(t, list.Items)

	itemID := list.Items[0].ID
	toggled := doJSON(t, a, "POST", "/api/v1/shopping-lists/"+list.ListID+"/items/"+itemID+"/purchase", nil)
	require.Equal(t, http.StatusOK, toggled.Code)

	var after models.ShoppingList
	decodeBody(t, toggled, &after)
	assert.True(t, after.Items[0].Purchased)

	missing := doJSON(t, a, "POST", "/api/v1/shopping-lists/"+list.ListID+"/items/no-such-item/purchase", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestListSectionsAndStats(t *testing.T) {
	store := newMemStore()
	a := newTestAPI(store)
	_, planID := seedWeek(t, store)

	w := doJSON(t, a, "POST", "/api/v1/shopping-lists/generate", map[string]interface{}{
		"plan_ids": []string{planID},
	})
	var list models.ShoppingList
	decodeBody(t, w, &list)

	sections := doJSON(t, a, "GET", "/api/v1/shopping-lists/"+list.ListID+"/sections", nil)
	assert.Equal(t, http.StatusOK, sections.Code)
	assert.Contains(t, sections.Body.String(), "Meat & Fish")

	stats := doJSON(t, a, "GET", "/api/v1/shopping-lists/"+list.ListID+"/stats", nil)
	assert.Equal(t, http.StatusOK, stats.Code)

	var parsed struct {
		TotalItems int `json:"total_items"`
	}
	decodeBody(t, stats, &parsed)
	assert.Equal(t, 2, parsed.TotalItems)

	budget := doJSON(t, a, "GET", "/api/v1/shopping-lists/"+list.ListID+"/budget", nil)
	assert.Equal(t, http.StatusOK, budget.Code)
}

func TestExportFormats(t *testing.T) {
	store := newMemStore()
	a := newTestAPI(store)
	_, planID := seedWeek(t, store)

	w := doJSON(t, a, "POST", "/api/v1/shopping-lists/generate", map[string]interface{}{
		"plan_ids": []string{planID},
	})
	var list models.ShoppingList
	decodeBody(t, w, &list)

	csv := doJSON(t, a, "GET", "/api/v1/shopping-lists/"+list.ListID+"/export?format=csv", nil)
	require.Equal(t, http.StatusOK, csv.Code)
	assert.Equal(t, "text/csv", csv.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(csv.Body.String(), "Item,Quantity,Unit,Category"))

	xlsx := doJSON(t, a, "GET", "/api/v1/shopping-lists/"+list.ListID+"/export?format=xlsx", nil)
	require.Equal(t, http.StatusOK, xlsx.Code)
	assert.True(t, strings.HasPrefix(xlsx.Body.String(), "PK"))

	bad := doJSON(t, a, "GET", "/api/v1/shopping-lists/"+list.ListID+"/export?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestSuggestionsSkipListedItems(t *testing.T) {
	store := newMemStore()
	a := newTestAPI(store)

	list := models.ShoppingList{
		ListID:   "list-1",
		FamilyID: testFamily,
		Name:     "Basics",
	}
	require.NoError(t, list.SetItems([]models.ShoppingListItem{
		{ID: "salt", Name: "Salt", Quantity: "1"},
	}))
	require.NoError(t, store.SaveShoppingList(nil, &list))

	w := doJSON(t, a, "GET", "/api/v1/shopping-lists/list-1/suggestions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"name":"salt"`)
	assert.Contains(t, w.Body.String(), "olive oil")
}

func TestShoppingListCRUD(t *testing.T) {
	store := newMemStore()
	a := newTestAPI(store)

	created := doJSON(t, a, "POST", "/api/v1/shopping-lists", map[string]interface{}{
		"name":         "Corner shop run",
		"target_store": "Co-op",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var list models.ShoppingList
	decodeBody(t, created, &list)
	assert.Equal(t, "planning", list.Status)

	all := doJSON(t, a, "GET", "/api/v1/shopping-lists", nil)
	assert.Equal(t, http.StatusOK, all.Code)
	assert.Contains(t, all.Body.String(), "Corner shop run")

	deleted := doJSON(t, a, "DELETE", "/api/v1/shopping-lists/"+list.ListID, nil)
	assert.Equal(t, http.StatusOK, deleted.Code)

	gone := doJSON(t, a, "GET", "/api/v1/shopping-lists/"+list.ListID, nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}
