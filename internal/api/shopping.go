package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopperwise/internal/auth"
	"shopperwise/internal/live"
	"shopperwise/internal/models"
	"shopperwise/internal/shopping"
	"shopperwise/internal/taxonomy"
)

// Shopping list handlers

func (a *API) ListShoppingLists(c *gin.Context) {
	lists, err := a.DB.ListShoppingLists(c.Request.Context(), auth.FamilyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for i := range lists {
		if _, err := lists[i].GetItems(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, lists)
}

func (a *API) CreateShoppingList(c *gin.Context) {
	var list models.ShoppingList
	if err := c.ShouldBindJSON(&list); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if list.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list name is required"})
		return
	}

	list.ListID = uuid.New().String()
	list.FamilyID = auth.FamilyID(c)
	if list.Status == "" {
		list.Status = string(models.ListStatusPlanning)
	}
	if err := list.SetItems(list.Items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.DB.SaveShoppingList(c.Request.Context(), &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, list)
}

// GenerateShoppingList derives a shopping list from one or more meal plans
// and the family's current inventory.
func (a *API) GenerateShoppingList(c *gin.Context) {
	var req struct {
		PlanIDs     []string `json:"plan_ids"`
		Name        string   `json:"name"`
		TargetStore string   `json:"target_store"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.PlanIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_ids is required"})
		return
	}

	familyID := auth.FamilyID(c)
	ctx := c.Request.Context()

	var planned []shopping.PlannedRecipe
	for _, planID := range req.PlanIDs {
		plan, err := a.DB.GetMealPlan(ctx, familyID, planID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found: " + planID})
			return
		}
		// One PlannedRecipe per occupied slot: a recipe cooked twice in the
		// week needs its ingredients twice.
		for _, recipeID := range plan.PlannedRecipeIDs() {
			recipe, err := a.DB.GetRecipe(ctx, familyID, recipeID)
			if err != nil {
				continue // slot references a deleted recipe; skip it
			}
			ingredients, err := recipe.GetIngredients()
			if err != nil {
				continue
			}
			planned = append(planned, shopping.PlannedRecipe{
				RecipeName:  recipe.Name,
				Ingredients: ingredients,
			})
		}
	}

	inventory, err := a.DB.ListInventory(ctx, familyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := a.Deriver.MergeFromPlans(planned, inventory)

	name := req.Name
	if name == "" {
		name = "Shopping List"
	}
	list := models.ShoppingList{
		ListID:      uuid.New().String(),
		FamilyID:    familyID,
		Name:        name,
		TargetStore: req.TargetStore,
		Status:      string(models.ListStatusPlanning),
	}
	if err := list.SetItems(items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := a.DB.SaveShoppingList(ctx, &list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if a.Metrics != nil {
		a.Metrics.RecordListGeneration(len(items))
	}
	a.Hub.Broadcast(familyID, live.Event{Type: live.EventListCreated, ListID: list.ListID})

	c.JSON(http.StatusCreated, list)
}

func (a *API) GetShoppingList(c *gin.Context) {
	list, err := a.loadList(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, list)
}

func (a *API) UpdateShoppingList(c *gin.Context) {
	existing, err := a.loadList(c)
	if err != nil {
		return
	}

	var update models.ShoppingList
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update.Model = existing.Model
	update.ListID = existing.ListID
	update.FamilyID = existing.FamilyID
	if err := update.SetItems(update.Items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.DB.SaveShoppingList(c.Request.Context(), &update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	a.Hub.Broadcast(update.FamilyID, live.Event{Type: live.EventListUpdated, ListID: update.ListID})
	c.JSON(http.StatusOK, update)
}

func (a *API) DeleteShoppingList(c *gin.Context) {
	familyID := auth.FamilyID(c)
	if err := a.DB.DeleteShoppingList(c.Request.Context(), familyID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shopping list not found"})
		return
	}
	a.Hub.Broadcast(familyID, live.Event{Type: live.EventListDeleted, ListID: c.Param("id")})
	c.JSON(http.StatusOK, gin.H{"message": "Shopping list deleted"})
}

// TogglePurchased flips one item's purchased flag.
func (a *API) TogglePurchased(c *gin.Context) {
	list, err := a.loadList(c)
	if err != nil {
		return
	}

	itemID := c.Param("itemID")
	found := false
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items[i].Purchased = !list.Items[i].Purchased
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	if err := list.SetItems(list.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := a.DB.SaveShoppingList(c.Request.Context(), list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	a.Hub.Broadcast(list.FamilyID, live.Event{Type: live.EventListUpdated, ListID: list.ListID})
	c.JSON(http.StatusOK, list)
}

func (a *API) GetListSections(c *gin.Context) {
	list, err := a.loadList(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, a.Deriver.OrganizeByStoreSections(list.Items))
}

func (a *API) GetListStats(c *gin.Context) {
	list, err := a.loadList(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, a.Deriver.CalculateShoppingStats(list.Items))
}

func (a *API) GetListBudget(c *gin.Context) {
	list, err := a.loadList(c)
	if err != nil {
		return
	}
	stats := a.Deriver.CalculateShoppingStats(list.Items)
	report := a.Deriver.AnalyzeBudget(stats.TotalEstimated, stats.ActualSpent, &stats)
	c.JSON(http.StatusOK, report)
}

func (a *API) GetMakeableRecipes(c *gin.Context) {
	list, err := a.loadList(c)
	if err != nil {
		return
	}

	recipes, dbErr := a.DB.ListRecipes(c.Request.Context(), auth.FamilyID(c))
	if dbErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": dbErr.Error()})
		return
	}

	c.JSON(http.StatusOK, a.Deriver.FindMakeableRecipes(list.Items, recipes))
}

func (a *API) GetSuggestions(c *gin.Context) {
	list, err := a.loadList(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, a.Deriver.SuggestMissingIngredients(list.Items))
}

// ExportList renders the list in the requested format
// (text, csv, json or xlsx).
func (a *API) ExportList(c *gin.Context) {
	list, err := a.loadList(c)
	if err != nil {
		return
	}

	format := c.DefaultQuery("format", "text")
	if a.Metrics != nil {
		a.Metrics.RecordExport(format)
	}

	if format == "xlsx" {
		data, err := a.Deriver.ExportXLSX(list)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="shopping-list.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
		return
	}

	out, exportErr := a.Deriver.Export(list, shopping.Format(format))
	if exportErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": exportErr.Error()})
		return
	}

	switch shopping.Format(format) {
	case shopping.FormatJSON:
		c.Data(http.StatusOK, "application/json", []byte(out))
	case shopping.FormatCSV:
		c.Header("Content-Disposition", `attachment; filename="shopping-list.csv"`)
		c.Data(http.StatusOK, "text/csv", []byte(out))
	default:
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(out))
	}
}

// Taxonomy lookups

func (a *API) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, a.Deriver.Taxonomy().Categories())
}

func (a *API) GetCategoryKeywords(c *gin.Context) {
	tax := a.Deriver.Taxonomy()
	candidate := c.Param("category")
	if !tax.IsValid(candidate) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": candidate,
		"keywords": tax.Keywords(taxonomy.Category(candidate)),
	})
}

// loadList fetches the list addressed by the :id parameter, deserializing its
// items. On failure it writes the error response and returns a non-nil error.
func (a *API) loadList(c *gin.Context) (*models.ShoppingList, error) {
	list, err := a.DB.GetShoppingList(c.Request.Context(), auth.FamilyID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shopping list not found"})
		return nil, err
	}
	if _, err := list.GetItems(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, err
	}
	return list, nil
}
