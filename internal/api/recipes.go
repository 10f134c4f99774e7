package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopperwise/internal/auth"
	"shopperwise/internal/models"
)

// Recipe collection handlers

func (a *API) ListRecipes(c *gin.Context) {
	recipes, err := a.DB.ListRecipes(c.Request.Context(), auth.FamilyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for i := range recipes {
		if _, err := recipes[i].GetIngredients(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, recipes)
}

func (a *API) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if recipe.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe name is required"})
		return
	}

	recipe.RecipeID = uuid.New().String()
	recipe.FamilyID = auth.FamilyID(c)
	a.classifyIngredients(&recipe)

	if err := recipe.SetIngredients(recipe.Ingredients); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := recipe.SetMethod(recipe.Method); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.DB.SaveRecipe(c.Request.Context(), &recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (a *API) GetRecipe(c *gin.Context) {
	recipe, err := a.DB.GetRecipe(c.Request.Context(), auth.FamilyID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if _, err := recipe.GetIngredients(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, err := recipe.GetMethod(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (a *API) UpdateRecipe(c *gin.Context) {
	existing, err := a.DB.GetRecipe(c.Request.Context(), auth.FamilyID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	var update models.Recipe
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update.Model = existing.Model
	update.RecipeID = existing.RecipeID
	update.FamilyID = existing.FamilyID
	a.classifyIngredients(&update)

	if err := update.SetIngredients(update.Ingredients); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := update.SetMethod(update.Method); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.DB.SaveRecipe(c.Request.Context(), &update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, update)
}

func (a *API) DeleteRecipe(c *gin.Context) {
	if err := a.DB.DeleteRecipe(c.Request.Context(), auth.FamilyID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}

func (a *API) ToggleFavourite(c *gin.Context) {
	recipe, err := a.DB.GetRecipe(c.Request.Context(), auth.FamilyID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	recipe.IsFavourite = !recipe.IsFavourite
	if err := a.DB.SaveRecipe(c.Request.Context(), recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe_id": recipe.RecipeID, "is_favourite": recipe.IsFavourite})
}

// classifyIngredients fills in missing ingredient categories.
func (a *API) classifyIngredients(recipe *models.Recipe) {
	tax := a.Deriver.Taxonomy()
	for i := range recipe.Ingredients {
		ing := &recipe.Ingredients[i]
		if ing.Category == "" || !tax.IsValid(string(ing.Category)) {
			ing.Category = tax.Categorize(ing.Item)
		}
	}
}
