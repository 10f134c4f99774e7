package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shopperwise/internal/auth"
	"shopperwise/internal/live"
	"shopperwise/internal/models"
	"shopperwise/internal/monitoring"
	"shopperwise/internal/shopping"
)

// API represents the main HTTP handler for the application
type API struct {
	Router  *gin.Engine
	Deriver *shopping.Deriver
	DB      Store
	Hub     *live.Hub
	Metrics *monitoring.Metrics
}

// Store represents the application's database interface
type Store interface {
	ListRecipes(ctx context.Context, familyID string) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, familyID, recipeID string) (*models.Recipe, error)
	SaveRecipe(ctx context.Context, recipe *models.Recipe) error
	DeleteRecipe(ctx context.Context, familyID, recipeID string) error

	ListInventory(ctx context.Context, familyID string) ([]models.InventoryItem, error)
	GetInventoryItem(ctx context.Context, familyID, itemID string) (*models.InventoryItem, error)
	SaveInventoryItem(ctx context.Context, item *models.InventoryItem) error
	DeleteInventoryItem(ctx context.Context, familyID, itemID string) error

	ListMealPlans(ctx context.Context, familyID string) ([]models.MealPlan, error)
	GetMealPlan(ctx context.Context, familyID, planID string) (*models.MealPlan, error)
	SaveMealPlan(ctx context.Context, plan *models.MealPlan) error
	DeleteMealPlan(ctx context.Context, familyID, planID string) error

	ListShoppingLists(ctx context.Context, familyID string) ([]models.ShoppingList, error)
	GetShoppingList(ctx context.Context, familyID, listID string) (*models.ShoppingList, error)
	SaveShoppingList(ctx context.Context, list *models.ShoppingList) error
	DeleteShoppingList(ctx context.Context, familyID, listID string) error

	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile *models.Profile) error
}

// Options bundles the API's collaborators.
type Options struct {
	DB             Store
	Deriver        *shopping.Deriver
	Verifier       *auth.Verifier
	Metrics        *monitoring.Metrics
	AllowedOrigins []string
}

// New creates the API and wires up all routes.
func New(opts Options) *API {
	router := gin.Default()

	api := &API{
		Router:  router,
		Deriver: opts.Deriver,
		DB:      opts.DB,
		Hub:     live.NewHub(),
		Metrics: opts.Metrics,
	}

	if opts.Metrics != nil {
		router.Use(opts.Metrics.GinMiddleware())
	}

	corsConfig := cors.DefaultConfig()
	if len(opts.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = opts.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	api.setupRoutes(opts.Verifier)
	return api
}

// setupRoutes configures all API endpoints
func (a *API) setupRoutes(verifier *auth.Verifier) {
	// Health check
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "ShopperWise API is running"})
	})

	v1 := a.Router.Group("/api/v1")
	v1.Use(verifier.Middleware())
	{
		// Profile
		v1.GET("/profile", a.GetProfile)
		v1.PUT("/profile", a.UpdateProfile)

		// Recipe collection
		v1.GET("/recipes", a.ListRecipes)
		v1.POST("/recipes", a.CreateRecipe)
		v1.GET("/recipes/:id", a.GetRecipe)
		v1.PUT("/recipes/:id", a.UpdateRecipe)
		v1.DELETE("/recipes/:id", a.DeleteRecipe)
		v1.POST("/recipes/:id/favourite", a.ToggleFavourite)

		// Inventory
		v1.GET("/inventory", a.ListInventory)
		v1.POST("/inventory", a.CreateInventoryItem)
		v1.PUT("/inventory/:id", a.UpdateInventoryItem)
		v1.DELETE("/inventory/:id", a.DeleteInventoryItem)
		v1.GET("/inventory/expiring", a.ListExpiringItems)

		// Meal planning
		v1.GET("/meal-plans", a.ListMealPlans)
		v1.POST("/meal-plans", a.CreateMealPlan)
		v1.GET("/meal-plans/calendar", a.GetCalendar)
		v1.GET("/meal-plans/:id", a.GetMealPlan)
		v1.PUT("/meal-plans/:id", a.UpdateMealPlan)
		v1.DELETE("/meal-plans/:id", a.DeleteMealPlan)
		v1.PUT("/meal-plans/:id/slots/:slot", a.AssignSlot)

		// Shopping lists
		v1.GET("/shopping-lists", a.ListShoppingLists)
		v1.POST("/shopping-lists", a.CreateShoppingList)
		v1.POST("/shopping-lists/generate", a.GenerateShoppingList)
		v1.GET("/shopping-lists/:id", a.GetShoppingList)
		v1.PUT("/shopping-lists/:id", a.UpdateShoppingList)
		v1.DELETE("/shopping-lists/:id", a.DeleteShoppingList)
		v1.POST("/shopping-lists/:id/items/:itemID/purchase", a.TogglePurchased)
		v1.GET("/shopping-lists/:id/sections", a.GetListSections)
		v1.GET("/shopping-lists/:id/stats", a.GetListStats)
		v1.GET("/shopping-lists/:id/budget", a.GetListBudget)
		v1.GET("/shopping-lists/:id/makeable", a.GetMakeableRecipes)
		v1.GET("/shopping-lists/:id/suggestions", a.GetSuggestions)
		v1.GET("/shopping-lists/:id/export", a.ExportList)

		// Taxonomy lookups for the frontend
		v1.GET("/categories", a.ListCategories)
		v1.GET("/categories/:category/keywords", a.GetCategoryKeywords)

		// Dashboard
		v1.GET("/dashboard", a.GetDashboard)

		// Live updates
		v1.GET("/ws", a.HandleWebSocket)
	}
}

// RunClock is the wall-clock used for expiry checks; a variable so tests can
// pin it.
var RunClock = time.Now
