package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopperwise/internal/auth"
	"shopperwise/internal/models"
)

// GetDashboard returns the headline counts shown on the app's home screen.
func (a *API) GetDashboard(c *gin.Context) {
	familyID := auth.FamilyID(c)
	ctx := c.Request.Context()

	recipes, err := a.DB.ListRecipes(ctx, familyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	inventory, err := a.DB.ListInventory(ctx, familyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	lists, err := a.DB.ListShoppingLists(ctx, familyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	favourites := 0
	for _, r := range recipes {
		if r.IsFavourite {
			favourites++
		}
	}

	now := RunClock()
	expiring := 0
	for _, item := range inventory {
		if item.NeedsAttention(now) {
			expiring++
		}
	}

	active := 0
	for _, list := range lists {
		if list.Status == string(models.ListStatusActive) || list.Status == string(models.ListStatusPlanning) {
			active++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_recipes":     len(recipes),
		"favourite_recipes": favourites,
		"inventory_items":   len(inventory),
		"expiring_items":    expiring,
		"active_lists":      active,
	})
}

// HandleWebSocket upgrades the request and subscribes the caller to their
// family's live updates.
func (a *API) HandleWebSocket(c *gin.Context) {
	a.Hub.Serve(c.Writer, c.Request, auth.FamilyID(c))
}
