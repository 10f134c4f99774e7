package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopperwise/internal/auth"
	"shopperwise/internal/models"
)

// Inventory handlers

func (a *API) ListInventory(c *gin.Context) {
	items, err := a.DB.ListInventory(c.Request.Context(), auth.FamilyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a.withExpiryStatus(items))
}

func (a *API) CreateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.IngredientName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredient_name is required"})
		return
	}

	item.ItemID = uuid.New().String()
	item.FamilyID = auth.FamilyID(c)
	if item.Category == "" {
		item.Category = string(a.Deriver.Taxonomy().Categorize(item.IngredientName))
	}

	if err := a.DB.SaveInventoryItem(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (a *API) UpdateInventoryItem(c *gin.Context) {
	existing, err := a.DB.GetInventoryItem(c.Request.Context(), auth.FamilyID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}

	var update models.InventoryItem
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update.Model = existing.Model
	update.ItemID = existing.ItemID
	update.FamilyID = existing.FamilyID

	if err := a.DB.SaveInventoryItem(c.Request.Context(), &update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, update)
}

func (a *API) DeleteInventoryItem(c *gin.Context) {
	if err := a.DB.DeleteInventoryItem(c.Request.Context(), auth.FamilyID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}

// ListExpiringItems returns inventory needing attention: expired, expiring
// within two days, or within five.
func (a *API) ListExpiringItems(c *gin.Context) {
	items, err := a.DB.ListInventory(c.Request.Context(), auth.FamilyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := RunClock()
	var alerts []inventoryWithStatus
	for _, item := range items {
		if item.NeedsAttention(now) {
			alerts = append(alerts, inventoryWithStatus{
				InventoryItem: item,
				ExpiryStatus:  item.ExpiryStatusAt(now),
			})
		}
	}
	c.JSON(http.StatusOK, alerts)
}

type inventoryWithStatus struct {
	models.InventoryItem
	ExpiryStatus models.ExpiryStatus `json:"expiry_status"`
}

func (a *API) withExpiryStatus(items []models.InventoryItem) []inventoryWithStatus {
	now := RunClock()
	out := make([]inventoryWithStatus, 0, len(items))
	for _, item := range items {
		out = append(out, inventoryWithStatus{
			InventoryItem: item,
			ExpiryStatus:  item.ExpiryStatusAt(now),
		})
	}
	return out
}
