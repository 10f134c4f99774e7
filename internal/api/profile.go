package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopperwise/internal/auth"
	"shopperwise/internal/models"
)

// Profile handlers

func (a *API) GetProfile(c *gin.Context) {
	profile, err := a.DB.GetProfile(c.Request.Context(), auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (a *API) UpdateProfile(c *gin.Context) {
	var update models.Profile
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Identity fields come from the token, never from the request body.
	update.UserID = auth.UserID(c)
	update.FamilyID = auth.FamilyID(c)

	existing, err := a.DB.GetProfile(c.Request.Context(), update.UserID)
	if err == nil {
		update.Model = existing.Model
	}

	if err := a.DB.SaveProfile(c.Request.Context(), &update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, update)
}
