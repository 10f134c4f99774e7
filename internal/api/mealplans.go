package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopperwise/internal/auth"
	"shopperwise/internal/models"
)

// Meal planning handlers

func (a *API) ListMealPlans(c *gin.Context) {
	plans, err := a.DB.ListMealPlans(c.Request.Context(), auth.FamilyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (a *API) CreateMealPlan(c *gin.Context) {
	var plan models.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if plan.WeekStart.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start is required"})
		return
	}

	plan.PlanID = uuid.New().String()
	plan.FamilyID = auth.FamilyID(c)
	if plan.Slots == nil {
		plan.Slots = models.SlotMap{}
	}

	if err := a.DB.SaveMealPlan(c.Request.Context(), &plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (a *API) GetMealPlan(c *gin.Context) {
	plan, err := a.DB.GetMealPlan(c.Request.Context(), auth.FamilyID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (a *API) UpdateMealPlan(c *gin.Context) {
	existing, err := a.DB.GetMealPlan(c.Request.Context(), auth.FamilyID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
		return
	}

	var update models.MealPlan
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update.Model = existing.Model
	update.PlanID = existing.PlanID
	update.FamilyID = existing.FamilyID

	if err := a.DB.SaveMealPlan(c.Request.Context(), &update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, update)
}

func (a *API) DeleteMealPlan(c *gin.Context) {
	if err := a.DB.DeleteMealPlan(c.Request.Context(), auth.FamilyID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal plan deleted"})
}

// GetCalendar returns the plans covering the current and the following week,
// the fortnight view the planner screen shows.
func (a *API) GetCalendar(c *gin.Context) {
	plans, err := a.DB.ListMealPlans(c.Request.Context(), auth.FamilyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := RunClock()
	weekStart := startOfWeek(now)
	nextWeek := weekStart.AddDate(0, 0, 7)
	fortnightEnd := weekStart.AddDate(0, 0, 14)

	calendar := gin.H{
		"week_start":      weekStart,
		"next_week_start": nextWeek,
		"this_week":       nil,
		"next_week":       nil,
	}
	for i := range plans {
		ws := plans[i].WeekStart
		switch {
		case !ws.Before(weekStart) && ws.Before(nextWeek):
			calendar["this_week"] = plans[i]
		case !ws.Before(nextWeek) && ws.Before(fortnightEnd):
			calendar["next_week"] = plans[i]
		}
	}
	c.JSON(http.StatusOK, calendar)
}

// startOfWeek truncates to the preceding (or current) Monday at midnight UTC.
func startOfWeek(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}

// AssignSlot places a recipe into one meal slot of a plan. An empty recipe_id
// clears the slot.
func (a *API) AssignSlot(c *gin.Context) {
	plan, err := a.DB.GetMealPlan(c.Request.Context(), auth.FamilyID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
		return
	}

	var req struct {
		RecipeID string `json:"recipe_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.RecipeID != "" {
		if _, err := a.DB.GetRecipe(c.Request.Context(), auth.FamilyID(c), req.RecipeID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
	}

	if err := plan.SetSlot(c.Param("slot"), req.RecipeID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.DB.SaveMealPlan(c.Request.Context(), plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}
