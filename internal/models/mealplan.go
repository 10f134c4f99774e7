package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
)

// SlotMap maps meal-slot keys ("monday_dinner") to recipe IDs and is stored
// as JSON in a text column, like StringSlice.
type SlotMap map[string]string

// Value converts the map to a JSON string for storage
func (m SlotMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan converts the database value back to a map
func (m *SlotMap) Scan(value interface{}) error {
	if value == nil {
		*m = SlotMap{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for SlotMap")
	}
}

// MealPlan represents one week of planned meals for a family
type MealPlan struct {
	gorm.Model
	PlanID    string    `gorm:"column:plan_id;unique_index" json:"plan_id"`
	FamilyID  string    `gorm:"index" json:"family_id"`
	WeekStart time.Time `gorm:"index" json:"week_start"`
	Slots     SlotMap   `gorm:"type:text" json:"slots"`
	Notes     string    `json:"notes"`
}

// TableName sets the table name for MealPlan
func (MealPlan) TableName() string {
	return "meal_plans"
}

// Meal timing within a day
type MealTime string

const (
	MealBreakfast MealTime = "breakfast"
	MealLunch     MealTime = "lunch"
	MealDinner    MealTime = "dinner"
)

var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var mealTimes = []MealTime{MealBreakfast, MealLunch, MealDinner}

// SlotKeys returns the 21 slot keys of a weekly plan in calendar order.
func SlotKeys() []string {
	keys := make([]string, 0, len(weekdays)*len(mealTimes))
	for _, day := range weekdays {
		for _, meal := range mealTimes {
			keys = append(keys, fmt.Sprintf("%s_%s", day, meal))
		}
	}
	return keys
}

// PlannedRecipeIDs returns the recipe IDs referenced by the plan in calendar
// order. Empty slots are skipped; a recipe planned for several slots appears
// once per slot.
func (p *MealPlan) PlannedRecipeIDs() []string {
	var ids []string
	for _, key := range SlotKeys() {
		if id := p.Slots[key]; id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetSlot assigns a recipe to a meal slot, rejecting unknown slot keys.
func (p *MealPlan) SetSlot(key, recipeID string) error {
	for _, valid := range SlotKeys() {
		if key == valid {
			if p.Slots == nil {
				p.Slots = SlotMap{}
			}
			p.Slots[key] = recipeID
			return nil
		}
	}
	return fmt.Errorf("invalid meal slot %q", key)
}
