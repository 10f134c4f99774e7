package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/jinzhu/gorm"

	"shopperwise/internal/taxonomy"
)

// StringSlice represents a slice of strings that can be stored in the database
type StringSlice []string

// Value converts the slice to a JSON string for storage
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// Recipe represents a household recipe
type Recipe struct {
	gorm.Model
	RecipeID        string      `gorm:"column:recipe_id;unique_index" json:"recipe_id"`
	FamilyID        string      `gorm:"index" json:"family_id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Cuisine         string      `json:"cuisine"`
	PrepMinutes     int         `json:"prep_minutes"`
	CookMinutes     int         `json:"cook_minutes"`
	Servings        int         `json:"servings"`
	Difficulty      string      `json:"difficulty"`
	HealthyRating   int         `json:"healthy_rating"`
	IsFavourite     bool        `json:"is_favourite"`
	SourceURL       string      `json:"source_url"`
	IngredientsJSON string      `gorm:"type:text" json:"-"`
	MethodJSON      string      `gorm:"type:text" json:"-"`
	Tags            StringSlice `gorm:"type:text" json:"tags"`
	Notes           string      `json:"notes"`
	// Transient fields (ignored by GORM)
	Ingredients []RecipeIngredient `gorm:"-" json:"ingredients"`
	Method      []string           `gorm:"-" json:"method"`
}

// TableName sets the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient represents one ingredient line of a recipe. Category is
// optional and filled lazily by the classifier when absent.
type RecipeIngredient struct {
	Item     string            `json:"item"`
	Quantity string            `json:"quantity,omitempty"`
	Unit     string            `json:"unit,omitempty"`
	Notes    string            `json:"notes,omitempty"`
	Category taxonomy.Category `json:"category,omitempty"`
}

// GetIngredients returns the deserialized ingredient lines
func (r *Recipe) GetIngredients() ([]RecipeIngredient, error) {
	if len(r.Ingredients) > 0 {
		return r.Ingredients, nil
	}
	var ingredients []RecipeIngredient
	if r.IngredientsJSON == "" {
		return ingredients, nil
	}
	if err := json.Unmarshal([]byte(r.IngredientsJSON), &ingredients); err != nil {
		return nil, err
	}
	r.Ingredients = ingredients
	return ingredients, nil
}

// SetIngredients serializes the ingredient lines for storage
func (r *Recipe) SetIngredients(ingredients []RecipeIngredient) error {
	data, err := json.Marshal(ingredients)
	if err != nil {
		return err
	}
	r.IngredientsJSON = string(data)
	r.Ingredients = ingredients
	return nil
}

// GetMethod returns the deserialized method steps
func (r *Recipe) GetMethod() ([]string, error) {
	if len(r.Method) > 0 {
		return r.Method, nil
	}
	var method []string
	if r.MethodJSON == "" {
		return method, nil
	}
	if err := json.Unmarshal([]byte(r.MethodJSON), &method); err != nil {
		return nil, err
	}
	r.Method = method
	return method, nil
}

// SetMethod serializes the method steps for storage
func (r *Recipe) SetMethod(method []string) error {
	data, err := json.Marshal(method)
	if err != nil {
		return err
	}
	r.MethodJSON = string(data)
	r.Method = method
	return nil
}

// TotalMinutes returns the combined prep and cook time
func (r *Recipe) TotalMinutes() int {
	return r.PrepMinutes + r.CookMinutes
}

// RecipeDifficulty represents how demanding a recipe is to cook
type RecipeDifficulty string

const (
	DifficultyEasy   RecipeDifficulty = "easy"
	DifficultyMedium RecipeDifficulty = "medium"
	DifficultyHard   RecipeDifficulty = "hard"
)
