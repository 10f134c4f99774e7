package models

import (
	"encoding/json"

	"github.com/jinzhu/gorm"

	"shopperwise/internal/taxonomy"
)

// ShoppingList represents one shopping trip's list for a family
type ShoppingList struct {
	gorm.Model
	ListID      string `gorm:"column:list_id;unique_index" json:"list_id"`
	FamilyID    string `gorm:"index" json:"family_id"`
	Name        string `json:"name"`
	TargetStore string `json:"target_store"`
	Status      string `json:"status"`
	ItemsJSON   string `gorm:"type:text" json:"-"`
	// Transient field (ignored by GORM)
	Items []ShoppingListItem `gorm:"-" json:"items"`
}

// TableName sets the table name for ShoppingList
func (ShoppingList) TableName() string {
	return "shopping_lists"
}

// ShoppingListItem represents a single entry on a shopping list. Items are
// produced by the shopping deriver or added by hand; EstimatedPrice is never
// negative and Priority stays within [1,5].
type ShoppingListItem struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Quantity       string            `json:"quantity"`
	Unit           string            `json:"unit"`
	Category       taxonomy.Category `json:"category"`
	Notes          string            `json:"notes"`
	EstimatedPrice float64           `json:"estimated_price"`
	Priority       int               `json:"priority"`
	Recipes        []string          `json:"recipes"`
	Purchased      bool              `json:"purchased"`
}

// GetItems returns the deserialized list items
func (l *ShoppingList) GetItems() ([]ShoppingListItem, error) {
	if len(l.Items) > 0 {
		return l.Items, nil
	}
	var items []ShoppingListItem
	if l.ItemsJSON == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(l.ItemsJSON), &items); err != nil {
		return nil, err
	}
	l.Items = items
	return items, nil
}

// SetItems serializes the list items for storage
func (l *ShoppingList) SetItems(items []ShoppingListItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	l.ItemsJSON = string(data)
	l.Items = items
	return nil
}

// ShoppingListStatus represents the lifecycle state of a shopping list
type ShoppingListStatus string

const (
	ListStatusPlanning  ShoppingListStatus = "planning"
	ListStatusActive    ShoppingListStatus = "active"
	ListStatusCompleted ShoppingListStatus = "completed"
	ListStatusArchived  ShoppingListStatus = "archived"
)
