package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// InventoryItem represents a perishable or staple good the household
// currently holds
type InventoryItem struct {
	gorm.Model
	ItemID         string     `gorm:"column:item_id;unique_index" json:"item_id"`
	FamilyID       string     `gorm:"index" json:"family_id"`
	IngredientName string     `json:"ingredient_name"`
	Category       string     `json:"category"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	Location       string     `json:"location"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	Notes          string     `json:"notes"`
}

// TableName sets the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "current_inventory"
}

// ExpiryStatus represents how close an inventory item is to its expiry date
type ExpiryStatus string

const (
	ExpiryStatusExpired  ExpiryStatus = "expired"
	ExpiryStatusExpiring ExpiryStatus = "expiring" // within 2 days
	ExpiryStatusSoon     ExpiryStatus = "soon"     // within 5 days
	ExpiryStatusFresh    ExpiryStatus = "fresh"
	ExpiryStatusUnknown  ExpiryStatus = "unknown" // no expiry date recorded
)

// ExpiryStatusAt classifies the item's expiry relative to the given time.
func (i *InventoryItem) ExpiryStatusAt(now time.Time) ExpiryStatus {
	if i.ExpiryDate == nil {
		return ExpiryStatusUnknown
	}
	days := int(i.ExpiryDate.Sub(now).Hours() / 24)
	switch {
	case i.ExpiryDate.Before(now):
		return ExpiryStatusExpired
	case days <= 2:
		return ExpiryStatusExpiring
	case days <= 5:
		return ExpiryStatusSoon
	default:
		return ExpiryStatusFresh
	}
}

// NeedsAttention reports whether the item should appear in expiry alerts.
func (i *InventoryItem) NeedsAttention(now time.Time) bool {
	switch i.ExpiryStatusAt(now) {
	case ExpiryStatusExpired, ExpiryStatusExpiring, ExpiryStatusSoon:
		return true
	default:
		return false
	}
}

// StorageLocation represents where an inventory item is kept
type StorageLocation string

const (
	LocationFridge    StorageLocation = "fridge"
	LocationFreezer   StorageLocation = "freezer"
	LocationCupboard  StorageLocation = "cupboard"
	LocationSpiceRack StorageLocation = "spice_rack"
	LocationOther     StorageLocation = "other"
)
