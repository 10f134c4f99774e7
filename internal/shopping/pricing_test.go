package shopping

import (
	"testing"

	"shopperwise/internal/models"
	"shopperwise/internal/taxonomy"
)

func TestEstimateBasePrices(t *testing.T) {
	e := NewTablePriceEstimator()

	cases := []struct {
		name     string
		category taxonomy.Category
		want     float64
	}{
		{"carrot", taxonomy.CategoryVegetables, 2.50},
		{"chicken", taxonomy.CategoryMeat, 8.00},
		{"cheddar", taxonomy.CategoryDairy, 3.50},
		{"mystery item", taxonomy.CategoryOther, 3.00},
		{"anything", taxonomy.Category("unmapped"), 3.00},
	}

	for _, tc := range cases {
		if got := e.Estimate(tc.name, tc.category); got != tc.want {
			t.Errorf("Estimate(%q, %q) = %.2f, want %.2f", tc.name, tc.category, got, tc.want)
		}
	}
}

func TestEstimateMultipliers(t *testing.T) {
	e := NewTablePriceEstimator()

	cases := []struct {
		name     string
		category taxonomy.Category
		want     float64
	}{
		{"truffle oil", taxonomy.CategoryOilsCondiments, 15.00},          // 3.00 × 5
		{"saffron threads", taxonomy.CategoryHerbsSpices, 7.50},          // 1.50 × 5
		{"salmon fillet", taxonomy.CategoryFish, 13.00},                  // 6.50 × 2
		{"organic beef mince", taxonomy.CategoryMeat, 16.00},             // ×2 outranks ×1.5
		{"organic spinach", taxonomy.CategoryVegetables, 3.75},           // 2.50 × 1.5
		{"free range eggs", taxonomy.CategoryDairy, 5.25},                // 3.50 × 1.5
		{"Truffle Salmon Terrine", taxonomy.CategoryFish, 32.50},         // ×5 outranks ×2
	}

	for _, tc := range cases {
		if got := e.Estimate(tc.name, tc.category); got != tc.want {
			t.Errorf("Estimate(%q, %q) = %.2f, want %.2f", tc.name, tc.category, got, tc.want)
		}
	}
}

func TestEstimateNeverNegative(t *testing.T) {
	e := NewTablePriceEstimator()
	for _, cat := range taxonomy.Default().Categories() {
		for _, name := range []string{"", "thing", "organic truffle salmon"} {
			if got := e.Estimate(name, cat); got < 0 {
				t.Errorf("Estimate(%q, %q) = %.2f, want >= 0", name, cat, got)
			}
		}
	}
}

func TestPriorityScoring(t *testing.T) {
	s := NewHeuristicPriorityScorer()
	inStock := &models.InventoryItem{IngredientName: "x", Quantity: 1}

	cases := []struct {
		name string
		held *models.InventoryItem
		want int
	}{
		{"milk", nil, 5},            // essential + out of stock
		{"milk", inStock, 4},        // essential only
		{"flour", nil, 4},           // out of stock only
		{"flour", inStock, 3},       // base
		{"chocolate", inStock, 2},   // luxury
		{"chocolate", nil, 3},       // luxury offset by out of stock
		{"chocolate milk", inStock, 3}, // essential and luxury cancel out
		{"wine", inStock, 2},
	}

	for _, tc := range cases {
		if got := s.Score(tc.name, tc.held); got != tc.want {
			t.Errorf("Score(%q, held=%v) = %d, want %d", tc.name, tc.held != nil, got, tc.want)
		}
	}
}

func TestPriorityAlwaysInBounds(t *testing.T) {
	s := NewHeuristicPriorityScorer()
	inStock := &models.InventoryItem{Quantity: 1}

	names := []string{"", "milk bread eggs", "chocolate wine cake", "ordinary thing", "MILK"}
	for _, name := range names {
		for _, held := range []*models.InventoryItem{nil, inStock} {
			got := s.Score(name, held)
			if got < 1 || got > 5 {
				t.Errorf("Score(%q, held=%v) = %d, outside [1,5]", name, held != nil, got)
			}
		}
	}
}
