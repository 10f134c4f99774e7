package shopping

import (
	"strings"

	"shopperwise/internal/models"
)

// PriorityScorer ranks how urgently an item should be bought, 1 (lowest) to
// 5 (highest). Pluggable for the same reason PriceEstimator is.
type PriorityScorer interface {
	Score(name string, held *models.InventoryItem) int
}

// HeuristicPriorityScorer starts every item at priority 3 and adjusts for
// essentials, empty stock and luxuries.
type HeuristicPriorityScorer struct {
	essentials []string
	luxuries   []string
}

// NewHeuristicPriorityScorer returns the default scorer.
func NewHeuristicPriorityScorer() *HeuristicPriorityScorer {
	return &HeuristicPriorityScorer{
		essentials: []string{"milk", "bread", "eggs", "butter", "onions", "garlic"},
		luxuries:   []string{"chocolate", "wine", "cake", "biscuits", "crisps"},
	}
}

// Score applies every matching adjustment and clamps once at the end, so
// overlapping rules cannot push the result outside [1,5].
func (s *HeuristicPriorityScorer) Score(name string, held *models.InventoryItem) int {
	priority := 3
	lower := strings.ToLower(name)

	if containsAny(lower, s.essentials) {
		priority++
	}
	if held == nil {
		priority++
	}
	if containsAny(lower, s.luxuries) {
		priority--
	}

	if priority < 1 {
		priority = 1
	}
	if priority > 5 {
		priority = 5
	}
	return priority
}
