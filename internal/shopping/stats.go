package shopping

import (
	"shopperwise/internal/models"
	"shopperwise/internal/taxonomy"
)

// CategoryStat aggregates one category's slice of a shopping list.
type CategoryStat struct {
	Count     int     `json:"count"`
	Estimated float64 `json:"estimated"`
}

// Stats summarizes a shopping list. Monetary values carry two decimal places.
type Stats struct {
	TotalItems        int                                `json:"total_items"`
	TotalEstimated    float64                            `json:"total_estimated"`
	AveragePrice      float64                            `json:"average_price"`
	CategoryBreakdown map[taxonomy.Category]CategoryStat `json:"category_breakdown"`
	PriorityBreakdown map[int]int                        `json:"priority_breakdown"`
	SectionsCount     int                                `json:"sections_count"`
	PurchasedItems    int                                `json:"purchased_items"`
	RemainingItems    int                                `json:"remaining_items"`
	ActualSpent       float64                            `json:"actual_spent"`
}

// CalculateShoppingStats computes list-level statistics. An empty list yields
// zeroes throughout; the average never divides by zero.
func (d *Deriver) CalculateShoppingStats(items []models.ShoppingListItem) Stats {
	stats := Stats{
		TotalItems:        len(items),
		CategoryBreakdown: make(map[taxonomy.Category]CategoryStat),
		PriorityBreakdown: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	sections := make(map[string]struct{})

	for _, item := range items {
		stats.TotalEstimated += item.EstimatedPrice

		cs := stats.CategoryBreakdown[item.Category]
		cs.Count++
		cs.Estimated = roundMoney(cs.Estimated + item.EstimatedPrice)
		stats.CategoryBreakdown[item.Category] = cs

		priority := item.Priority
		if priority < 1 || priority > 5 {
			priority = 3
		}
		stats.PriorityBreakdown[priority]++

		if item.Purchased {
			stats.PurchasedItems++
			stats.ActualSpent += item.EstimatedPrice
		} else {
			stats.RemainingItems++
		}

		sections[sectionFor(item.Category).section] = struct{}{}
	}

	stats.SectionsCount = len(sections)
	if stats.TotalItems > 0 {
		stats.AveragePrice = roundMoney(stats.TotalEstimated / float64(stats.TotalItems))
	}
	stats.TotalEstimated = roundMoney(stats.TotalEstimated)
	stats.ActualSpent = roundMoney(stats.ActualSpent)

	return stats
}
