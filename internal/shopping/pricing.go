package shopping

import (
	"math"
	"strings"

	"shopperwise/internal/taxonomy"
)

// PriceEstimator guesses a purchase price for an ingredient. The default is a
// fixed heuristic table; a real pricing data source can be swapped in without
// touching the deriver.
type PriceEstimator interface {
	Estimate(name string, category taxonomy.Category) float64
}

// TablePriceEstimator prices by category base price with name-triggered
// multipliers. Prices are in pounds.
type TablePriceEstimator struct {
	base        map[taxonomy.Category]float64
	defaultBase float64
}

// multiplierRule scales the base price when any of its phrases appears in the
// item name. Rules are checked in order and the first hit wins, so the most
// expensive tier has to come first.
type multiplierRule struct {
	phrases []string
	factor  float64
}

var multiplierRules = []multiplierRule{
	{phrases: []string{"truffle", "saffron"}, factor: 5},
	{phrases: []string{"salmon", "beef"}, factor: 2},
	{phrases: []string{"organic", "free range"}, factor: 1.5},
}

// NewTablePriceEstimator returns the default heuristic estimator.
func NewTablePriceEstimator() *TablePriceEstimator {
	return &TablePriceEstimator{
		base: map[taxonomy.Category]float64{
			taxonomy.CategoryVegetables:     2.50,
			taxonomy.CategoryFruits:         3.00,
			taxonomy.CategoryMeat:           8.00,
			taxonomy.CategoryFish:           6.50,
			taxonomy.CategoryDairy:          3.50,
			taxonomy.CategoryGrains:         2.00,
			taxonomy.CategoryHerbsSpices:    1.50,
			taxonomy.CategoryOilsCondiments: 3.00,
			taxonomy.CategoryPantry:         2.50,
			taxonomy.CategoryBakery:         2.00,
			taxonomy.CategoryFrozen:         4.00,
			taxonomy.CategoryBeverages:      2.50,
			taxonomy.CategorySnacks:         3.00,
			taxonomy.CategoryHousehold:      4.00,
			taxonomy.CategoryOther:          3.00,
		},
		defaultBase: 3.00,
	}
}

// Estimate returns base price times the first matching multiplier, rounded to
// two decimal places. Never negative.
func (e *TablePriceEstimator) Estimate(name string, category taxonomy.Category) float64 {
	base, ok := e.base[category]
	if !ok {
		base = e.defaultBase
	}

	lower := strings.ToLower(name)
	multiplier := 1.0
	for _, rule := range multiplierRules {
		if containsAny(lower, rule.phrases) {
			multiplier = rule.factor
			break
		}
	}

	return roundMoney(base * multiplier)
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// roundMoney rounds to two decimal places (pence precision).
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
