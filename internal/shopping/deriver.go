package shopping

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"shopperwise/internal/models"
	"shopperwise/internal/taxonomy"
)

// ErrInvalidInput signals a caller contract violation (missing or malformed
// top-level argument). Data-quality problems inside individual records never
// produce this; they degrade to safe defaults instead.
var ErrInvalidInput = errors.New("shopping: invalid input")

// PlannedRecipe pairs a recipe name with its ingredient lines. One value per
// planned meal slot; the same recipe appears once per slot it occupies.
type PlannedRecipe struct {
	RecipeName  string
	Ingredients []models.RecipeIngredient
}

// Deriver turns planned meals and current inventory into shopping lists.
// All methods are pure functions over their inputs; the only state a Deriver
// carries is its taxonomy and its pricing/priority strategies, which are
// fixed at construction.
type Deriver struct {
	tax        *taxonomy.Taxonomy
	prices     PriceEstimator
	priorities PriorityScorer
	now        func() time.Time
}

// Option configures a Deriver.
type Option func(*Deriver)

// WithPriceEstimator substitutes the pricing strategy.
func WithPriceEstimator(p PriceEstimator) Option {
	return func(d *Deriver) { d.prices = p }
}

// WithPriorityScorer substitutes the priority strategy.
func WithPriorityScorer(p PriorityScorer) Option {
	return func(d *Deriver) { d.priorities = p }
}

// WithClock substitutes the wall clock used for export timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *Deriver) { d.now = now }
}

// NewDeriver creates a deriver bound to the given taxonomy with the default
// price and priority heuristics.
func NewDeriver(tax *taxonomy.Taxonomy, opts ...Option) *Deriver {
	d := &Deriver{
		tax:        tax,
		prices:     NewTablePriceEstimator(),
		priorities: NewHeuristicPriorityScorer(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Taxonomy returns the taxonomy the deriver classifies with.
func (d *Deriver) Taxonomy() *taxonomy.Taxonomy {
	return d.tax
}

// MergeFromPlans aggregates every ingredient of every planned recipe into a
// deduplicated shopping list, skipping ingredients the inventory already
// covers. Items keep the insertion order of their first occurrence.
//
// An ingredient is bought unless the inventory holds at least the requested
// quantity AND both quantities parse as numbers: when either side is not
// numeric the comparison is unresolvable and we buy anyway rather than risk
// under-shopping (the fail-open-toward-buying rule).
//
// Feeding the same recipe list in twice doubles quantities and repeats recipe
// names; that is the intended merge behaviour, not deduplication by recipe.
func (d *Deriver) MergeFromPlans(plans []PlannedRecipe, inventory []models.InventoryItem) []models.ShoppingListItem {
	stock := make(map[string]*models.InventoryItem, len(inventory))
	for i := range inventory {
		key := strings.ToLower(strings.TrimSpace(inventory[i].IngredientName))
		if key != "" {
			stock[key] = &inventory[i]
		}
	}

	index := make(map[string]int)
	var items []models.ShoppingListItem

	for _, plan := range plans {
		for _, ing := range plan.Ingredients {
			key := strings.ToLower(strings.TrimSpace(ing.Item))
			if key == "" {
				log.Printf("shopping: dropping ingredient with empty name in recipe %q", plan.RecipeName)
				continue
			}

			held := stock[key]
			if !needsToBuy(ing.Quantity, held) {
				continue
			}

			if at, ok := index[key]; ok {
				mergeInto(&items[at], ing, plan.RecipeName)
				continue
			}

			category := ing.Category
			if category == "" || !d.tax.IsValid(string(category)) {
				category = d.tax.Categorize(ing.Item)
			}

			quantity := strings.TrimSpace(ing.Quantity)
			if quantity == "" {
				quantity = "1"
			}

			items = append(items, models.ShoppingListItem{
				ID:             key,
				Name:           ing.Item,
				Quantity:       quantity,
				Unit:           ing.Unit,
				Category:       category,
				Notes:          ing.Notes,
				EstimatedPrice: d.prices.Estimate(ing.Item, category),
				Priority:       d.priorities.Score(ing.Item, held),
				Recipes:        []string{plan.RecipeName},
				Purchased:      false,
			})
			index[key] = len(items) - 1
		}
	}

	return items
}

// needsToBuy decides whether an ingredient must go on the list given what the
// inventory holds under the same name. Absent stock always means buy.
func needsToBuy(requested string, held *models.InventoryItem) bool {
	if held == nil {
		return true
	}
	need, err := parseQuantity(requested)
	if err != nil {
		// Unresolvable comparison: fail open toward buying.
		return true
	}
	return held.Quantity < need
}

// mergeInto folds a repeated ingredient into an existing list item. Numeric
// quantities are summed; a non-numeric quantity on either side leaves the
// first-seen value untouched and is logged as a soft inconsistency.
func mergeInto(item *models.ShoppingListItem, ing models.RecipeIngredient, recipeName string) {
	have, haveErr := parseQuantity(item.Quantity)
	add, addErr := parseQuantity(ing.Quantity)
	if haveErr == nil && addErr == nil {
		item.Quantity = strconv.FormatFloat(have+add, 'f', -1, 64)
	} else {
		log.Printf("shopping: cannot sum quantities %q and %q for %q; keeping first value",
			item.Quantity, ing.Quantity, item.Name)
	}

	item.Recipes = append(item.Recipes, recipeName)

	if note := strings.TrimSpace(ing.Notes); note != "" {
		if item.Notes == "" {
			item.Notes = note
		} else {
			item.Notes = item.Notes + ", " + note
		}
	}
}

func parseQuantity(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
