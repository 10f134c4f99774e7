package shopping

import (
	"sort"

	"shopperwise/internal/models"
	"shopperwise/internal/taxonomy"
)

// StoreSection groups shopping list items that live in the same part of the
// store. Sections are derived fresh on every call, never stored.
type StoreSection struct {
	SectionName    string                    `json:"section_name"`
	Order          int                       `json:"order"`
	Items          []models.ShoppingListItem `json:"items"`
	TotalEstimated float64                   `json:"total_estimated"`
	ItemCount      int                       `json:"item_count"`
}

// routeStop places a category on the shopping route. Tuned for a typical UK
// supermarket layout: produce by the entrance, household goods at the back.
type routeStop struct {
	section string
	order   int
}

var storeRoute = map[taxonomy.Category]routeStop{
	taxonomy.CategoryVegetables:     {"Fresh Produce", 1},
	taxonomy.CategoryFruits:         {"Fresh Produce", 1},
	taxonomy.CategoryMeat:           {"Meat & Fish", 2},
	taxonomy.CategoryFish:           {"Meat & Fish", 2},
	taxonomy.CategoryDairy:          {"Dairy & Chilled", 3},
	taxonomy.CategoryBakery:         {"Bakery", 4},
	taxonomy.CategoryFrozen:         {"Frozen", 5},
	taxonomy.CategoryGrains:         {"Grocery Aisles", 6},
	taxonomy.CategoryPantry:         {"Grocery Aisles", 6},
	taxonomy.CategoryOilsCondiments: {"Grocery Aisles", 6},
	taxonomy.CategoryHerbsSpices:    {"Grocery Aisles", 6},
	taxonomy.CategoryBeverages:      {"Beverages", 7},
	taxonomy.CategorySnacks:         {"Snacks & Confectionery", 8},
	taxonomy.CategoryHousehold:      {"Household & Health", 9},
	taxonomy.CategoryOther:          {"Other", 10},
}

// sectionFor resolves the route stop for a category; unmapped categories land
// with CategoryOther.
func sectionFor(cat taxonomy.Category) routeStop {
	if stop, ok := storeRoute[cat]; ok {
		return stop
	}
	return storeRoute[taxonomy.CategoryOther]
}

// OrganizeByStoreSections buckets items into store sections and orders the
// sections along the shopping route (ascending route order, ties broken by
// section name). Every input item lands in exactly one section.
func (d *Deriver) OrganizeByStoreSections(items []models.ShoppingListItem) []StoreSection {
	buckets := make(map[string]*StoreSection)

	for _, item := range items {
		stop := sectionFor(item.Category)
		sec, ok := buckets[stop.section]
		if !ok {
			sec = &StoreSection{SectionName: stop.section, Order: stop.order}
			buckets[stop.section] = sec
		}
		sec.Items = append(sec.Items, item)
		sec.TotalEstimated = roundMoney(sec.TotalEstimated + item.EstimatedPrice)
		sec.ItemCount++
	}

	sections := make([]StoreSection, 0, len(buckets))
	for _, sec := range buckets {
		sections = append(sections, *sec)
	}
	sort.Slice(sections, func(i, j int) bool {
		if sections[i].Order != sections[j].Order {
			return sections[i].Order < sections[j].Order
		}
		return sections[i].SectionName < sections[j].SectionName
	})
	return sections
}
