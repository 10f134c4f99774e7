package taxonomy

import "strings"

// Category identifies one grocery category in the fixed taxonomy.
type Category string

const (
	CategoryVegetables     Category = "vegetables"
	CategoryFruits         Category = "fruits"
	CategoryMeat           Category = "meat"
	CategoryFish           Category = "fish"
	CategoryDairy          Category = "dairy"
	CategoryGrains         Category = "grains"
	CategoryHerbsSpices    Category = "herbs_spices"
	CategoryOilsCondiments Category = "oils_condiments"
	CategoryPantry         Category = "pantry"
	CategoryBeverages      Category = "beverages"
	CategoryFrozen         Category = "frozen"
	CategorySnacks         Category = "snacks"
	CategoryBakery         Category = "bakery"
	CategoryHousehold      Category = "household"
	CategoryOther          Category = "other"
)

// Taxonomy maps ingredient keywords to grocery categories. It is built once
// at startup and shared read-only; categorization scans categories in a fixed
// order so results are stable across calls.
type Taxonomy struct {
	order    []Category
	keywords map[Category][]string
}

// New builds a taxonomy from an ordered category list and keyword table.
// The keyword slices are copied so later mutation of the input cannot
// change categorization results.
func New(order []Category, keywords map[Category][]string) *Taxonomy {
	t := &Taxonomy{
		order:    make([]Category, len(order)),
		keywords: make(map[Category][]string, len(keywords)),
	}
	copy(t.order, order)
	for cat, words := range keywords {
		t.keywords[cat] = append([]string(nil), words...)
	}
	return t
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return New(defaultOrder, defaultKeywords)
}

// Categorize assigns a grocery category to a free-text ingredient name.
// Matching is case-insensitive and accepts a keyword appearing inside the
// name as well as the name appearing inside a keyword, so "chicken breast"
// matches "chicken" and "egg" matches "eggplant". The first category whose
// keyword list matches wins. Unmatched or empty names resolve to
// CategoryOther; this function never fails.
func (t *Taxonomy) Categorize(name string) Category {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return CategoryOther
	}

	for _, cat := range t.order {
		for _, keyword := range t.keywords[cat] {
			if lower == keyword ||
				strings.Contains(lower, keyword) ||
				strings.Contains(keyword, lower) {
				return cat
			}
		}
	}

	return CategoryOther
}

// Categories returns every category in scan order, including CategoryOther.
func (t *Taxonomy) Categories() []Category {
	cats := make([]Category, 0, len(t.order)+1)
	cats = append(cats, t.order...)
	return append(cats, CategoryOther)
}

// Keywords returns a copy of the keyword list for a category. Unknown
// categories yield an empty list.
func (t *Taxonomy) Keywords(cat Category) []string {
	return append([]string(nil), t.keywords[cat]...)
}

// IsValid reports whether the candidate names a category in this taxonomy.
func (t *Taxonomy) IsValid(candidate string) bool {
	if Category(candidate) == CategoryOther {
		return true
	}
	for _, cat := range t.order {
		if Category(candidate) == cat {
			return true
		}
	}
	return false
}
