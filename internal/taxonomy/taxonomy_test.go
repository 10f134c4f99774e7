package taxonomy

import "testing"

func TestCategorize(t *testing.T) {
	tax := Default()

	cases := []struct {
		name string
		want Category
	}{
		{"Chicken breast, diced", CategoryMeat},
		{"onion", CategoryVegetables},
		{"Onions", CategoryVegetables},
		{"smoked salmon", CategoryFish},
		{"Whole Milk", CategoryDairy},
		{"basmati rice", CategoryGrains},
		{"smoked paprika", CategoryHerbsSpices},
		{"extra virgin olive oil", CategoryOilsCondiments},
		{"tinned tomatoes", CategoryVegetables}, // "tomato" wins before pantry
		{"sourdough bread", CategoryBakery},
		{"bread", CategoryBakery},
		{"frozen peas", CategoryVegetables}, // "peas" wins before frozen
		{"ice cream", CategoryFrozen},
		{"orange juice", CategoryFruits}, // "orange" wins before beverages
		{"kitchen roll", CategoryHousehold},
		{"dragonfruit syrup", CategoryOther},
		{"", CategoryOther},
		{"   ", CategoryOther},
	}

	for _, tc := range cases {
		if got := tax.Categorize(tc.name); got != tc.want {
			t.Errorf("Categorize(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCategorizeShortNameInsideKeyword(t *testing.T) {
	tax := Default()

	// A short name contained inside a longer keyword still matches;
	// "egg" hits "eggplant" in vegetables before dairy is scanned.
	if got := tax.Categorize("egg"); got != CategoryVegetables {
		t.Errorf("Categorize(\"egg\") = %q, want %q", got, CategoryVegetables)
	}
	if got := tax.Categorize("eggs"); got != CategoryDairy {
		t.Errorf("Categorize(\"eggs\") = %q, want %q", got, CategoryDairy)
	}
}

func TestCategorizeIsDeterministic(t *testing.T) {
	tax := Default()

	names := []string{"chicken", "Bread rolls", "mystery paste", "", "Olive Oil"}
	for _, name := range names {
		first := tax.Categorize(name)
		for i := 0; i < 10; i++ {
			if got := tax.Categorize(name); got != first {
				t.Fatalf("Categorize(%q) changed between calls: %q then %q", name, first, got)
			}
		}
	}
}

func TestCategorizeNeverReturnsUnknown(t *testing.T) {
	tax := Default()
	valid := make(map[Category]bool)
	for _, cat := range tax.Categories() {
		valid[cat] = true
	}

	inputs := []string{"", " ", "!!!", "1234", "quantum flux", "aaaaaaaaaaaaaaaa", "Ωmega"}
	for _, in := range inputs {
		got := tax.Categorize(in)
		if !valid[got] {
			t.Errorf("Categorize(%q) = %q, not a member of the category set", in, got)
		}
	}
}

func TestCategories(t *testing.T) {
	tax := Default()
	cats := tax.Categories()

	if len(cats) != 15 {
		t.Fatalf("Categories() returned %d categories, want 15", len(cats))
	}
	if cats[0] != CategoryVegetables {
		t.Errorf("Categories()[0] = %q, want %q", cats[0], CategoryVegetables)
	}
	if cats[len(cats)-1] != CategoryOther {
		t.Errorf("Categories() last = %q, want %q", cats[len(cats)-1], CategoryOther)
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	tax := Default()

	words := tax.Keywords(CategoryMeat)
	if len(words) == 0 {
		t.Fatal("Keywords(meat) returned no keywords")
	}
	words[0] = "tofu"
	if tax.Keywords(CategoryMeat)[0] == "tofu" {
		t.Error("Keywords() exposed internal state to mutation")
	}

	if got := tax.Keywords(Category("nonsense")); len(got) != 0 {
		t.Errorf("Keywords(nonsense) returned %d keywords, want 0", len(got))
	}
}

func TestIsValid(t *testing.T) {
	tax := Default()

	for _, cat := range tax.Categories() {
		if !tax.IsValid(string(cat)) {
			t.Errorf("IsValid(%q) = false, want true", cat)
		}
	}
	for _, bad := range []string{"", "Vegetables", "produce", "meat "} {
		if tax.IsValid(bad) {
			t.Errorf("IsValid(%q) = true, want false", bad)
		}
	}
}

func TestNewCopiesInputs(t *testing.T) {
	order := []Category{CategoryMeat}
	keywords := map[Category][]string{CategoryMeat: {"chicken"}}
	tax := New(order, keywords)

	keywords[CategoryMeat][0] = "lettuce"
	if got := tax.Categorize("chicken"); got != CategoryMeat {
		t.Errorf("Categorize(\"chicken\") = %q after input mutation, want %q", got, CategoryMeat)
	}
}
