package catalog

import "testing"

func TestCatalogIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	glyphs := make(map[rune]string)
	for _, it := range Items {
		if it.ID == "" {
			t.Fatalf("item %q has empty ID", it.Name)
		}
		if seen[it.ID] {
			t.Errorf("duplicate item ID %q", it.ID)
		}
		seen[it.ID] = true
		if !it.Category.Valid() {
			t.Errorf("item %q has invalid category %q", it.ID, it.Category)
		}
		if it.Points <= 0 {
			t.Errorf("item %q has non-positive points %d", it.ID, it.Points)
		}
		if it.CO2 <= 0 {
			t.Errorf("item %q has non-positive co2 %v", it.ID, it.CO2)
		}
		if it.Tip == "" {
			t.Errorf("item %q has no tip", it.ID)
		}
		if prev, dup := glyphs[it.Glyph]; dup {
			t.Errorf("items %q and %q share glyph %q", prev, it.ID, it.Glyph)
		}
		glyphs[it.Glyph] = it.ID
	}
}

func TestByID(t *testing.T) {
	it, ok := ByID("bottle")
	if !ok {
		t.Fatal("bottle not found")
	}
	if it.Category != Recycle {
		t.Errorf("bottle category = %q, want recycle", it.Category)
	}
	if _, ok := ByID("nope"); ok {
		t.Error("unknown ID should not resolve")
	}
}

func TestByCategoryCoversAll(t *testing.T) {
	total := len(ByCategory(Recycle)) + len(ByCategory(Trash)) + len(ByCategory(Reuse))
	if total != len(Items) {
		t.Errorf("categories cover %d items, catalog has %d", total, len(Items))
	}
	for _, c := range []Category{Recycle, Trash, Reuse} {
		if len(ByCategory(c)) == 0 {
			t.Errorf("category %q has no items", c)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	if Category("compost").Valid() {
		t.Error("unknown category reported valid")
	}
}
