package catalogstore_test

import (
	"testing"

	catalogstore "github.com/dalemusser/devcatalog/internal/app/store/catalog"
)

func TestCategories_FixedOrder(t *testing.T) {
	cats := catalogstore.Categories()
	want := []string{"Diseño UX/UI", "Backend", "Frontend", "IA", "Inglés", "Otros"}
	if len(cats) != len(want) {
		t.Fatalf("got %d categories, want %d", len(cats), len(want))
	}
	for i, c := range cats {
		if c.ID != i+1 {
			t.Errorf("categories[%d].ID = %d, want %d", i, c.ID, i+1)
		}
		if c.Name != want[i] {
			t.Errorf("categories[%d].Name = %q, want %q", i, c.Name, want[i])
		}
	}
}

func TestCategoriesData_ReturnsCopies(t *testing.T) {
	groups := catalogstore.CategoriesData()
	groups[0].Subcategories[0] = "mutated"
	groups[0].Category = "mutated"

	again := catalogstore.CategoriesData()
	if again[0].Category != "design" || again[0].Subcategories[0] != "colors" {
		t.Errorf("tables were mutated through a returned copy: %+v", again[0])
	}
}

func TestCategoryByIndex(t *testing.T) {
	want := []string{"design", "backend", "frontend", "IA", "english", "other"}
	for i, cat := range want {
		g, ok := catalogstore.CategoryByIndex(i + 1)
		if !ok {
			t.Fatalf("CategoryByIndex(%d) not found", i+1)
		}
		if g.Category != cat {
			t.Errorf("CategoryByIndex(%d) = %q, want %q", i+1, g.Category, cat)
		}
	}

	for _, idx := range []int{-1, 0, 7, 100} {
		if _, ok := catalogstore.CategoryByIndex(idx); ok {
			t.Errorf("CategoryByIndex(%d) should not resolve", idx)
		}
	}
}

func TestIndexOf(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"design", 1},
		{"backend", 2},
		{"other", 6},
		{"Backend", 0},
		{"", 0},
		{"nope", 0},
	}
	for _, tt := range tests {
		if got := catalogstore.IndexOf(tt.in); got != tt.want {
			t.Errorf("IndexOf(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSubCategoryName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"colors", "Generador de paletas de colores"},
		{"CSS_Tools", "Herramientas CSS"},
		{"pronunciation", "Pronunciación"},
		{"unknown_key", catalogstore.SubcategoryPlaceholder},
		{"", catalogstore.SubcategoryPlaceholder},
		{"Colors", catalogstore.SubcategoryPlaceholder},
	}
	for _, tt := range tests {
		if got := catalogstore.SubCategoryName(tt.in); got != tt.want {
			t.Errorf("SubCategoryName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"design", "Diseño UX/UI"},
		{"english", "Inglés"},
		{"other", "Otros"},
		{"cooking", "cooking"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := catalogstore.MapCategory(tt.in); got != tt.want {
			t.Errorf("MapCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEveryGroupSubcategoryIsNamed(t *testing.T) {
	if missing := catalogstore.MissingSubcategoryNames(); len(missing) != 0 {
		t.Errorf("subcategories without display names: %v", missing)
	}
}
