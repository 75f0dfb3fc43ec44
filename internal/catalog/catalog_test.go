package catalog_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/CodeHadIt/caltrack/internal/catalog"
)

func TestDefaultFoodsSeed(t *testing.T) {
	t.Parallel()

	foods := catalog.DefaultFoods()
	if len(foods) != 24 {
		t.Fatalf("expected 24 default foods, got %d", len(foods))
	}

	seen := map[string]bool{}
	for i, f := range foods {
		if want := fmt.Sprintf("default-%d", i); f.ID != want {
			t.Fatalf("food %d: expected id %s, got %s", i, want, f.ID)
		}
		if !f.IsDefault {
			t.Fatalf("food %s must be marked default", f.Name)
		}
		if !strings.HasPrefix(f.ImageURL, "https://images.unsplash.com/") {
			t.Fatalf("food %s missing image url, got %q", f.Name, f.ImageURL)
		}
		if _, ok := catalog.CategoryByID(f.CategoryID); !ok {
			t.Fatalf("food %s references unknown category %s", f.Name, f.CategoryID)
		}
		if seen[f.Name] {
			t.Fatalf("duplicate food name %s", f.Name)
		}
		seen[f.Name] = true
	}
}

func TestDefaultFoodsReturnsFreshCopy(t *testing.T) {
	t.Parallel()

	foods := catalog.DefaultFoods()
	foods[0].Name = "mutated"
	if got := catalog.DefaultFoods()[0].Name; got == "mutated" {
		t.Fatalf("callers must not be able to mutate the seed, got %q", got)
	}
}
