package gueststore_test

import (
	"path/filepath"
	"testing"

	"github.com/CodeHadIt/caltrack/internal/db"
	"github.com/CodeHadIt/caltrack/internal/gueststore"
	"github.com/CodeHadIt/caltrack/internal/model"
)

func newTestStore(t *testing.T) *gueststore.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "caltrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return gueststore.New(sqldb)
}

func TestEmptyStoreDefaults(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	data := store.Data()
	if len(data.FoodLogs) != 0 || len(data.CustomFoods) != 0 {
		t.Fatalf("expected empty state, got %+v", data)
	}
	if p := store.Profile(); p.ID != gueststore.GuestID || !p.IsEmpty() {
		t.Fatalf("expected empty guest profile, got %+v", p)
	}
}

func TestLogRoundTrip(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	first, err := store.AddLog(model.FoodLog{
		FoodItemID:  "default-0",
		WeightGrams: 150,
		MealTime:    model.MealLunch,
		Date:        "2026-08-29",
	})
	if err != nil {
		t.Fatalf("add log: %v", err)
	}
	if first.ID == "" || first.LoggedAt == "" {
		t.Fatalf("expected assigned id and timestamp, got %+v", first)
	}
	if first.UserID != gueststore.GuestID {
		t.Fatalf("expected guest owner, got %q", first.UserID)
	}

	second, err := store.AddLog(model.FoodLog{
		FoodItemID:  "default-1",
		WeightGrams: 90,
		MealTime:    model.MealSnack,
		Date:        "2026-08-30",
	})
	if err != nil {
		t.Fatalf("add second log: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("expected distinct ids, both %q", first.ID)
	}

	logs := store.Logs("2026-08-29")
	if len(logs) != 1 || logs[0].ID != first.ID {
		t.Fatalf("expected only the first log for its date, got %+v", logs)
	}
	if all := store.Logs(""); len(all) != 2 {
		t.Fatalf("expected 2 logs total, got %d", len(all))
	}

	if err := store.RemoveLog(first.ID); err != nil {
		t.Fatalf("remove log: %v", err)
	}
	for _, log := range store.Logs("") {
		if log.ID == first.ID {
			t.Fatalf("removed log still present")
		}
	}
	if err := store.RemoveLog("no-such-id"); err != nil {
		t.Fatalf("removing unknown id should be a no-op: %v", err)
	}
}

func TestAddCustomFood(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	food, err := store.AddCustomFood(model.FoodItem{
		CategoryID:      "cat-proteins",
		Name:            "Grilled Tilapia",
		CaloriesPer100g: 128,
		ProteinPer100g:  26,
		FatPer100g:      2.7,
		IsDefault:       true, // must be forced off
	})
	if err != nil {
		t.Fatalf("add custom food: %v", err)
	}
	if food.IsDefault {
		t.Fatalf("custom food must not be marked default")
	}
	if food.UserID != gueststore.GuestID || food.ID == "" {
		t.Fatalf("unexpected ownership: %+v", food)
	}

	foods := store.CustomFoods()
	if len(foods) != 1 || foods[0].Name != "Grilled Tilapia" {
		t.Fatalf("unexpected custom foods: %+v", foods)
	}
}

func TestProfileShallowMerge(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	if err := store.UpdateProfile(model.Profile{HeightCm: 180, Goal: model.GoalGain}); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if err := store.UpdateProfile(model.Profile{WeightKg: 82}); err != nil {
		t.Fatalf("second update: %v", err)
	}

	p := store.Profile()
	if p.HeightCm != 180 || p.WeightKg != 82 || p.Goal != model.GoalGain {
		t.Fatalf("expected merged profile, got %+v", p)
	}
}

func TestClearRemovesEverything(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	if _, err := store.AddLog(model.FoodLog{FoodItemID: "default-0", WeightGrams: 100, MealTime: model.MealDinner, Date: "2026-08-30"}); err != nil {
		t.Fatalf("add log: %v", err)
	}
	if err := store.UpdateProfile(model.Profile{Age: 31}); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	data := store.Data()
	if len(data.FoodLogs) != 0 || !data.Profile.IsEmpty() {
		t.Fatalf("expected empty state after clear, got %+v", data)
	}
}

func TestMacroRecommendationCache(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	if rec := store.MacroRecommendation(); rec != nil {
		t.Fatalf("expected no cached recommendation, got %+v", rec)
	}

	want := model.MacroRecommendation{
		Calories: 2056,
		Protein:  model.MacroTarget{Grams: 206, Calories: 822, Percentage: 40},
		Carbs:    model.MacroTarget{Grams: 180, Calories: 720, Percentage: 35},
		Fat:      model.MacroTarget{Grams: 57, Calories: 514, Percentage: 25},
		Goal:     model.GoalLose,
	}
	if err := store.SaveMacroRecommendation(want); err != nil {
		t.Fatalf("save recommendation: %v", err)
	}
	got := store.MacroRecommendation()
	if got == nil || *got != want {
		t.Fatalf("expected cached recommendation %+v, got %+v", want, got)
	}

	if err := store.ClearMacroRecommendation(); err != nil {
		t.Fatalf("clear recommendation: %v", err)
	}
	if rec := store.MacroRecommendation(); rec != nil {
		t.Fatalf("expected cache cleared, got %+v", rec)
	}
}
