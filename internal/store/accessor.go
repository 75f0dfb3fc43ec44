package store

import (
	"context"
	"fmt"
	"log"

	"github.com/CodeHadIt/caltrack/internal/model"
	"github.com/CodeHadIt/caltrack/internal/nutrition"
)

// Accessor owns the in-memory foods and logs caches for one session. It is
// created at session start with the adapter for the active mode and
// discarded at session end; nothing here is shared ambient state.
//
// DailySummary reads only the cache so it can be computed instantly during
// rendering; callers must FetchLogs the date of interest first. Writes are
// confirmed against the store before the cache is touched, so the cache
// never diverges from the last confirmed store state.
type Accessor struct {
	adapter Adapter

	foods []model.FoodItem
	logs  []model.FoodLogWithItem

	// fetchSeq orders overlapping FetchLogs calls: a fetch that resolves
	// after a newer one was issued must not win the cache.
	fetchSeq     uint64
	appliedFetch uint64
}

func NewAccessor(adapter Adapter) *Accessor {
	return &Accessor{adapter: adapter}
}

// Foods returns the cached foods list from the last fetch.
func (a *Accessor) Foods() []model.FoodItem {
	return a.foods
}

// Logs returns the cached joined logs from the last fetch.
func (a *Accessor) Logs() []model.FoodLogWithItem {
	return a.logs
}

// FetchFoods loads the foods list and replaces the cache wholesale. A store
// failure degrades to an empty list: the error is logged and returned, but
// the accessor stays usable.
func (a *Accessor) FetchFoods(ctx context.Context) ([]model.FoodItem, error) {
	foods, err := a.adapter.FetchFoods(ctx)
	if err != nil {
		log.Printf("caltrack: fetch foods failed, continuing with empty list: %v", err)
		a.foods = []model.FoodItem{}
		return a.foods, err
	}
	a.foods = foods
	return foods, nil
}

// FetchLogs loads the logs for one date, joining each log to its food item.
// Logs whose referenced food no longer resolves are dropped silently. The
// joined set replaces the logs cache unless a newer fetch was issued while
// this one was in flight.
func (a *Accessor) FetchLogs(ctx context.Context, date string) ([]model.FoodLogWithItem, error) {
	a.fetchSeq++
	seq := a.fetchSeq

	foods, err := a.FetchFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch foods for logs: %w", err)
	}
	byID := foodsByID(foods)

	rawLogs, err := a.adapter.FetchLogs(ctx, date)
	if err != nil {
		log.Printf("caltrack: fetch logs for %s failed: %v", date, err)
		return nil, fmt.Errorf("fetch logs for %s: %w", date, err)
	}

	joined := make([]model.FoodLogWithItem, 0, len(rawLogs))
	for _, raw := range rawLogs {
		food, ok := byID[raw.FoodItemID]
		if !ok {
			continue
		}
		joined = append(joined, model.FoodLogWithItem{FoodLog: raw, FoodItem: food})
	}

	// Discard out-of-order completions: only the most recently issued fetch
	// may replace the cache.
	if seq == a.fetchSeq && seq > a.appliedFetch {
		a.logs = joined
		a.appliedFetch = seq
	}
	return joined, nil
}

// AddLog writes a new log through to the active store and, on success,
// makes it visible in the cache without a re-fetch. Weight must be positive;
// upstream callers are expected to have clamped it already.
func (a *Accessor) AddLog(ctx context.Context, foodItemID string, weightGrams float64, mealTime model.MealTime, date string) (model.FoodLogWithItem, error) {
	if weightGrams <= 0 {
		return model.FoodLogWithItem{}, fmt.Errorf("weight must be > 0 grams")
	}
	if !mealTime.Valid() {
		return model.FoodLogWithItem{}, fmt.Errorf("unknown meal time %q", mealTime)
	}

	created, err := a.adapter.AddLog(ctx, model.FoodLog{
		FoodItemID:  foodItemID,
		WeightGrams: weightGrams,
		MealTime:    mealTime,
		Date:        date,
	})
	if err != nil {
		return model.FoodLogWithItem{}, fmt.Errorf("add log: %w", err)
	}

	joined := model.FoodLogWithItem{FoodLog: created}
	for _, food := range a.foods {
		if food.ID == foodItemID {
			joined.FoodItem = food
			a.logs = append(a.logs, joined)
			break
		}
	}
	return joined, nil
}

// RemoveLog deletes a log from the active store and, on success, from the
// cache.
func (a *Accessor) RemoveLog(ctx context.Context, logID string) error {
	if err := a.adapter.RemoveLog(ctx, logID); err != nil {
		return fmt.Errorf("remove log: %w", err)
	}
	kept := a.logs[:0]
	for _, log := range a.logs {
		if log.ID != logID {
			kept = append(kept, log)
		}
	}
	a.logs = kept
	return nil
}

// AddCustomFood writes a user-authored food through to the active store and
// appends it to the foods cache on success.
func (a *Accessor) AddCustomFood(ctx context.Context, food model.FoodItem) (model.FoodItem, error) {
	if food.Name == "" {
		return model.FoodItem{}, fmt.Errorf("food name is required")
	}
	if food.CaloriesPer100g < 0 || food.ProteinPer100g < 0 || food.CarbsPer100g < 0 || food.FatPer100g < 0 {
		return model.FoodItem{}, fmt.Errorf("nutrients per 100g must be >= 0")
	}
	created, err := a.adapter.AddCustomFood(ctx, food)
	if err != nil {
		return model.FoodItem{}, fmt.Errorf("add custom food: %w", err)
	}
	a.foods = append(a.foods, created)
	return created, nil
}

// DailySummary partitions the cached logs for date into the four meal
// buckets and aggregates their scaled nutrients. It performs no I/O: the
// result reflects whatever FetchLogs last loaded.
func (a *Accessor) DailySummary(date string) model.DailySummary {
	dayLogs := make([]model.FoodLogWithItem, 0, len(a.logs))
	meals := make(map[model.MealTime][]model.FoodLogWithItem, len(model.MealTimes))
	for _, mt := range model.MealTimes {
		meals[mt] = []model.FoodLogWithItem{}
	}
	for _, log := range a.logs {
		if log.Date != date {
			continue
		}
		dayLogs = append(dayLogs, log)
		meals[log.MealTime] = append(meals[log.MealTime], log)
	}

	totals := nutrition.AggregateLogs(dayLogs)
	return model.DailySummary{
		Date:          date,
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFat:      totals.Fat,
		Meals:         meals,
	}
}

// WeeklyCalories returns total calories per requested date.
func (a *Accessor) WeeklyCalories(ctx context.Context, dates []string) ([]model.DayCalories, error) {
	totals, err := a.adapter.WeeklyCalories(ctx, dates)
	if err != nil {
		return nil, fmt.Errorf("weekly calories: %w", err)
	}
	return totals, nil
}
