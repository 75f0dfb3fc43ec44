// Package store is the food log access layer: one uniform API over foods,
// logs, and daily summaries regardless of guest or authenticated mode. The
// mode is fixed at construction by choosing an Adapter; no runtime branching
// on session state happens here.
package store

import (
	"context"
	"math"

	"github.com/CodeHadIt/caltrack/internal/model"
)

// Adapter is the common contract both storage modes implement. The guest
// adapter is synchronous underneath; the remote adapter suspends on every
// call, so all methods take a context.
type Adapter interface {
	FetchFoods(ctx context.Context) ([]model.FoodItem, error)
	FetchLogs(ctx context.Context, date string) ([]model.FoodLog, error)
	AddLog(ctx context.Context, log model.FoodLog) (model.FoodLog, error)
	RemoveLog(ctx context.Context, logID string) error
	AddCustomFood(ctx context.Context, food model.FoodItem) (model.FoodItem, error)
	WeeklyCalories(ctx context.Context, dates []string) ([]model.DayCalories, error)
}

func foodsByID(foods []model.FoodItem) map[string]model.FoodItem {
	m := make(map[string]model.FoodItem, len(foods))
	for _, f := range foods {
		m[f.ID] = f
	}
	return m
}

// sumCaloriesByDate groups raw (unrounded) calories per date, then rounds
// each day once. Logs whose food cannot be resolved contribute nothing.
func sumCaloriesByDate(logs []model.FoodLog, foods map[string]model.FoodItem, dates []string) []model.DayCalories {
	byDate := make(map[string]float64, len(dates))
	for _, d := range dates {
		byDate[d] = 0
	}
	for _, log := range logs {
		if _, wanted := byDate[log.Date]; !wanted {
			continue
		}
		food, ok := foods[log.FoodItemID]
		if !ok {
			continue
		}
		byDate[log.Date] += food.CaloriesPer100g * log.WeightGrams / 100
	}

	out := make([]model.DayCalories, len(dates))
	for i, d := range dates {
		out[i] = model.DayCalories{Date: d, Calories: int(math.Round(byDate[d]))}
	}
	return out
}
