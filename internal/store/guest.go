package store

import (
	"context"

	"github.com/CodeHadIt/caltrack/internal/catalog"
	"github.com/CodeHadIt/caltrack/internal/gueststore"
	"github.com/CodeHadIt/caltrack/internal/model"
)

// GuestAdapter serves the access layer from the local guest store. All
// operations complete synchronously; the context is accepted for interface
// symmetry only.
type GuestAdapter struct {
	Guest *gueststore.Store
}

func NewGuestAdapter(guest *gueststore.Store) *GuestAdapter {
	return &GuestAdapter{Guest: guest}
}

// FetchFoods returns the default catalog unioned with the guest's custom
// foods.
func (a *GuestAdapter) FetchFoods(_ context.Context) ([]model.FoodItem, error) {
	foods := catalog.DefaultFoods()
	return append(foods, a.Guest.CustomFoods()...), nil
}

func (a *GuestAdapter) FetchLogs(_ context.Context, date string) ([]model.FoodLog, error) {
	return a.Guest.Logs(date), nil
}

func (a *GuestAdapter) AddLog(_ context.Context, log model.FoodLog) (model.FoodLog, error) {
	return a.Guest.AddLog(log)
}

func (a *GuestAdapter) RemoveLog(_ context.Context, logID string) error {
	return a.Guest.RemoveLog(logID)
}

func (a *GuestAdapter) AddCustomFood(_ context.Context, food model.FoodItem) (model.FoodItem, error) {
	return a.Guest.AddCustomFood(food)
}

// WeeklyCalories scans the guest store once per date; local reads are cheap
// enough that no batching is needed.
func (a *GuestAdapter) WeeklyCalories(ctx context.Context, dates []string) ([]model.DayCalories, error) {
	foods, err := a.FetchFoods(ctx)
	if err != nil {
		return nil, err
	}
	byID := foodsByID(foods)

	var logs []model.FoodLog
	for _, date := range dates {
		logs = append(logs, a.Guest.Logs(date)...)
	}
	return sumCaloriesByDate(logs, byID, dates), nil
}
