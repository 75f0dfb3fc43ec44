package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/CodeHadIt/caltrack/internal/model"
	"github.com/CodeHadIt/caltrack/internal/remote"
)

// RemoteAdapter serves the access layer from the hosted backend for one
// authenticated user.
type RemoteAdapter struct {
	Client *remote.Client
	UserID string
}

func NewRemoteAdapter(client *remote.Client, userID string) *RemoteAdapter {
	return &RemoteAdapter{Client: client, UserID: userID}
}

func (a *RemoteAdapter) FetchFoods(ctx context.Context) ([]model.FoodItem, error) {
	return a.Client.Foods(ctx, a.UserID)
}

func (a *RemoteAdapter) FetchLogs(ctx context.Context, date string) ([]model.FoodLog, error) {
	return a.Client.Logs(ctx, a.UserID, date)
}

func (a *RemoteAdapter) AddLog(ctx context.Context, log model.FoodLog) (model.FoodLog, error) {
	log.UserID = a.UserID
	return a.Client.InsertLog(ctx, log)
}

func (a *RemoteAdapter) RemoveLog(ctx context.Context, logID string) error {
	return a.Client.DeleteLog(ctx, logID)
}

func (a *RemoteAdapter) AddCustomFood(ctx context.Context, food model.FoodItem) (model.FoodItem, error) {
	food.UserID = a.UserID
	return a.Client.InsertFood(ctx, food)
}

// WeeklyCalories issues one batched query across the whole date range and
// groups client-side, instead of one round-trip per day.
func (a *RemoteAdapter) WeeklyCalories(ctx context.Context, dates []string) ([]model.DayCalories, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	sorted := append([]string(nil), dates...)
	sort.Strings(sorted)

	foods, err := a.FetchFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch foods for weekly totals: %w", err)
	}
	logs, err := a.Client.LogsInRange(ctx, a.UserID, sorted[0], sorted[len(sorted)-1])
	if err != nil {
		return nil, fmt.Errorf("fetch logs for weekly totals: %w", err)
	}
	return sumCaloriesByDate(logs, foodsByID(foods), dates), nil
}
