package session

import (
	"context"
	"log"

	"github.com/CodeHadIt/caltrack/internal/model"
	"github.com/CodeHadIt/caltrack/internal/remote"
)

// MigrateGuestData copies a guest-data snapshot onto a freshly created
// account. It is invoked exactly once, right after signup, and never aborts:
// each failed insert is logged and counted, and the account stays usable no
// matter how much of the snapshot made it across.
//
// Custom foods are inserted first so their server-assigned ids are known.
// Log food references are then remapped through the resulting id table;
// references to default (shared) foods pass through unchanged.
func MigrateGuestData(ctx context.Context, client *remote.Client, snapshot model.GuestData, accountID string) model.MigrationReport {
	var report model.MigrationReport

	if !snapshot.Profile.IsEmpty() {
		if err := client.UpdateProfile(ctx, accountID, snapshot.Profile); err != nil {
			log.Printf("caltrack: migrate profile: %v", err)
		} else {
			report.ProfileSynced = true
		}
	}

	foodIDs := make(map[string]string, len(snapshot.CustomFoods))
	for _, food := range snapshot.CustomFoods {
		localID := food.ID
		food.ID = ""
		food.UserID = accountID
		created, err := client.InsertFood(ctx, food)
		if err != nil {
			log.Printf("caltrack: migrate custom food %q: %v", food.Name, err)
			report.FoodsFailed++
			continue
		}
		foodIDs[localID] = created.ID
		report.FoodsSynced++
	}

	for _, guestLog := range snapshot.FoodLogs {
		foodID := guestLog.FoodItemID
		if remapped, ok := foodIDs[foodID]; ok {
			foodID = remapped
		}
		_, err := client.InsertLog(ctx, model.FoodLog{
			UserID:      accountID,
			FoodItemID:  foodID,
			WeightGrams: guestLog.WeightGrams,
			MealTime:    guestLog.MealTime,
			Date:        guestLog.Date,
		})
		if err != nil {
			log.Printf("caltrack: migrate log for %s: %v", guestLog.Date, err)
			report.LogsFailed++
			continue
		}
		report.LogsSynced++
	}

	return report
}
