// Package gueststore persists one anonymous user's profile, custom foods,
// and food logs. Everything lives in a single JSON record under one key in
// the local key-value table, and every mutation rewrites the whole record so
// no field can be lost to a partial update.
package gueststore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CodeHadIt/caltrack/internal/db"
	"github.com/CodeHadIt/caltrack/internal/model"
)

// GuestID is the fixed identifier for all guest data. There is no
// multi-guest support.
const GuestID = "guest-user"

const (
	dataKey  = "caltrack_guest_data"
	macroKey = "caltrack_macro_recommendation"
)

type Store struct {
	db *sql.DB
}

func New(sqldb *sql.DB) *Store {
	return &Store{db: sqldb}
}

// Data loads the full guest record. A missing or unreadable record yields
// the empty-state default, never an error the caller has to handle.
func (s *Store) Data() model.GuestData {
	empty := model.GuestData{
		FoodLogs:    []model.FoodLog{},
		CustomFoods: []model.FoodItem{},
	}
	raw, ok, err := db.GetValue(s.db, dataKey)
	if err != nil || !ok {
		return empty
	}
	var data model.GuestData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return empty
	}
	if data.FoodLogs == nil {
		data.FoodLogs = []model.FoodLog{}
	}
	if data.CustomFoods == nil {
		data.CustomFoods = []model.FoodItem{}
	}
	return data
}

func (s *Store) save(data model.GuestData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode guest data: %w", err)
	}
	if err := db.SetValue(s.db, dataKey, string(raw)); err != nil {
		return fmt.Errorf("persist guest data: %w", err)
	}
	return nil
}

// AddLog assigns an id and timestamp to the given log, appends it, and
// persists the full record.
func (s *Store) AddLog(log model.FoodLog) (model.FoodLog, error) {
	data := s.Data()
	log.ID = uuid.NewString()
	log.UserID = GuestID
	log.LoggedAt = time.Now().UTC().Format(time.RFC3339)
	data.FoodLogs = append(data.FoodLogs, log)
	if err := s.save(data); err != nil {
		return model.FoodLog{}, err
	}
	return log, nil
}

// RemoveLog deletes the log with the given id. Removing an unknown id is a
// no-op, not an error.
func (s *Store) RemoveLog(logID string) error {
	data := s.Data()
	kept := data.FoodLogs[:0]
	for _, log := range data.FoodLogs {
		if log.ID != logID {
			kept = append(kept, log)
		}
	}
	data.FoodLogs = kept
	return s.save(data)
}

// Logs returns the guest's logs in insertion order, optionally filtered to
// one date (YYYY-MM-DD). An empty date returns everything.
func (s *Store) Logs(date string) []model.FoodLog {
	data := s.Data()
	if date == "" {
		return data.FoodLogs
	}
	logs := make([]model.FoodLog, 0, len(data.FoodLogs))
	for _, log := range data.FoodLogs {
		if log.Date == date {
			logs = append(logs, log)
		}
	}
	return logs
}

// AddCustomFood stores a user-authored food owned by the guest.
func (s *Store) AddCustomFood(food model.FoodItem) (model.FoodItem, error) {
	data := s.Data()
	food.ID = uuid.NewString()
	food.UserID = GuestID
	food.IsDefault = false
	food.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	data.CustomFoods = append(data.CustomFoods, food)
	if err := s.save(data); err != nil {
		return model.FoodItem{}, err
	}
	return food, nil
}

func (s *Store) CustomFoods() []model.FoodItem {
	return s.Data().CustomFoods
}

// UpdateProfile shallow-merges the set fields of updates into the stored
// profile. Zero-valued fields are left untouched.
func (s *Store) UpdateProfile(updates model.Profile) error {
	data := s.Data()
	p := data.Profile
	if updates.HeightCm != 0 {
		p.HeightCm = updates.HeightCm
	}
	if updates.WeightKg != 0 {
		p.WeightKg = updates.WeightKg
	}
	if updates.Age != 0 {
		p.Age = updates.Age
	}
	if updates.Gender != "" {
		p.Gender = updates.Gender
	}
	if updates.ActivityLevel != "" {
		p.ActivityLevel = updates.ActivityLevel
	}
	if updates.Goal != "" {
		p.Goal = updates.Goal
	}
	data.Profile = p
	return s.save(data)
}

// Profile returns the stored guest profile with the guest id set. An empty
// store yields an empty profile.
func (s *Store) Profile() model.Profile {
	p := s.Data().Profile
	p.ID = GuestID
	return p
}

// Snapshot captures the entire guest record for migration. Taken before
// account creation so later mutations cannot leak into the migrated set.
func (s *Store) Snapshot() model.GuestData {
	return s.Data()
}

// Clear deletes all guest state unconditionally.
func (s *Store) Clear() error {
	if err := db.DeleteValue(s.db, dataKey); err != nil {
		return fmt.Errorf("clear guest data: %w", err)
	}
	return nil
}

// SaveMacroRecommendation caches the last computed macro split. The cache is
// display-only and independent of the guest record.
func (s *Store) SaveMacroRecommendation(rec model.MacroRecommendation) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode macro recommendation: %w", err)
	}
	return db.SetValue(s.db, macroKey, string(raw))
}

// MacroRecommendation returns the cached macro split, or nil when absent.
func (s *Store) MacroRecommendation() *model.MacroRecommendation {
	raw, ok, err := db.GetValue(s.db, macroKey)
	if err != nil || !ok {
		return nil
	}
	var rec model.MacroRecommendation
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil
	}
	return &rec
}

func (s *Store) ClearMacroRecommendation() error {
	return db.DeleteValue(s.db, macroKey)
}
