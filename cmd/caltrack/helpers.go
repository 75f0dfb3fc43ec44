package caltrack

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/CodeHadIt/caltrack/internal/app"
	"github.com/CodeHadIt/caltrack/internal/db"
	"github.com/CodeHadIt/caltrack/internal/gueststore"
	"github.com/CodeHadIt/caltrack/internal/model"
	"github.com/CodeHadIt/caltrack/internal/remote"
	"github.com/CodeHadIt/caltrack/internal/session"
	"github.com/CodeHadIt/caltrack/internal/store"
)

func resolveDBPath() (string, error) {
	if strings.TrimSpace(dbPath) != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func newRemoteClient() *remote.Client {
	return &remote.Client{BaseURL: os.Getenv("CALTRACK_API_URL")}
}

func withSession(run func(*session.Manager, *sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}

	guest := gueststore.New(sqldb)
	mgr := session.New(sqldb, guest, newRemoteClient())
	return run(mgr, sqldb)
}

// withAccessor builds the access layer for the active mode on top of the
// session.
func withAccessor(run func(*session.Manager, *store.Accessor) error) error {
	return withSession(func(mgr *session.Manager, _ *sql.DB) error {
		var adapter store.Adapter
		if mgr.IsGuest() {
			adapter = store.NewGuestAdapter(mgr.Guest())
		} else {
			adapter = store.NewRemoteAdapter(mgr.Client(), mgr.UserID())
		}
		return run(mgr, store.NewAccessor(adapter))
	})
}

func parseDateOrToday(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// clampWeight bounds a serving weight to the supported [1,1000] gram range.
func clampWeight(grams float64) (float64, error) {
	if grams <= 0 {
		return 0, fmt.Errorf("weight must be > 0 grams")
	}
	if grams < 1 {
		grams = 1
	}
	if grams > 1000 {
		grams = 1000
	}
	return grams, nil
}

func parseGender(s string) (model.Gender, error) {
	g := model.Gender(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("invalid gender %q (male or female)", s)
	}
	return g, nil
}

func parseActivity(s string) (model.ActivityLevel, error) {
	a := model.ActivityLevel(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("invalid activity level %q (sedentary, light, moderate, active, very_active)", s)
	}
	return a, nil
}

func parseGoal(s string) (model.Goal, error) {
	g := model.Goal(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("invalid goal %q (lose, maintain, gain)", s)
	}
	return g, nil
}

func parseMealTime(s string) (model.MealTime, error) {
	m := model.MealTime(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("invalid meal %q (breakfast, lunch, dinner, snack)", s)
	}
	return m, nil
}
