package db_test

import (
	"path/filepath"
	"testing"

	"github.com/CodeHadIt/caltrack/internal/db"
)

func TestMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "caltrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	for i := 0; i < 2; i++ {
		if err := db.ApplyMigrations(sqldb); err != nil {
			t.Fatalf("apply migrations pass %d: %v", i+1, err)
		}
	}
}

func TestKeyValueRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "caltrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	if _, ok, err := db.GetValue(sqldb, "missing"); err != nil || ok {
		t.Fatalf("expected missing key to read as absent, ok=%v err=%v", ok, err)
	}

	if err := db.SetValue(sqldb, "k", `{"a":1}`); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if err := db.SetValue(sqldb, "k", `{"a":2}`); err != nil {
		t.Fatalf("overwrite value: %v", err)
	}
	v, ok, err := db.GetValue(sqldb, "k")
	if err != nil || !ok {
		t.Fatalf("get value: ok=%v err=%v", ok, err)
	}
	if v != `{"a":2}` {
		t.Fatalf("expected overwritten value, got %q", v)
	}

	if err := db.DeleteValue(sqldb, "k"); err != nil {
		t.Fatalf("delete value: %v", err)
	}
	if _, ok, _ := db.GetValue(sqldb, "k"); ok {
		t.Fatalf("expected key to be gone after delete")
	}
	if err := db.DeleteValue(sqldb, "k"); err != nil {
		t.Fatalf("delete missing key should be a no-op: %v", err)
	}
}
