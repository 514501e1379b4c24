package db

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	database, err := Init("sqlite", filepath.Join(dir, "notebook.db")+"?_pragma=journal_mode(WAL)")
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer database.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data directory was not created: %v", err)
	}

	var result int
	if err := database.Get(&result, "SELECT 1"); err != nil || result != 1 {
		t.Errorf("SELECT 1 = %d, %v", result, err)
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	database, err := Init("sqlite", filepath.Join(t.TempDir(), "notebook.db"))
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer database.Close()

	if err := RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("first RunMigrations() failed: %v", err)
	}

	_, err = database.Exec(`INSERT INTO events (title, body, date, created_at) VALUES ($1, $2, $3, $4)`, "A", "B", "2024-01-01", 1)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("second RunMigrations() failed: %v", err)
	}

	var count int
	if err := database.Get(&count, "SELECT COUNT(*) FROM events"); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected data to survive re-running migrations, got %d rows", count)
	}

	for _, table := range []string{"files", "events", "profiles"} {
		var name string
		err := database.Get(&name, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1", table)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	version, err := Version(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("Version() failed: %v", err)
	}
	if version != 3 {
		t.Errorf("Version() = %d, want 3", version)
	}
}

func TestMigrateDown(t *testing.T) {
	database, err := Init("sqlite", filepath.Join(t.TempDir(), "notebook.db"))
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer database.Close()

	if err := RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("RunMigrations() failed: %v", err)
	}
	if err := MigrateDown(database.DB, "sqlite"); err != nil {
		t.Fatalf("MigrateDown() failed: %v", err)
	}

	var count int
	err = database.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'profiles'")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if count != 0 {
		t.Error("profiles table should be dropped after one rollback")
	}
}

func TestRunMigrationsUnknownDriver(t *testing.T) {
	if err := RunMigrations(nil, "oracle"); err == nil {
		t.Error("expected error for driver without migrations")
	}
}
