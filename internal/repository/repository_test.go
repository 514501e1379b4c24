package repository

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/templui/notebook/internal/db"
	"github.com/templui/notebook/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db.Init() failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := db.RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("RunMigrations() failed: %v", err)
	}
	return database
}

func strPtr(s string) *string { return &s }

func TestFileRepository_CreateAndByID(t *testing.T) {
	repo := NewFileRepository(newTestDB(t))

	file := &model.File{Name: "notes", Mime: "text/plain", Size: 5, Filename: "1_notes.txt", CreatedAt: 1000}
	if err := repo.Create(file); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if file.ID == 0 {
		t.Fatal("Create() did not assign an id")
	}

	got, err := repo.ByID(file.ID)
	if err != nil {
		t.Fatalf("ByID() failed: %v", err)
	}
	if *got != *file {
		t.Errorf("ByID() = %+v, want %+v", got, file)
	}
}

func TestFileRepository_ByIDNotFound(t *testing.T) {
	repo := NewFileRepository(newTestDB(t))

	_, err := repo.ByID(42)
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("ByID() error = %v, want ErrFileNotFound", err)
	}
}

func TestFileRepository_FilesOrderedByCreatedAtDesc(t *testing.T) {
	repo := NewFileRepository(newTestDB(t))

	files, err := repo.Files()
	if err != nil {
		t.Fatalf("Files() failed: %v", err)
	}
	if files == nil || len(files) != 0 {
		t.Fatalf("Files() on empty table = %v, want empty non-nil slice", files)
	}

	for _, createdAt := range []int64{200, 300, 100} {
		if err := repo.Create(&model.File{Name: "f", Filename: "f", CreatedAt: createdAt}); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}

	files, err = repo.Files()
	if err != nil {
		t.Fatalf("Files() failed: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("len(Files()) = %d, want 3", len(files))
	}
	for i, want := range []int64{300, 200, 100} {
		if files[i].CreatedAt != want {
			t.Errorf("files[%d].CreatedAt = %d, want %d", i, files[i].CreatedAt, want)
		}
	}
}

func TestFileRepository_Delete(t *testing.T) {
	repo := NewFileRepository(newTestDB(t))

	file := &model.File{Name: "f", Filename: "f", CreatedAt: 1}
	if err := repo.Create(file); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if err := repo.Delete(file.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := repo.ByID(file.ID); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("ByID() after delete error = %v", err)
	}
	if err := repo.Delete(file.ID); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("second Delete() error = %v, want ErrFileNotFound", err)
	}
}

func TestEventRepository_CreateAndList(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	inputs := []*model.Event{
		{Title: strPtr("old"), Body: strPtr("b"), Date: strPtr("2023-05-01"), CreatedAt: 1},
		{Title: strPtr("undated"), CreatedAt: 2},
		{Title: strPtr("new"), Body: strPtr("b"), Date: strPtr("2024-01-01"), CreatedAt: 3},
	}
	for _, e := range inputs {
		if err := repo.Create(e); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
		if e.ID == 0 {
			t.Fatal("Create() did not assign an id")
		}
	}

	events, err := repo.Events()
	if err != nil {
		t.Fatalf("Events() failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(Events()) = %d, want 3", len(events))
	}

	wantTitles := []string{"new", "old", "undated"}
	for i, want := range wantTitles {
		if events[i].Title == nil || *events[i].Title != want {
			t.Errorf("events[%d].Title = %v, want %q", i, events[i].Title, want)
		}
	}
	if events[2].Date != nil || events[2].Body != nil {
		t.Errorf("absent fields should stay NULL, got date=%v body=%v", events[2].Date, events[2].Body)
	}
}

func TestProfileRepository_CreateIsAppendOnly(t *testing.T) {
	database := newTestDB(t)
	repo := NewProfileRepository(database)

	first := &model.Profile{User: "me", Data: `{"a":1}`, UpdatedAt: 1}
	second := &model.Profile{User: "me", Data: `{"a":2}`, UpdatedAt: 2}
	for _, p := range []*model.Profile{first, second} {
		if err := repo.Create(p); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}
	if first.ID == second.ID {
		t.Fatal("expected distinct ids for each save")
	}

	var rows []model.Profile
	if err := database.Select(&rows, `SELECT id, "user", data, updated_at FROM profiles WHERE "user" = $1 ORDER BY id`, "me"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].Data != `{"a":2}` {
		t.Errorf("rows[1].Data = %q", rows[1].Data)
	}
}
