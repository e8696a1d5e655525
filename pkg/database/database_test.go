package database_test

import (
	"context"
	"errors"
	"testing"

	"ai-task-planner/pkg/database"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Unsupported driver", func(t *testing.T) {
		if _, err := database.Open(ctx, database.Config{Driver: "mysql", DSN: "x"}); err == nil {
			t.Error("expected error for unsupported driver")
		}
	})

	t.Run("Missing dsn", func(t *testing.T) {
		if _, err := database.Open(ctx, database.Config{Driver: database.DriverSQLite}); err == nil {
			t.Error("expected error for empty dsn")
		}
	})

	t.Run("SQLite memory", func(t *testing.T) {
		db, err := database.Open(ctx, database.Config{Driver: database.DriverSQLite, DSN: "file::memory:?cache=shared"})
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		defer db.Close()

		if stats := db.Stats(); stats.MaxOpenConnections != 1 {
			t.Errorf("expected a single connection for in-memory sqlite, got %d", stats.MaxOpenConnections)
		}
	})
}

func TestMigrateAndUniqueViolation(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, database.Config{Driver: database.DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	migrations := []database.Migration{
		{Version: 1, Name: "people", Statements: []string{
			`CREATE TABLE people (id TEXT PRIMARY KEY, email TEXT NOT NULL UNIQUE)`,
		}},
		{Version: 2, Name: "people_index", Statements: []string{
			`CREATE INDEX idx_people_email ON people(email)`,
		}},
	}

	applied, err := database.Migrate(ctx, db, migrations)
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	applied, err = database.Migrate(ctx, db, migrations)
	if err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected migrations to be skipped, got %d applied", applied)
	}

	if _, err := db.ExecContext(ctx, `INSERT INTO people (id, email) VALUES ($1, $2)`, "1", "a@example.com"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	_, err = db.ExecContext(ctx, `INSERT INTO people (id, email) VALUES ($1, $2)`, "2", "a@example.com")
	if !database.IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got %v", err)
	}
	if database.IsUniqueViolation(errors.New("other")) {
		t.Error("plain error reported as unique violation")
	}
}
