package database

import (
	"path/filepath"
	"testing"
)

// Exercises the real SQLite driver, the migration runner, and the result
// upsert end to end.
func TestSQLiteMigrationsAndUpsert(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := InitializeSQLite(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Running migrations again must be a no-op, not an error.
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("migrations are not idempotent: %v", err)
	}

	userID, err := db.ExecReturningID(
		"INSERT INTO users (email, password_hash, display_name) VALUES (?, ?, ?)",
		"player@example.com", "hash", "Player",
	)
	if err != nil {
		t.Fatalf("failed to insert user: %v", err)
	}

	upsert := db.Dialect.UpsertGameResultQuery()
	if _, err := db.Exec(upsert, userID, "roles", "2024-05-10", 42, nil, nil, true, 1, 3, nil, nil); err != nil {
		t.Fatalf("failed to insert result: %v", err)
	}
	if _, err := db.Exec(upsert, userID, "roles", "2024-05-10", 55, nil, nil, false, 3, 5, nil, nil); err != nil {
		t.Fatalf("failed to upsert result: %v", err)
	}

	var count, timeSecs int
	if err := db.QueryRow(
		"SELECT COUNT(*), MAX(time_secs) FROM game_results WHERE user_id = ? AND game = ? AND date_key = ?",
		userID, "roles", "2024-05-10",
	).Scan(&count, &timeSecs); err != nil {
		t.Fatalf("failed to query results: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single row after upsert, got %d", count)
	}
	if timeSecs != 55 {
		t.Errorf("expected the second write to win, got time_secs %d", timeSecs)
	}

	// A different date key is a separate row.
	if _, err := db.Exec(upsert, userID, "roles", "bonus-2024-05-10", 30, nil, nil, true, 0, 2, nil, nil); err != nil {
		t.Fatalf("failed to insert bonus result: %v", err)
	}
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM game_results WHERE user_id = ?", userID,
	).Scan(&count); err != nil {
		t.Fatalf("failed to count results: %v", err)
	}
	if count != 2 {
		t.Errorf("expected daily and bonus rows, got %d", count)
	}
}
