package database

import (
	"strings"
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "sqlite3"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for SQLite")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "sqlite"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT * FROM game_results WHERE user_id = ? AND game = ?"
		if dialect.RewriteQuery(query) != query {
			t.Error("SQLite should not rewrite placeholders")
		}
	})

	t.Run("UpsertGameResultQuery", func(t *testing.T) {
		query := dialect.UpsertGameResultQuery()
		if !strings.Contains(query, "ON CONFLICT (user_id, game, date_key)") {
			t.Error("upsert should conflict on the (user_id, game, date_key) key")
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "postgres"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return false for PostgreSQL")
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT * FROM game_results WHERE user_id = ? AND game = ?"
		result := dialect.RewriteQuery(query)
		expected := "SELECT * FROM game_results WHERE user_id = $1 AND game = $2"
		if result != expected {
			t.Errorf("RewriteQuery() = %v, want %v", result, expected)
		}
	})

	t.Run("UpsertGameResultQuery", func(t *testing.T) {
		rewritten := dialect.RewriteQuery(dialect.UpsertGameResultQuery())
		if strings.Contains(rewritten, "?") {
			t.Error("rewritten upsert should not contain ? placeholders")
		}
		if !strings.Contains(rewritten, "$11") {
			t.Error("upsert should number all eleven placeholders")
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "mysql"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for MySQL")
		}
	})

	t.Run("UpsertGameResultQuery", func(t *testing.T) {
		query := dialect.UpsertGameResultQuery()
		if !strings.Contains(query, "ON DUPLICATE KEY UPDATE") {
			t.Error("MySQL upsert should use ON DUPLICATE KEY UPDATE")
		}
	})
}
