package database

import (
	"database/sql"
	"regexp"
	"strconv"
)

// Dialect defines the interface for database-specific operations
type Dialect interface {
	// DriverName returns the driver name for sql.Open
	DriverName() string

	// DSN returns the data source name for the connection
	DSN(config DialectConfig) string

	// RewriteQuery converts placeholder syntax if needed (e.g., ? to $1 for postgres)
	RewriteQuery(query string) string

	// SupportsLastInsertId returns true if the driver supports LastInsertId()
	SupportsLastInsertId() bool

	// ConfigureConnection applies any database-specific connection settings
	ConfigureConnection(db *sql.DB) error

	// MigrationsSubdir returns the subdirectory name for migrations (e.g., "sqlite", "postgres")
	MigrationsSubdir() string

	// CreateMigrationsTableQuery returns the SQL to create the migrations tracking table
	CreateMigrationsTableQuery() string

	// UpsertGameResultQuery returns the atomic insert-or-replace for the
	// game_results table, keyed on (user_id, game, date_key). Last write
	// wins, so same-day resubmissions from multiple devices never create
	// duplicate rows.
	UpsertGameResultQuery() string
}

// DialectConfig holds configuration for database connection
type DialectConfig struct {
	// For SQLite
	Path string

	// For PostgreSQL/MySQL
	URL string
}

// placeholderRegexp matches ? placeholders not inside quotes
var placeholderRegexp = regexp.MustCompile(`\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, etc.
func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(match string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}

// upsertGameResultOnConflict is shared by the dialects that speak
// ON CONFLICT (SQLite and PostgreSQL).
const upsertGameResultOnConflict = `
	INSERT INTO game_results
		(user_id, game, date_key, time_secs, score, out_of, solved, strikes, rounds_used, mistakes, hints)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (user_id, game, date_key) DO UPDATE SET
		time_secs = excluded.time_secs,
		score = excluded.score,
		out_of = excluded.out_of,
		solved = excluded.solved,
		strikes = excluded.strikes,
		rounds_used = excluded.rounds_used,
		mistakes = excluded.mistakes,
		hints = excluded.hints,
		updated_at = CURRENT_TIMESTAMP
`
