package repository

import (
	"errors"
	"fmt"

	"reelstreak/internal/database"
	"reelstreak/internal/models"
)

// ErrInvalidResult marks a result rejected before it reached the database.
var ErrInvalidResult = errors.New("invalid result")

// ResultRepository handles database operations for game results
type ResultRepository struct {
	db *database.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *database.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// UpsertResult inserts or replaces the result for (user, game, date key).
// Concurrent same-day submissions from multiple devices race safely: the
// unique index makes the operation atomic and the last write wins.
func (r *ResultRepository) UpsertResult(result *models.GameResult) error {
	if err := result.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}

	query := r.db.Dialect.UpsertGameResultQuery()
	_, err := r.db.Exec(query,
		result.UserID,
		result.Game,
		result.DateKey,
		result.TimeSecs,
		result.Score,
		result.OutOf,
		result.Solved,
		result.Strikes,
		result.RoundsUsed,
		result.Mistakes,
		result.Hints,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert result: %w", err)
	}
	return nil
}

const resultColumns = `id, user_id, game, date_key, time_secs, score, out_of, solved, strikes, rounds_used, mistakes, hints, created_at, updated_at`

// GetResults retrieves all results for a user in one game, newest day first.
func (r *ResultRepository) GetResults(userID int64, game string) ([]models.GameResult, error) {
	query := `
		SELECT ` + resultColumns + `
		FROM game_results
		WHERE user_id = ? AND game = ?
		ORDER BY date_key DESC
	`
	rows, err := r.db.Query(query, userID, game)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []models.GameResult
	for rows.Next() {
		var result models.GameResult
		err := rows.Scan(
			&result.ID,
			&result.UserID,
			&result.Game,
			&result.DateKey,
			&result.TimeSecs,
			&result.Score,
			&result.OutOf,
			&result.Solved,
			&result.Strikes,
			&result.RoundsUsed,
			&result.Mistakes,
			&result.Hints,
			&result.CreatedAt,
			&result.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// GetAllResults retrieves every result for a user across all games.
func (r *ResultRepository) GetAllResults(userID int64) ([]models.GameResult, error) {
	query := `
		SELECT ` + resultColumns + `
		FROM game_results
		WHERE user_id = ?
		ORDER BY game, date_key DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []models.GameResult
	for rows.Next() {
		var result models.GameResult
		err := rows.Scan(
			&result.ID,
			&result.UserID,
			&result.Game,
			&result.DateKey,
			&result.TimeSecs,
			&result.Score,
			&result.OutOf,
			&result.Solved,
			&result.Strikes,
			&result.RoundsUsed,
			&result.Mistakes,
			&result.Hints,
			&result.CreatedAt,
			&result.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// GetResult retrieves one result by its uniqueness key, or nil when the
// player has not completed that day.
func (r *ResultRepository) GetResult(userID int64, game, dateKey string) (*models.GameResult, error) {
	query := `
		SELECT ` + resultColumns + `
		FROM game_results
		WHERE user_id = ? AND game = ? AND date_key = ?
	`
	rows, err := r.db.Query(query, userID, game, dateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query result: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var result models.GameResult
	err = rows.Scan(
		&result.ID,
		&result.UserID,
		&result.Game,
		&result.DateKey,
		&result.TimeSecs,
		&result.Score,
		&result.OutOf,
		&result.Solved,
		&result.Strikes,
		&result.RoundsUsed,
		&result.Mistakes,
		&result.Hints,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan result: %w", err)
	}
	return &result, nil
}

// DeleteResult removes a single result record. Administrative use only.
func (r *ResultRepository) DeleteResult(userID int64, game, dateKey string) error {
	query := "DELETE FROM game_results WHERE user_id = ? AND game = ? AND date_key = ?"
	_, err := r.db.Exec(query, userID, game, dateKey)
	return err
}
