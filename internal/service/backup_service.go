package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"reelstreak/internal/database"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version      string           `json:"version"`
	ExportedAt   time.Time        `json:"exported_at"`
	DatabaseType string           `json:"database_type"`
	Users        []UserBackup     `json:"users"`
	Results      []ResultBackup   `json:"results"`
	Feedback     []FeedbackBackup `json:"feedback"`
}

// UserBackup represents a user record for backup
type UserBackup struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"password_hash"`
	DisplayName   string    `json:"display_name"`
	OAuthProvider string    `json:"oauth_provider"`
	OAuthSubject  string    `json:"oauth_subject"`
	IsAdmin       bool      `json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ResultBackup represents a game result record for backup
type ResultBackup struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Game       string    `json:"game"`
	DateKey    string    `json:"date_key"`
	TimeSecs   int       `json:"time_secs"`
	Score      *int      `json:"score"`
	OutOf      *int      `json:"out_of"`
	Solved     *bool     `json:"solved"`
	Strikes    *int      `json:"strikes"`
	RoundsUsed *int      `json:"rounds_used"`
	Mistakes   *int      `json:"mistakes"`
	Hints      *int      `json:"hints"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FeedbackBackup represents a feedback record for backup
type FeedbackBackup struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"user_id"`
	Page      string    `json:"page"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	return s.ExportToWriter(file)
}

// ExportToWriter exports the database to an io.Writer (useful for HTTP responses)
func (s *BackupService) ExportToWriter(w io.Writer) error {
	log.Println("Starting database export...")

	backup := &BackupData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		DatabaseType: "universal",
	}

	if err := s.exportUsers(backup); err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	if err := s.exportResults(backup); err != nil {
		return fmt.Errorf("failed to export results: %w", err)
	}
	if err := s.exportFeedback(backup); err != nil {
		return fmt.Errorf("failed to export feedback: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Exported: %d users, %d results, %d feedback entries",
		len(backup.Users), len(backup.Results), len(backup.Feedback))
	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup reader (for file uploads)
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	log.Println("Starting database import...")

	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// All or nothing: a half-imported backup is worse than none.
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	// Import in order of dependencies
	if err := importUsers(tx, backup.Users); err != nil {
		return fmt.Errorf("failed to import users: %w", err)
	}
	if err := importResults(tx, backup.Results); err != nil {
		return fmt.Errorf("failed to import results: %w", err)
	}
	if err := importFeedback(tx, backup.Feedback); err != nil {
		return fmt.Errorf("failed to import feedback: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportUsers(backup *BackupData) error {
	query := "SELECT id, email, password_hash, display_name, oauth_provider, oauth_subject, is_admin, created_at, updated_at FROM users ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u UserBackup
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.OAuthProvider, &u.OAuthSubject, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return err
		}
		backup.Users = append(backup.Users, u)
	}
	return rows.Err()
}

func (s *BackupService) exportResults(backup *BackupData) error {
	query := "SELECT id, user_id, game, date_key, time_secs, score, out_of, solved, strikes, rounds_used, mistakes, hints, created_at, updated_at FROM game_results ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r ResultBackup
		if err := rows.Scan(&r.ID, &r.UserID, &r.Game, &r.DateKey, &r.TimeSecs, &r.Score, &r.OutOf, &r.Solved, &r.Strikes, &r.RoundsUsed, &r.Mistakes, &r.Hints, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return err
		}
		backup.Results = append(backup.Results, r)
	}
	return rows.Err()
}

func (s *BackupService) exportFeedback(backup *BackupData) error {
	query := "SELECT id, user_id, page, message, created_at FROM feedback ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var f FeedbackBackup
		var userID sql.NullInt64
		if err := rows.Scan(&f.ID, &userID, &f.Page, &f.Message, &f.CreatedAt); err != nil {
			return err
		}
		if userID.Valid {
			f.UserID = &userID.Int64
		}
		backup.Feedback = append(backup.Feedback, f)
	}
	return rows.Err()
}

func importUsers(tx *database.Tx, users []UserBackup) error {
	log.Printf("Importing %d users...", len(users))
	for _, u := range users {
		query := "INSERT INTO users (id, email, password_hash, display_name, oauth_provider, oauth_subject, is_admin, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
		_, err := tx.Exec(query, u.ID, u.Email, u.PasswordHash, u.DisplayName, u.OAuthProvider, u.OAuthSubject, u.IsAdmin, u.CreatedAt, u.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to import user %d: %w", u.ID, err)
		}
	}
	return nil
}

func importResults(tx *database.Tx, results []ResultBackup) error {
	log.Printf("Importing %d results...", len(results))
	for _, r := range results {
		query := "INSERT INTO game_results (id, user_id, game, date_key, time_secs, score, out_of, solved, strikes, rounds_used, mistakes, hints, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
		_, err := tx.Exec(query, r.ID, r.UserID, r.Game, r.DateKey, r.TimeSecs, r.Score, r.OutOf, r.Solved, r.Strikes, r.RoundsUsed, r.Mistakes, r.Hints, r.CreatedAt, r.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to import result %d: %w", r.ID, err)
		}
	}
	return nil
}

func importFeedback(tx *database.Tx, entries []FeedbackBackup) error {
	log.Printf("Importing %d feedback entries...", len(entries))
	for _, f := range entries {
		var userID interface{}
		if f.UserID != nil {
			userID = *f.UserID
		}
		query := "INSERT INTO feedback (id, user_id, page, message, created_at) VALUES (?, ?, ?, ?, ?)"
		_, err := tx.Exec(query, f.ID, userID, f.Page, f.Message, f.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to import feedback %d: %w", f.ID, err)
		}
	}
	return nil
}
